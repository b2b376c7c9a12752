package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/maxrects/internal/export"
	"github.com/piwi3910/maxrects/internal/generate"
	"github.com/piwi3910/maxrects/internal/importer"
	"github.com/piwi3910/maxrects/internal/model"
	"github.com/piwi3910/maxrects/internal/project"
)

// inputOpts selects where boxes and bins come from. Anything not given
// explicitly is generated from the settings.
type inputOpts struct {
	projectFile string
	boxesFile   string
	binsFile    string
}

func (o *inputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.projectFile, "project", "", "load boxes and bins from a project file (.json, .yaml, .toml)")
	cmd.Flags().StringVar(&o.boxesFile, "boxes-file", "", "import boxes from a CSV, Excel or DXF file")
	cmd.Flags().StringVar(&o.binsFile, "bins-file", "", "import bins from a CSV or Excel file")
}

// outputOpts lists the files to write after packing.
type outputOpts struct {
	png    string
	pdf    string
	labels string
	dxf    string
}

func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.png, "png", "", "write a PNG visualization")
	cmd.Flags().StringVar(&o.pdf, "pdf", "", "write a PDF report")
	cmd.Flags().StringVar(&o.labels, "labels", "", "write a PDF sheet of QR labels")
	cmd.Flags().StringVar(&o.dxf, "dxf", "", "write a DXF layout")
}

// loadInputs assembles the project to pack.
func (c *CLI) loadInputs(s model.Settings, in inputOpts) (model.Project, error) {
	p := model.NewProject(appName)
	if in.projectFile != "" {
		loaded, err := project.Load(in.projectFile)
		if err != nil {
			return model.Project{}, err
		}
		p = loaded
		c.Logger.Debug("loaded project", "file", in.projectFile, "boxes", len(p.Boxes), "bins", len(p.Bins))
	}
	p.Settings = s

	switch {
	case in.boxesFile != "":
		result := importer.ImportFile(in.boxesFile)
		if err := c.reportImport(in.boxesFile, result); err != nil {
			return model.Project{}, err
		}
		boxes, err := result.Boxes()
		if err != nil {
			return model.Project{}, err
		}
		p.Boxes = boxes
	case in.projectFile == "":
		boxes, err := generate.Boxes(s.BoxCount, s.MinBoxSide, s.MaxBoxSide, s.Seed)
		if err != nil {
			return model.Project{}, err
		}
		p.Boxes = boxes
	}

	switch {
	case in.binsFile != "":
		result := importer.ImportFile(in.binsFile)
		if err := c.reportImport(in.binsFile, result); err != nil {
			return model.Project{}, err
		}
		bins, err := result.Bins(s.RenderBuffer)
		if err != nil {
			return model.Project{}, err
		}
		p.Bins = bins
	case in.projectFile == "":
		bins, err := generate.Bins(s.BinCount, s.BinWidth, s.BinHeight, s.RenderBuffer)
		if err != nil {
			return model.Project{}, err
		}
		p.Bins = bins
	}

	return p, nil
}

// reportImport logs row-level problems. It fails only when nothing usable
// was imported.
func (c *CLI) reportImport(path string, r importer.ImportResult) error {
	for _, w := range r.Warnings {
		c.Logger.Debug(w, "file", path)
	}
	for _, e := range r.Errors {
		c.Logger.Warn(e, "file", path)
	}
	if len(r.Items) == 0 {
		msg := "no usable rows"
		if len(r.Errors) > 0 {
			msg = strings.Join(r.Errors, "; ")
		}
		return fmt.Errorf("import %s: %s", path, msg)
	}
	c.Logger.Info("imported", "file", path, "rows", len(r.Items))
	return nil
}

// writeOutputs renders the result into every requested file.
func (c *CLI) writeOutputs(result model.PlacementResult, buffer int, out outputOpts) error {
	var errs []error
	write := func(path, kind string, fn func() error) {
		if path == "" {
			return
		}
		if err := fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			return
		}
		c.Logger.Debug("wrote output", "kind", kind, "file", path)
		c.printFile(path)
	}

	write(out.png, "png", func() error { return export.ExportPNG(out.png, result.Bins, buffer) })
	write(out.pdf, "pdf", func() error { return export.ExportPDF(out.pdf, result) })
	write(out.labels, "labels", func() error { return export.ExportLabels(out.labels, result) })
	write(out.dxf, "dxf", func() error { return export.ExportDXF(out.dxf, result.Bins, buffer) })

	return errors.Join(errs...)
}
