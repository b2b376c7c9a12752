package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/maxrects/internal/engine"
	"github.com/piwi3910/maxrects/internal/model"
	"github.com/piwi3910/maxrects/internal/project"
)

type packOpts struct {
	inputs  inputOpts
	outputs outputOpts
	save    string
}

func (c *CLI) packCommand() *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack boxes into bins",
		Long: `Pack boxes into bins with the MaxRects algorithm.

Boxes and bins are generated at random unless a project or import file is
given. Boxes are placed largest first; a box that fits no bin is reported
as missed.`,
		Example: `  maxrects pack -b 40 -n 3
  maxrects pack --boxes-file boxes.csv --bins-file bins.xlsx --png out.png
  maxrects pack --project demo.yaml --heuristic contact-point --save packed.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			return c.runPack(cmd.Context(), s, opts)
		},
	}

	addSettingsFlags(cmd)
	cmd.Flags().String("heuristic", string(model.HeuristicBestAreaFit), fmt.Sprintf("scoring rule: %v", engine.HeuristicNames()))
	opts.inputs.register(cmd)
	opts.outputs.register(cmd)
	cmd.Flags().StringVar(&opts.save, "save", "", "save inputs and result as a project file")

	return cmd
}

func (c *CLI) runPack(ctx context.Context, s model.Settings, opts packOpts) error {
	h, err := engine.ParseHeuristic(s.Heuristic)
	if err != nil {
		return err
	}

	p, err := c.loadInputs(s, opts.inputs)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := engine.Pack(p.Boxes, p.Bins, engine.WithHeuristic(h), engine.WithLogger(c.Logger))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d of %d boxes into %d bins", len(result.Placed), len(p.Boxes), len(p.Bins)))

	c.printSummary(result)

	if err := c.writeOutputs(result, s.RenderBuffer, opts.outputs); err != nil {
		return err
	}

	if opts.save != "" {
		p.Result = &result
		if err := project.Save(opts.save, p); err != nil {
			return err
		}
		c.printFile(opts.save)
	}
	return nil
}
