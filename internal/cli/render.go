package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/maxrects/internal/project"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		projectFile string
		outputs     outputOpts
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render the result stored in a project file",
		Example: `  maxrects render --project packed.json --png out.png --pdf report.pdf`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputs == (outputOpts{}) {
				return errors.New("nothing to render: pass at least one of --png, --pdf, --labels, --dxf")
			}

			p, err := project.Load(projectFile)
			if err != nil {
				return err
			}
			if p.Result == nil {
				return fmt.Errorf("project %s has no packing result; run pack with --save first", projectFile)
			}

			buffer := p.Settings.RenderBuffer
			if cmd.Flags().Changed("buffer") {
				buffer, _ = cmd.Flags().GetInt("buffer")
			}
			return c.writeOutputs(*p.Result, buffer, outputs)
		},
	}

	cmd.Flags().StringVar(&projectFile, "project", "", "project file with a saved result")
	cmd.Flags().Int("buffer", 10, "pixels between bins laid out side by side")
	outputs.register(cmd)
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
