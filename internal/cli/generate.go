package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/maxrects/internal/generate"
	"github.com/piwi3910/maxrects/internal/model"
	"github.com/piwi3910/maxrects/internal/project"
)

func (c *CLI) generateCommand() *cobra.Command {
	var output, name string

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write a sample project with random boxes",
		Example: `  maxrects generate -b 50 -n 2 -o sample.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}

			boxes, bins, err := generate.FromSettings(s)
			if err != nil {
				return err
			}

			p := model.NewProject(name)
			p.Settings = s
			p.Boxes, p.Bins = boxes, bins

			if err := project.Save(output, p); err != nil {
				return err
			}
			c.printSuccess("generated %d boxes and %d bins", len(boxes), len(bins))
			c.printFile(output)
			return nil
		},
	}

	addSettingsFlags(cmd)
	cmd.Flags().String("heuristic", string(model.HeuristicBestAreaFit), "heuristic stored in the project settings")
	cmd.Flags().StringVarP(&output, "output", "o", "", "project file to write (.json, .yaml, .toml)")
	cmd.Flags().StringVar(&name, "name", "sample", "project name")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
