package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/maxrects/internal/engine"
	"github.com/piwi3910/maxrects/internal/model"
)

func (c *CLI) compareCommand() *cobra.Command {
	var (
		inputs     inputOpts
		heuristics []string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare heuristics on the same input",
		Long: `Run one independent packing per heuristic on identical boxes and bins and
print a table of placed boxes, bins used and percentage packed.`,
		Example: `  maxrects compare -b 200 -n 4
  maxrects compare --project demo.yaml --heuristics best-area-fit,bottom-left`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			p, err := c.loadInputs(s, inputs)
			if err != nil {
				return err
			}

			var names []model.Heuristic
			for _, h := range heuristics {
				names = append(names, model.Heuristic(h))
			}

			prog := newProgress(c.Logger)
			results, err := engine.CompareHeuristics(p.Boxes, p.Bins, names, c.Logger)
			if err != nil {
				return err
			}
			prog.done("Compared heuristics")

			c.printComparison(results)
			return nil
		},
	}

	addSettingsFlags(cmd)
	inputs.register(cmd)
	cmd.Flags().StringSliceVar(&heuristics, "heuristics", nil, "heuristics to compare (default: all)")

	return cmd
}
