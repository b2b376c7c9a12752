package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/maxrects/internal/model"
)

func (c *CLI) estimateCommand() *cobra.Command {
	var (
		inputs inputOpts
		waste  float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate how many bins a box list needs",
		Long: `Compute an area-based lower bound on the number of bin-width x bin-height
bins the boxes need, plus a waste margin. Nothing is packed.`,
		Example: `  maxrects estimate --boxes-file boxes.csv --bin-width 120 --bin-height 80 --waste 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			p, err := c.loadInputs(s, inputs)
			if err != nil {
				return err
			}

			est := model.EstimateBins(p.Boxes, s.BinWidth, s.BinHeight, waste)
			c.printEstimate(s, len(p.Boxes), est)
			return nil
		},
	}

	addSettingsFlags(cmd)
	inputs.register(cmd)
	cmd.Flags().Float64Var(&waste, "waste", 15, "extra bin area to allow for packing waste, in percent")

	return cmd
}

func (c *CLI) printEstimate(s model.Settings, boxes int, est model.BinEstimate) {
	fmt.Fprintln(c.out, styleTitle.Render("Bin estimate"))
	c.printKeyValue("Bin size", fmt.Sprintf("%dx%d", s.BinWidth, s.BinHeight))
	c.printKeyValue("Boxes", strconv.Itoa(boxes))
	c.printKeyValue("Box area", strconv.Itoa(est.TotalBoxArea))
	c.printKeyValue("Bins (exact)", fmt.Sprintf("%.2f", est.BinsNeededExact))
	c.printKeyValue("Bins (minimum)", strconv.Itoa(est.BinsNeededMin))
	c.printKeyValue(fmt.Sprintf("Bins (+%.0f%% waste)", est.WastePercent), strconv.Itoa(est.BinsWithWaste))
	if est.OversizedBoxes > 0 {
		c.printWarning("%d box(es) are larger than the bin and can never be placed", est.OversizedBoxes)
	}
}
