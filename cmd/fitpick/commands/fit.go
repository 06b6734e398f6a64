package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fitpick/internal/domain"
)

// fit <name...>: compute a named fit.
func fitCmd(o *rootOptions) *cobra.Command {
	var (
		shape  string
		width  float64
		height float64
	)
	cmd := &cobra.Command{
		Use:   "fit <name>",
		Short: "Compute a named fit, e.g. fitpick fit locational clearance --diameter 25",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := domain.ParseShape(shape)
			if err != nil {
				return err
			}
			if sh == domain.Rectangular && !cmd.Flags().Changed("height") {
				return fmt.Errorf("--height is required for rectangular shapes")
			}
			if sh == domain.Cylindrical && cmd.Flags().Changed("height") {
				return fmt.Errorf("--height only applies to rectangular shapes")
			}
			report, err := o.wire.Engine.ComputeFit(cmd.Context(), domain.FitRequest{
				Name:     strings.Join(args, " "),
				Shape:    sh,
				WidthMM:  width,
				HeightMM: height,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.output == outputJSON {
				return writeJSON(out, report)
			}
			fmt.Fprintf(out, "Fit:      %s (%s, %s)\n", report.Fit.Name, report.Fit.Callout(), report.Fit.Kind)
			if report.Fit.Intent != "" {
				fmt.Fprintf(out, "Intent:   %s\n", report.Fit.Intent)
			}
			fmt.Fprintf(out, "Callout:  %s\n\n", report.Callout())

			tw := newTable(out)
			fmt.Fprintln(tw, "AXIS\tBAND\tHOLE\tSHAFT\tMIN CLR\tMAX CLR\tCONDITION")
			for _, r := range report.Axes {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Axis, r.Hole.Band, limitsRange(r.Hole), limitsRange(r.Shaft),
					signedMM(r.MinClearanceMM), signedMM(r.MaxClearanceMM), r.Condition())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&shape, "shape", string(domain.Cylindrical), "cylindrical or rectangular")
	cmd.Flags().Float64Var(&width, "width", 0, "diameter, or slot width for rectangular shapes (mm)")
	cmd.Flags().Float64Var(&width, "diameter", 0, "alias of --width")
	cmd.Flags().Float64Var(&height, "height", 0, "slot height for rectangular shapes (mm)")
	cmd.MarkFlagsMutuallyExclusive("width", "diameter")
	cmd.MarkFlagsOneRequired("width", "diameter")
	return cmd
}
