package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitpick/internal/domain"
)

// limits <class> <nominal-mm>: compute one class's limits.
func limitsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "limits <class> <nominal-mm>",
		Short: "Compute the limits of a tolerance class, e.g. fitpick limits H7 25",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := domain.ParseClass(args[0])
			if err != nil {
				return err
			}
			nominal, err := parseMM(args[1])
			if err != nil {
				return err
			}
			lim, err := o.wire.Engine.ComputeLimits(cmd.Context(), class, nominal)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.output == outputJSON {
				return writeJSON(out, lim)
			}
			fmt.Fprintf(out, "%s at %g mm (%s)\n", lim.Class, lim.NominalMM, lim.Band)
			fmt.Fprintf(out, "  max       %.3f\n", lim.MaxMM)
			fmt.Fprintf(out, "  min       %.3f\n", lim.MinMM)
			fmt.Fprintf(out, "  tolerance %g µm\n", lim.ToleranceMicrons)
			return nil
		},
	}
}
