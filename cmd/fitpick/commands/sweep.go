package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sweep <nominal-mm>: evaluate the whole catalog at one diameter.
func sweepCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <nominal-mm>",
		Short: "Evaluate every catalog fit at one diameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nominal, err := parseMM(args[0])
			if err != nil {
				return err
			}
			entries, err := o.wire.Engine.Sweep(cmd.Context(), nominal)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.output == outputJSON {
				return writeJSON(out, entries)
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "FIT\tCLASSES\tKIND\tMIN CLR\tMAX CLR\tCONDITION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Fit.Name, e.Fit.Callout(), e.Fit.Kind,
					signedMM(e.Result.MinClearanceMM), signedMM(e.Result.MaxClearanceMM), e.Result.Condition())
			}
			return tw.Flush()
		},
	}
}
