package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func fitsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fits",
		Short: "List the fit catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fits, err := o.wire.Engine.ListFits(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.output == outputJSON {
				return writeJSON(out, fits)
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "NAME\tCLASSES\tKIND\tALSO KNOWN AS")
			for _, f := range fits {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Callout(), f.Kind, strings.Join(f.Aliases, "; "))
			}
			return tw.Flush()
		},
	}
}
