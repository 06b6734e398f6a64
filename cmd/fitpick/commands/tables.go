package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fitpick/internal/store"
)

func tablesCmd(o *rootOptions) *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Describe the reference tables, or export the built-in ones for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if export != "" {
				if err := store.Export(export); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s; use it with --tables or %s\n", export, store.EnvTables)
				return nil
			}

			info, err := o.wire.Engine.Reference(cmd.Context())
			if err != nil {
				return err
			}
			if o.output == outputJSON {
				return writeJSON(out, info)
			}
			letters := make([]string, len(info.Letters))
			for i, l := range info.Letters {
				letters[i] = string(l)
			}
			grades := make([]string, len(info.Grades))
			for i, g := range info.Grades {
				grades[i] = g.String()
			}
			fmt.Fprintf(out, "Version:  %s\n", info.Version)
			fmt.Fprintf(out, "Digest:   %s\n", info.Digest)
			fmt.Fprintf(out, "Sizes:    up to %g mm in %d bands\n", info.MaxSizeMM, len(info.Bands))
			fmt.Fprintf(out, "Grades:   %s\n", strings.Join(grades, " "))
			fmt.Fprintf(out, "Letters:  %s\n", strings.Join(letters, " "))
			fmt.Fprintf(out, "Fits:     %d\n", info.Fits)
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "write the built-in tables YAML to this path")
	return cmd
}
