package main

import (
	"fmt"

	"github.com/gogpu/features"
	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/spf13/cobra"
)

// matrixTargets are the columns of the decision table.
var matrixTargets = []features.Target{
	{Platform: features.PlatformWindows},
	{Platform: features.PlatformApple},
	{Platform: features.PlatformLinux},
	{Platform: features.PlatformLinux, IncludeXCB: true},
	{Platform: features.PlatformOther},
}

func matrixCmd(_ *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show which capabilities each platform enables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers := []string{"Capability"}
			sets := make([]features.Set, len(matrixTargets))
			for i, t := range matrixTargets {
				headers = append(headers, ui.Title(t.String()))
				sets[i] = features.Select(t)
			}

			var rows [][]string
			for _, c := range features.AllCapabilities() {
				if kind != "" && c.Kind().String() != kind {
					continue
				}
				row := []string{c.Key()}
				for _, s := range sets {
					row = append(row, ui.Check(s.Has(c)))
				}
				rows = append(rows, row)
			}
			if len(rows) == 0 {
				return fmt.Errorf("no capabilities of kind %q", kind)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Table(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only show one kind: surface, font, functions or interpreter")
	return cmd
}
