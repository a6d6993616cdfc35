package main

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/features"
	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// listReport is the machine-readable output of "ggfeatures list".
type listReport struct {
	Target       features.Target `json:"target" yaml:"target"`
	Capabilities features.Set    `json:"capabilities" yaml:"capabilities"`
	Symbols      []string        `json:"symbols" yaml:"symbols"`
}

func listCmd(o *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the capabilities enabled for the target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, set, err := o.resolve()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			report := listReport{Target: target, Capabilities: set, Symbols: set.Symbols()}

			switch format {
			case "table":
				fmt.Fprint(out, ui.KeyValues("",
					ui.KV("Target", ui.Accent(target.String())),
					ui.KV("Enabled", fmt.Sprintf("%d of %d", set.Len(), len(features.AllCapabilities()))),
				))
				var rows [][]string
				for _, c := range set.List() {
					rows = append(rows, []string{c.Key(), c.Symbol(), ui.Title(c.Kind().String()), c.Group().String()})
				}
				fmt.Fprintln(out, ui.Table([]string{"Capability", "Symbol", "Kind", "Group"}, rows))
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "keys":
				for _, k := range set.Keys() {
					fmt.Fprintln(out, k)
				}
			default:
				return fmt.Errorf("unknown format %q (want table, json, yaml or keys)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, yaml or keys")
	return cmd
}
