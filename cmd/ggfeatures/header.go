package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/gogpu/features/header"
	"github.com/spf13/cobra"
)

func headerCmd(o *rootOptions) *cobra.Command {
	var (
		lang        string
		pkg         string
		output      string
		conditional bool
	)

	cmd := &cobra.Command{
		Use:   "header",
		Short: "Generate a feature header for the target",
		Long: `Generate a feature header for the target.

By default a C header defining exactly the enabled CAIRO_HAS_* symbols is
written. --conditional writes the portable header that lets the C
preprocessor choose, and --lang go writes Go constants instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if h := o.cfg.Header; h != nil {
				flags := cmd.Flags()
				if !flags.Changed("lang") && h.Lang != "" {
					lang = h.Lang
				}
				if !flags.Changed("package") && h.Package != "" {
					pkg = h.Package
				}
				if !flags.Changed("output") && h.Output != "" {
					output = h.Output
				}
				if !flags.Changed("conditional") {
					conditional = conditional || h.Conditional
				}
			}

			var buf bytes.Buffer
			switch lang {
			case "c":
				if conditional {
					if err := header.WriteConditional(&buf); err != nil {
						return err
					}
					break
				}
				target, set, err := o.resolve()
				if err != nil {
					return err
				}
				if err := header.WriteResolved(&buf, target.String(), set); err != nil {
					return err
				}
			case "go":
				if conditional {
					return errors.New("--conditional is only supported for C headers")
				}
				target, set, err := o.resolve()
				if err != nil {
					return err
				}
				if err := header.WriteGo(&buf, pkg, target.String(), set); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown language %q (want c or go)", lang)
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("Wrote %s.", ui.Bold(output)))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "c", "Output language: c or go")
	cmd.Flags().StringVar(&pkg, "package", "features", "Package name for Go output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&conditional, "conditional", false, "Write the portable C header instead of a resolved one")
	return cmd
}
