package main

import (
	"fmt"
	"os"

	"github.com/gogpu/features"
	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/gogpu/features/header"
	"github.com/spf13/cobra"
)

// mismatchError is returned by "ggfeatures check" when the header and the
// target disagree. The details have already been printed.
type mismatchError struct {
	Path    string
	Missing features.Set
	Extra   features.Set
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("%s: %d missing, %d unexpected capabilities", e.Path, e.Missing.Len(), e.Extra.Len())
}

func checkCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Compare a resolved header with the capabilities of the target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			got, err := header.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			target, want, err := o.resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			missing := want.Difference(got)
			extra := got.Difference(want)
			if missing.Empty() && extra.Empty() {
				fmt.Fprintln(out, ui.SuccessMsg("%s matches %s (%d capabilities).", path, ui.Accent(target.String()), want.Len()))
				return nil
			}

			for _, c := range missing.List() {
				fmt.Fprintln(out, ui.ErrorMsg("missing    %s", c.Symbol()))
			}
			for _, c := range extra.List() {
				fmt.Fprintln(out, ui.WarnMsg("unexpected %s", c.Symbol()))
			}
			return &mismatchError{Path: path, Missing: missing, Extra: extra}
		},
	}
}
