package main

import (
	"fmt"
	"strconv"

	"github.com/gogpu/features"
	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/gogpu/features/fonts"
	"github.com/gogpu/features/surface"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

const probeSize = 16

func backendsCmd(o *rootOptions) *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "backends",
		Short: "List surface and font backends and whether the target enables them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, set, err := o.resolve()
			if err != nil {
				return err
			}
			surfaces := surface.NewDefaultRegistry(set)
			fontReg := fonts.NewDefaultRegistry(set)

			headers := []string{"Backend", "Type", "Capability", "Enabled", "Available", "Priority"}
			if probe {
				headers = append(headers, "Probe")
			}

			var rows [][]string
			for _, name := range surfaces.List() {
				e, _ := surfaces.Get(name)
				row := []string{name, "surface", e.Capability.Key(), ui.Check(set.Has(e.Capability)),
					ui.Bool(e.Available()), strconv.Itoa(e.Priority)}
				if probe {
					row = append(row, probeSurface(surfaces, name))
				}
				rows = append(rows, row)
			}
			for _, name := range fontReg.Backends() {
				b, _ := fontReg.Lookup(name)
				row := []string{name, "font", b.Capability().Key(), ui.Check(set.Has(b.Capability())),
					ui.Bool(true), "-"}
				if probe {
					row = append(row, probeFont(fontReg, name))
				}
				rows = append(rows, row)
			}
			row := []string{"fc", "matcher", features.FCFont.Key(), ui.Check(set.Has(features.FCFont)), ui.Bool(true), "-"}
			if probe {
				row = append(row, probeMatcher(cmd, fontReg, o.cfg.FontDirs))
			}
			rows = append(rows, row)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.KeyValues("", ui.KV("Target", ui.Accent(target.String()))))
			fmt.Fprintln(out, ui.Table(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Create a surface or face with every enabled backend")
	return cmd
}

func probeSurface(r *surface.Registry, name string) string {
	if !r.Enabled(name) {
		return ui.Muted("skipped")
	}
	s, err := r.NewSurfaceByName(name, surface.DefaultOptions(probeSize, probeSize))
	if err != nil {
		return ui.Warn(err.Error())
	}
	defer s.Close()
	return fmt.Sprintf("%dx%d", s.Width(), s.Height())
}

func probeFont(r *fonts.Registry, name string) string {
	if _, err := r.Backend(name); err != nil {
		return ui.Muted("skipped")
	}
	var (
		face fonts.Face
		err  error
	)
	switch name {
	case "user":
		face, err = r.NewUserFace(fonts.UserFaceConfig{
			Family:    "probe",
			NumGlyphs: 1,
			Ascent:    0.8,
			Descent:   0.2,
			Glyph:     func(rune) (uint16, float64, bool) { return 0, 0.5, true },
		})
	default:
		face, err = r.Load(name, goregular.TTF)
	}
	if err != nil {
		return ui.Warn(err.Error())
	}
	return fmt.Sprintf("%s, %d glyphs", face.Family(), face.NumGlyphs())
}

func probeMatcher(cmd *cobra.Command, r *fonts.Registry, dirs []string) string {
	m, err := r.NewMatcher(dirs...)
	if err != nil {
		return ui.Muted("skipped")
	}
	if err := m.Scan(cmd.Context()); err != nil {
		return ui.Warn(err.Error())
	}
	return fmt.Sprintf("%d families", len(m.Families()))
}
