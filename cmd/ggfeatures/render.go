package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/gogpu/features"
	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/gogpu/features/surface"
	"github.com/spf13/cobra"
)

const renderColumns = 5

// minTile is the smallest cell that still leaves a visible tile inside
// its padding.
const minTile = 3

func renderRows() int {
	return (len(features.AllCapabilities()) + renderColumns - 1) / renderColumns
}

// Tile colors by capability kind.
var kindColors = map[features.Kind]color.RGBA{
	features.KindSurface:     {R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	features.KindFont:        {R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
	features.KindFunctions:   {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	features.KindInterpreter: {R: 0x9c, G: 0x27, B: 0xb0, A: 0xff},
}

var disabledColor = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}

func renderCmd(o *rootOptions) *cobra.Command {
	var (
		width   int
		height  int
		output  string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the target's capability map to a PNG",
		Long: `Render the target's capability map to a PNG.

Every capability is drawn as a tile, colored by kind when the target enables
it and grey otherwise. The image is drawn through the surface registry, so
the chosen backend and PNG output are subject to the same gating.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < minTile*renderColumns || height < minTile*renderRows() {
				return fmt.Errorf("invalid size %dx%d: need at least %dx%d",
					width, height, minTile*renderColumns, minTile*renderRows())
			}
			target, set, err := o.resolve()
			if err != nil {
				return err
			}
			reg := surface.NewDefaultRegistry(set)

			opts := surface.DefaultOptions(width, height)
			opts.BackgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

			var s surface.Surface
			if backend == "" {
				s, err = reg.NewSurface(opts)
			} else {
				s, err = reg.NewSurfaceByName(backend, opts)
			}
			if err != nil {
				return err
			}
			defer s.Close()

			drawCapabilityMap(s, set)

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := reg.WritePNG(f, s); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("Rendered %s (%dx%d) to %s.",
				ui.Accent(target.String()), width, height, ui.Bold(output)))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 500, "Image width")
	cmd.Flags().IntVar(&height, "height", 400, "Image height")
	cmd.Flags().StringVarP(&output, "output", "o", "capabilities.png", "Output file")
	cmd.Flags().StringVar(&backend, "backend", "", "Surface backend (default: best enabled)")
	return cmd
}

// drawCapabilityMap lays out one tile per capability in rows of
// renderColumns. Nothing is drawn when the cells are too small to hold a
// padded tile.
func drawCapabilityMap(s surface.Surface, set features.Set) {
	caps := features.AllCapabilities()
	cellW := s.Width() / renderColumns
	cellH := s.Height() / renderRows()
	pad := max(1, min(cellW, cellH)/10)
	if cellW <= 2*pad || cellH <= 2*pad {
		return
	}

	for i, c := range caps {
		x := (i % renderColumns) * cellW
		y := (i / renderColumns) * cellH
		tile := image.Rect(x+pad, y+pad, x+cellW-pad, y+cellH-pad)

		col := disabledColor
		if set.Has(c) {
			col = kindColors[c.Kind()]
		}
		s.FillRect(tile, col)
	}
}
