// Package imgexport renders a core.Screen to a raster image, used for PNG
// screenshots of a running game and for the `arcade shot` command.
package imgexport

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Options controls the image geometry.
type Options struct {
	CellW, CellH int     // pixels per screen column and row
	Scale        float64 // final resize factor; 1 keeps the native size
	Background   string  // hex color
}

// DefaultOptions matches the 7×13 built-in font with a dark background.
func DefaultOptions() Options {
	return Options{CellW: 8, CellH: 16, Scale: 1, Background: "#101014"}
}

var palette = map[core.Color]string{
	core.ColorDefault:       "#D0D0D0",
	core.ColorRed:           "#FF0000",
	core.ColorGreen:         "#00C000",
	core.ColorYellow:        "#FFFF00",
	core.ColorBlue:          "#0000FF",
	core.ColorMagenta:       "#800080",
	core.ColorCyan:          "#00FFFF",
	core.ColorWhite:         "#E0E0E0",
	core.ColorBrightRed:     "#FF5555",
	core.ColorBrightGreen:   "#55FF55",
	core.ColorBrightYellow:  "#FFFF55",
	core.ColorBrightBlue:    "#5555FF",
	core.ColorBrightMagenta: "#FF55FF",
	core.ColorBrightCyan:    "#55FFFF",
	core.ColorBrightWhite:   "#FFFFFF",
	core.ColorOrange:        "#FFA500",
	core.ColorGray:          "#808080",
	core.ColorPink:          "#FFB6C1",
}

// Hex returns the RGB hex code used for c.
func Hex(c core.Color) string {
	if h, ok := palette[c]; ok {
		return h
	}
	return palette[core.ColorDefault]
}

// solid runes are painted as filled cells rather than font glyphs.
var solid = map[rune]bool{
	'█': true,
	'▓': true,
	'■': true,
}

var shade = map[rune]bool{
	'░': true,
	'▒': true,
}

// Render draws the screen into an image.
func Render(s *core.Screen, opts Options) image.Image {
	if opts.CellW <= 0 || opts.CellH <= 0 {
		d := DefaultOptions()
		opts.CellW, opts.CellH = d.CellW, d.CellH
	}
	if opts.Background == "" {
		opts.Background = DefaultOptions().Background
	}

	cw, ch := float64(opts.CellW), float64(opts.CellH)
	dc := gg.NewContext(s.Width()*opts.CellW, s.Height()*opts.CellH)
	dc.SetHexColor(opts.Background)
	dc.Clear()

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			px, py := float64(x)*cw, float64(y)*ch
			switch {
			case cell.Rune == ' ' || cell.Rune == 0:
				continue
			case solid[cell.Rune]:
				dc.SetHexColor(Hex(cell.Color))
				dc.DrawRectangle(px, py, cw, ch)
				dc.Fill()
			case shade[cell.Rune]:
				dc.SetHexColor(Hex(cell.Color))
				dc.DrawRectangle(px+cw/4, py+ch/4, cw/2, ch/2)
				dc.Fill()
			default:
				dc.SetHexColor(Hex(cell.Color))
				dc.DrawStringAnchored(string(cell.Rune), px+cw/2, py+ch/2, 0.5, 0.35)
			}
		}
	}

	img := dc.Image()
	if opts.Scale > 0 && opts.Scale != 1 {
		w := int(float64(img.Bounds().Dx()) * opts.Scale)
		h := int(float64(img.Bounds().Dy()) * opts.Scale)
		return imaging.Resize(img, max(1, w), max(1, h), imaging.NearestNeighbor)
	}
	return img
}

// Encode writes the rendered screen as PNG.
func Encode(w io.Writer, s *core.Screen, opts Options) error {
	if err := imaging.Encode(w, Render(s, opts), imaging.PNG); err != nil {
		return fmt.Errorf("imgexport: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG renders the screen to a PNG file, creating parent directories.
func SavePNG(s *core.Screen, path string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("imgexport: cannot create directory: %w", err)
	}
	if err := imaging.Save(Render(s, opts), path); err != nil {
		return fmt.Errorf("imgexport: cannot save %s: %w", path, err)
	}
	return nil
}
