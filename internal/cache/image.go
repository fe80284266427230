package cache

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Default cover box in terminal cells. A square image fills it exactly.
const (
	DefaultCols = 32
	DefaultRows = 16
)

// MaxPixels bounds the decoded size read from an image header.
const MaxPixels = 40_000_000

// ErrImageTooLarge is returned for images whose header exceeds MaxPixels.
var ErrImageTooLarge = errors.New("image too large")

const halfBlock = "▀"

// Box is the cell area a cover is scaled to fit. Zero fields use the
// defaults.
type Box struct {
	Cols int
	Rows int
}

func (b Box) withDefaults() Box {
	if b.Cols <= 0 {
		b.Cols = DefaultCols
	}
	if b.Rows <= 0 {
		b.Rows = DefaultRows
	}
	return b
}

// Image is a cover rasterised for the terminal: each line holds Cols cells,
// each cell two vertically stacked pixels.
type Image struct {
	Lines  []string
	Cols   int
	Rows   int
	Format string
	Source string
}

// Decode sniffs the format of data, decodes it and rasterises it to fit box
// while keeping its aspect ratio. source is only used in error messages and
// Image.Source.
func Decode(data []byte, source string, box Box) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unrecognised image format in %s: %w", source, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode %s: empty image", source)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("decode %s: %w (%dx%d)", source, ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	lines, cols, err := rasterise(src, box.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("rasterise %s: %w", source, err)
	}
	return &Image{Lines: lines, Cols: cols, Rows: len(lines), Format: format, Source: source}, nil
}

// fit returns the pixel size of src scaled into box, where each cell is one
// pixel wide and two tall. The height is always even and at least 2.
func fit(src image.Rectangle, box Box) (width, height int) {
	dx, dy := src.Dx(), src.Dy()
	maxH := box.Rows * 2
	width = box.Cols
	height = (dy*width + dx/2) / dx
	if height > maxH {
		height = maxH
		width = (dx*height + dy/2) / dy
		if width < 1 {
			width = 1
		}
	}
	if height < 2 {
		height = 2
	}
	if height%2 == 1 {
		height++
	}
	return width, height
}

func rasterise(src image.Image, box Box) ([]string, int, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, 0, errors.New("empty image")
	}
	cols, height := fit(b, box)
	dst := image.NewRGBA(image.Rect(0, 0, cols, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	lines := make([]string, height/2)
	for row := range lines {
		var sb strings.Builder
		for x := 0; x < cols; x++ {
			top := hexColor(dst.RGBAAt(x, 2*row))
			bottom := hexColor(dst.RGBAAt(x, 2*row+1))
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock)
			sb.WriteString(cell)
		}
		lines[row] = sb.String()
	}
	return lines, cols, nil
}

func hexColor(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
