// Package icon draws the extension's "earth" icon: a green circle with a
// darker outline on a solid square, plus a small continent blob at larger
// sizes.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/Mavwarf/carbontracker/internal/paths"
)

const (
	// OutlineWidth is the earth outline stroke in pixels, drawn inside the
	// earth's bounding box.
	OutlineWidth = 2

	// DetailMinSize is the smallest icon size that gets the continent detail.
	DetailMinSize = 48
)

// Sizes are the icon sizes shipped with the extension.
var Sizes = []int{16, 48, 128}

var (
	Background = color.RGBA{0x66, 0x7e, 0xea, 0xff} // #667EEA
	Earth      = color.RGBA{0x10, 0xb9, 0x81, 0xff} // #10B981
	Outline    = color.RGBA{0x05, 0x96, 0x69, 0xff} // #059669, also the detail fill
)

// ErrInvalidSize is returned for non-positive icon sizes.
var ErrInvalidSize = errors.New("icon size must be positive")

// Layout is the shape geometry for one icon size. Rectangles use pixel-edge
// coordinates, so Earth.Dx() is the circle's diameter.
type Layout struct {
	Size   int
	Earth  image.Rectangle
	Detail image.Rectangle // empty below DetailMinSize
}

// NewLayout computes the earth and detail bounding boxes for size.
// The earth is 60% of the icon, centred. The detail is 30% of the earth,
// offset a quarter of the earth's diameter from its top-left corner.
// All fractions truncate toward zero.
func NewLayout(size int) (Layout, error) {
	if size <= 0 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	circle := size * 6 / 10
	left := (size - circle) / 2
	l := Layout{
		Size:  size,
		Earth: image.Rect(left, left, left+circle, left+circle),
	}
	if size >= DetailMinSize {
		d := circle * 3 / 10
		off := left + circle/4
		l.Detail = image.Rect(off, off, off+d, off+d)
	}
	return l, nil
}

// HasDetail reports whether the continent detail is drawn.
func (l Layout) HasDetail() bool {
	return !l.Detail.Empty()
}

// Draw renders the icon for size.
func Draw(size int) (image.Image, error) {
	dc, err := render(size)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Encode renders the icon for size and writes it to w as PNG.
func Encode(w io.Writer, size int) error {
	dc, err := render(size)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding %dpx icon: %w", size, err)
	}
	return nil
}

// Generate writes the icon for size to path, replacing any existing file.
// The parent directory must exist. The file is written atomically, so a
// failed run leaves either the previous file or nothing at path.
func Generate(size int, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, size); err != nil {
		return err
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func render(size int) (*gg.Context, error) {
	l, err := NewLayout(size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(Background)
	dc.Clear()

	cx, cy, rx, ry := ellipse(l.Earth)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.SetColor(Earth)
	dc.Fill()

	// Stroke is centred on the path; inset by half the width so the
	// outline stays inside the earth box.
	inset := OutlineWidth / 2.0
	dc.DrawEllipse(cx, cy, rx-inset, ry-inset)
	dc.SetLineWidth(OutlineWidth)
	dc.SetColor(Outline)
	dc.Stroke()

	if l.HasDetail() {
		cx, cy, rx, ry := ellipse(l.Detail)
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.SetColor(Outline)
		dc.Fill()
	}
	return dc, nil
}

// ellipse converts a bounding box to centre and radii.
func ellipse(r image.Rectangle) (cx, cy, rx, ry float64) {
	rx = float64(r.Dx()) / 2
	ry = float64(r.Dy()) / 2
	return float64(r.Min.X) + rx, float64(r.Min.Y) + ry, rx, ry
}
