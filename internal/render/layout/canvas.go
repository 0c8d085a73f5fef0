// Package layout wraps the PDF canvas with the small set of drawing
// primitives the invoice renderers need: filled and stroked shapes, aligned
// text runs inside bounding boxes, and aspect-preserving image placement.
// A Canvas owns one document; it is not safe for concurrent use, but
// independent Canvas values never share state.
package layout

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

// ParseHex parses a "#RRGGBB" color. Malformed input yields black, since a
// wrong color must never block document generation.
func ParseHex(s string) RGB {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}
	}
	var c RGB
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}
	}
	return c
}

// Font selects a core PDF font face.
type Font struct {
	Family string  // "Helvetica", "Times", "Courier"
	Style  string  // "", "B", "I", "BI"
	Size   float64 // points
}

// Rect is an axis-aligned box in page units (millimetres).
type Rect struct {
	X, Y, W, H float64
}

// Inset returns the rect shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Canvas is a page-based drawing surface backed by an A4 portrait PDF
// document in millimetre units.
type Canvas struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	images    int
}

// NewCanvas creates an empty canvas with no pages. The creation timestamp is
// pinned and resource emission is sorted so identical drawing sequences
// serialize to identical bytes.
func NewCanvas(created time.Time) *Canvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(created.UTC())
	pdf.SetCatalogSort(true)
	return &Canvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddPage appends a fresh page and makes it current.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// PageCount returns the number of pages added so far.
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// PageRect returns the full bounds of a page.
func (c *Canvas) PageRect() Rect {
	w, h := c.pdf.GetPageSize()
	return Rect{X: 0, Y: 0, W: w, H: h}
}

// FillRect fills r with the given color.
func (c *Canvas) FillRect(r Rect, col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(r.X, r.Y, r.W, r.H, "F")
}

// StrokeRect outlines r with the given color and line width.
func (c *Canvas) StrokeRect(r Rect, col RGB, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Rect(r.X, r.Y, r.W, r.H, "D")
}

// StrokeLine draws a straight line segment.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, col RGB, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

// FillCircle draws a filled circle centered at (x, y).
func (c *Canvas) FillCircle(x, y, radius float64, col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Circle(x, y, radius, "F")
}

// StrokeCircle draws a circle outline centered at (x, y).
func (c *Canvas) StrokeCircle(x, y, radius float64, col RGB, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Circle(x, y, radius, "D")
}

// Text draws a single text run inside r with the given horizontal alignment,
// vertically centered. Text is clipped by the PDF viewer, not measured here;
// callers size boxes from TextWidth when they must not overflow.
func (c *Canvas) Text(r Rect, s string, f Font, align Align, col RGB) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
	c.pdf.SetTextColor(col.R, col.G, col.B)
	c.pdf.SetXY(r.X, r.Y)
	c.pdf.CellFormat(r.W, r.H, c.translate(s), "", 0, string(align)+"M", false, 0, "")
}

// TextWidth measures the rendered width of s in the given font.
func (c *Canvas) TextWidth(s string, f Font) float64 {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
	return c.pdf.GetStringWidth(c.translate(s))
}

// ImageFit draws the encoded image (PNG, JPEG or GIF) scaled to fit inside
// r, preserving aspect ratio and centering the result. The scale factor is
// min(boxW/imgW, boxH/imgH). The bytes are fully decoded up front: a corrupt
// image is rejected here, before the document's error state can be touched,
// so the caller can skip the image and keep rendering.
func (c *Canvas) ImageFit(r Rect, img []byte) error {
	kind, err := sniffImageType(img)
	if err != nil {
		return err
	}
	if _, _, err := image.Decode(bytes.NewReader(img)); err != nil {
		return fmt.Errorf("layout: corrupt %s image: %w", strings.ToLower(kind), err)
	}
	c.images++
	name := fmt.Sprintf("img-%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: kind}
	info := c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
	if err := c.pdf.Error(); err != nil {
		return err
	}
	w, h := info.Extent()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("layout: image has no extent")
	}
	scale := r.W / w
	if s := r.H / h; s < scale {
		scale = s
	}
	dw, dh := w*scale, h*scale
	x := r.X + (r.W-dw)/2
	y := r.Y + (r.H-dh)/2
	c.pdf.ImageOptions(name, x, y, dw, dh, false, opts, 0, "")
	return c.pdf.Error()
}

// Output serializes every page to w.
func (c *Canvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

// Error returns the first drawing error recorded by the underlying document.
func (c *Canvas) Error() error {
	return c.pdf.Error()
}

func sniffImageType(img []byte) (string, error) {
	switch {
	case len(img) >= 8 && bytes.HasPrefix(img, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG", nil
	case len(img) >= 3 && img[0] == 0xFF && img[1] == 0xD8 && img[2] == 0xFF:
		return "JPEG", nil
	case len(img) >= 6 && (bytes.HasPrefix(img, []byte("GIF87a")) || bytes.HasPrefix(img, []byte("GIF89a"))):
		return "GIF", nil
	default:
		return "", fmt.Errorf("layout: unsupported image format")
	}
}
