// Package payment renders the "Payment Details" block of an invoice. Each
// payment method variant contributes at most one display line; when nothing
// has content the block consumes no vertical space at all.
package payment

import (
	"strings"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/render/layout"
)

// Line is one formatted payment method row.
type Line struct {
	Title string
	Value string
}

// Lines maps payment methods to display lines, dropping methods whose
// formatted value is empty.
func Lines(methods []entity.PaymentMethod) []Line {
	var lines []Line
	for _, m := range methods {
		value := m.DisplayValue()
		if strings.TrimSpace(value) == "" {
			continue
		}
		lines = append(lines, Line{Title: m.DisplayTitle(), Value: value})
	}
	return lines
}

// Block draws a titled payment details section. Geometry and styling come
// from the template that owns it.
type Block struct {
	LeftX float64
	Width float64

	Title       string // section heading, e.g. "Payment Details"
	TitleFont   layout.Font
	RowFont     layout.Font
	NotesFont   layout.Font
	TitleColor  layout.RGB
	TextColor   layout.RGB
	SubtleColor layout.RGB
	BoxColor    layout.RGB
	Boxed       bool // fill a background box behind the rows

	RowHeight float64
	Spacing   float64
	Padding   float64
}

const titleHeight = 6.0

// Draw renders the block at y and returns the cursor position below it.
// With no formatted lines and no notes nothing is drawn and y is returned
// unchanged.
func (b Block) Draw(c *layout.Canvas, y float64, methods []entity.PaymentMethod, notes string) float64 {
	lines := Lines(methods)
	notes = strings.TrimSpace(notes)
	if len(lines) == 0 && notes == "" {
		return y
	}

	c.Text(layout.Rect{X: b.LeftX, Y: y, W: b.Width, H: titleHeight},
		b.Title, b.TitleFont, layout.AlignLeft, b.TitleColor)
	y += titleHeight + b.Spacing

	if len(lines) > 0 {
		boxHeight := float64(len(lines))*(b.RowHeight+b.Spacing) + b.Padding
		box := layout.Rect{X: b.LeftX, Y: y, W: b.Width, H: boxHeight}
		if b.Boxed {
			c.FillRect(box, b.BoxColor)
		}

		rowY := y + b.Padding/2
		for _, line := range lines {
			row := layout.Rect{X: b.LeftX + b.Padding, Y: rowY, W: b.Width - 2*b.Padding, H: b.RowHeight}
			titleFont := b.RowFont
			titleFont.Style = "B"
			titleW := c.TextWidth(line.Title, titleFont) + 2
			c.Text(layout.Rect{X: row.X, Y: row.Y, W: titleW, H: row.H},
				line.Title, titleFont, layout.AlignLeft, b.TextColor)
			c.Text(layout.Rect{X: row.X + titleW, Y: row.Y, W: row.W - titleW, H: row.H},
				line.Value, b.RowFont, layout.AlignLeft, b.SubtleColor)
			rowY += b.RowHeight + b.Spacing
		}
		y += boxHeight
	}

	if notes != "" {
		y += b.Spacing
		c.Text(layout.Rect{X: b.LeftX, Y: y, W: b.Width, H: b.RowHeight},
			notes, b.NotesFont, layout.AlignLeft, b.SubtleColor)
		y += b.RowHeight
	}

	return y
}
