// Package table lays out invoice line items as a paginated table. The
// layout math (column splitting, row capacity, continuation) is shared by
// every template; the visual treatment of headers and rows comes in through
// drawing callbacks so each design keeps its own look.
package table

import (
	"math"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/render/layout"
	"github.com/docuflow/docuflow-api/pkg/currency"
)

// Column describes one table column: its heading, relative width, and the
// horizontal alignment of its cells.
type Column struct {
	Title  string
	Weight float64
	Align  layout.Align
}

// BandFunc draws a full-width horizontal band (header or row background).
type BandFunc func(c *layout.Canvas, band layout.Rect)

// RowBandFunc draws a row background. shaded is true for every other row.
type RowBandFunc func(c *layout.Canvas, band layout.Rect, row int, shaded bool)

// CellFunc draws one cell's text content inside its bounding rect.
type CellFunc func(c *layout.Canvas, cell layout.Rect, col Column, text string)

// Table renders line items between LeftX and RightX, stopping at the safe
// bottom boundary. It is page-count agnostic: Render reports how many items
// fit and whether more remain, and the caller re-invokes it on a fresh page
// with the remainder.
type Table struct {
	Columns      []Column
	LeftX        float64
	RightX       float64
	HeaderHeight float64
	RowHeight    float64
	// SafeBottom is the absolute y of the safe bottom line
	// (page height minus the safe bottom margin).
	SafeBottom float64
	Currency   string

	DrawHeaderBackground BandFunc
	DrawHeaderCell       CellFunc
	DrawRowBackground    RowBandFunc
	DrawRowCell          CellFunc
	// DrawContinuation draws the "more rows follow" marker; nil uses a
	// subtle right-aligned default.
	DrawContinuation func(c *layout.Canvas, r layout.Rect)
}

// Result reports the outcome of one Render call.
type Result struct {
	// CursorY is the y position just below the last drawn row (or below the
	// header when nothing fit).
	CursorY float64
	// Drawn is how many items were rendered on this page.
	Drawn int
	// HasMore is true when items remain for a subsequent page.
	HasMore bool
}

const continuationHeight = 6.0

// Render draws the header band at top and as many item rows as fit above the
// safe bottom line, alternating row shading. When items remain it draws a
// continuation marker just above the boundary.
func (t Table) Render(c *layout.Canvas, items []entity.LineItem, top float64) Result {
	width := t.RightX - t.LeftX
	weights := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		weights[i] = col.Weight
	}
	cols := layout.SplitColumns(t.LeftX, width, weights)

	header := layout.Rect{X: t.LeftX, Y: top, W: width, H: t.HeaderHeight}
	if t.DrawHeaderBackground != nil {
		t.DrawHeaderBackground(c, header)
	}
	if t.DrawHeaderCell != nil {
		for i, col := range t.Columns {
			cell := layout.Rect{X: cols[i].X, Y: top, W: cols[i].W, H: t.HeaderHeight}
			t.DrawHeaderCell(c, cell, col, col.Title)
		}
	}

	available := t.SafeBottom - (top + t.HeaderHeight)
	fit := 0
	if t.RowHeight > 0 && available > 0 {
		fit = int(math.Floor(available / t.RowHeight))
	}
	drawn := fit
	if drawn > len(items) {
		drawn = len(items)
	}
	if drawn < 0 {
		drawn = 0
	}

	rowTop := top + t.HeaderHeight
	for i := 0; i < drawn; i++ {
		band := layout.Rect{X: t.LeftX, Y: rowTop, W: width, H: t.RowHeight}
		if t.DrawRowBackground != nil {
			t.DrawRowBackground(c, band, i, i%2 == 0)
		}
		if t.DrawRowCell != nil {
			for j, col := range t.Columns {
				cell := layout.Rect{X: cols[j].X, Y: rowTop, W: cols[j].W, H: t.RowHeight}
				t.DrawRowCell(c, cell, col, t.cellText(items[i], j))
			}
		}
		rowTop += t.RowHeight
	}

	hasMore := drawn < len(items)
	if hasMore {
		marker := layout.Rect{
			X: t.LeftX,
			Y: t.SafeBottom - continuationHeight,
			W: width,
			H: continuationHeight,
		}
		if t.DrawContinuation != nil {
			t.DrawContinuation(c, marker)
		} else {
			c.Text(marker, "Continued on next page…",
				layout.Font{Family: "Helvetica", Style: "I", Size: 8},
				layout.AlignRight, layout.RGB{R: 120, G: 120, B: 120})
		}
	}

	return Result{CursorY: rowTop, Drawn: drawn, HasMore: hasMore}
}

// cellText maps a column position to its display value: description,
// plain-decimal quantity, formatted rate, formatted line total.
func (t Table) cellText(item entity.LineItem, col int) string {
	switch col {
	case 0:
		return item.Description
	case 1:
		return item.Quantity.String()
	case 2:
		return currency.Format(item.Rate, t.Currency)
	case 3:
		return currency.Format(item.Total(), t.Currency)
	default:
		return ""
	}
}
