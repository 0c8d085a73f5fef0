package table

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/render/layout"
)

func testColumns() []Column {
	return []Column{
		{Title: "Description", Weight: 3, Align: layout.AlignLeft},
		{Title: "Qty", Weight: 1, Align: layout.AlignRight},
		{Title: "Rate", Weight: 1.5, Align: layout.AlignRight},
		{Title: "Amount", Weight: 1.5, Align: layout.AlignRight},
	}
}

func makeItems(t *testing.T, n int) []entity.LineItem {
	t.Helper()
	items := make([]entity.LineItem, 0, n)
	for i := 0; i < n; i++ {
		li, err := entity.NewLineItem(fmt.Sprintf("Item %d", i+1), "1", "10.00")
		require.NoError(t, err)
		items = append(items, li)
	}
	return items
}

func testCanvas() *layout.Canvas {
	c := layout.NewCanvas(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
	c.AddPage()
	return c
}

func TestRenderPagination(t *testing.T) {
	items := makeItems(t, 45)
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        15,
		RightX:       195,
		HeaderHeight: 9,
		RowHeight:    8,
		SafeBottom:   220,
		Currency:     "USD",
	}

	c := testCanvas()

	// page 1: 220 - (50 + 9) = 161 of space, 20 full rows fit
	res := tbl.Render(c, items, 50)
	require.Equal(t, 20, res.Drawn)
	require.True(t, res.HasMore)
	require.Equal(t, 50.0+9+20*8, res.CursorY)

	// page 2 starts higher and runs deeper, the remaining 25 fit
	c.AddPage()
	tbl.SafeBottom = 230
	res = tbl.Render(c, items[res.Drawn:], 20)
	require.Equal(t, 25, res.Drawn)
	require.False(t, res.HasMore)
	require.Equal(t, 20.0+9+25*8, res.CursorY)
}

func TestRenderAllFitOnOnePage(t *testing.T) {
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        15,
		RightX:       195,
		HeaderHeight: 9,
		RowHeight:    8,
		SafeBottom:   270,
		Currency:     "USD",
	}
	res := tbl.Render(testCanvas(), makeItems(t, 5), 60)
	require.Equal(t, 5, res.Drawn)
	require.False(t, res.HasMore)
	require.Equal(t, 60.0+9+5*8, res.CursorY)
}

func TestRenderZeroItems(t *testing.T) {
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        15,
		RightX:       195,
		HeaderHeight: 9,
		RowHeight:    8,
		SafeBottom:   270,
	}
	res := tbl.Render(testCanvas(), nil, 60)
	require.Zero(t, res.Drawn)
	require.False(t, res.HasMore)
	require.Equal(t, 69.0, res.CursorY, "cursor sits just below the header")
}

func TestRenderNoRoomBelowHeader(t *testing.T) {
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        15,
		RightX:       195,
		HeaderHeight: 9,
		RowHeight:    8,
		SafeBottom:   65, // header ends at 69, past the boundary
	}
	res := tbl.Render(testCanvas(), makeItems(t, 3), 60)
	require.Zero(t, res.Drawn)
	require.True(t, res.HasMore)
}

func TestRenderCallbacks(t *testing.T) {
	var (
		headerBands int
		headerCells []string
		rowShades   []bool
		rowCells    []string
	)
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        15,
		RightX:       195,
		HeaderHeight: 9,
		RowHeight:    8,
		SafeBottom:   270,
		Currency:     "EUR",
		DrawHeaderBackground: func(c *layout.Canvas, band layout.Rect) {
			headerBands++
			require.Equal(t, layout.Rect{X: 15, Y: 60, W: 180, H: 9}, band)
		},
		DrawHeaderCell: func(c *layout.Canvas, cell layout.Rect, col Column, text string) {
			headerCells = append(headerCells, text)
		},
		DrawRowBackground: func(c *layout.Canvas, band layout.Rect, row int, shaded bool) {
			rowShades = append(rowShades, shaded)
		},
		DrawRowCell: func(c *layout.Canvas, cell layout.Rect, col Column, text string) {
			rowCells = append(rowCells, text)
		},
	}

	res := tbl.Render(testCanvas(), makeItems(t, 3), 60)
	require.Equal(t, 3, res.Drawn)
	require.Equal(t, 1, headerBands)
	require.Equal(t, []string{"Description", "Qty", "Rate", "Amount"}, headerCells)
	require.Equal(t, []bool{true, false, true}, rowShades)
	require.Len(t, rowCells, 12)
	require.Equal(t, []string{"Item 1", "1", "€10.00", "€10.00"}, rowCells[:4])
}

func TestRenderColumnGeometry(t *testing.T) {
	var cells []layout.Rect
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        10,
		RightX:       200,
		HeaderHeight: 10,
		RowHeight:    8,
		SafeBottom:   270,
		DrawHeaderCell: func(c *layout.Canvas, cell layout.Rect, col Column, text string) {
			cells = append(cells, cell)
		},
	}
	tbl.Render(testCanvas(), nil, 40)

	require.Len(t, cells, 4)
	require.Equal(t, 10.0, cells[0].X)
	for i := 1; i < len(cells); i++ {
		require.InDelta(t, cells[i-1].X+cells[i-1].W, cells[i].X, 1e-9)
	}
	last := cells[len(cells)-1]
	require.Equal(t, 200.0, last.X+last.W)
}

func TestRenderContinuationMarker(t *testing.T) {
	var marker *layout.Rect
	tbl := Table{
		Columns:      testColumns(),
		LeftX:        15,
		RightX:       195,
		HeaderHeight: 9,
		RowHeight:    8,
		SafeBottom:   80,
		DrawContinuation: func(c *layout.Canvas, r layout.Rect) {
			marker = &r
		},
	}
	res := tbl.Render(testCanvas(), makeItems(t, 10), 60)
	require.True(t, res.HasMore)
	require.NotNil(t, marker)
	require.Equal(t, 80.0-6.0, marker.Y)
	require.Equal(t, 15.0, marker.X)
	require.Equal(t, 180.0, marker.W)
}
