package template

import "github.com/docuflow/docuflow-api/internal/render/layout"

// Decorative page motifs. Each draws behind the content, once per page.

// motifSideRibbon runs a narrow accent bar down the left edge.
func motifSideRibbon(c *layout.Canvas, page layout.Rect, p Palette) {
	c.FillRect(layout.Rect{X: 0, Y: 0, W: 4, H: page.H}, p.Accent)
}

// motifBottomBand fills a band along the bottom edge.
func motifBottomBand(c *layout.Canvas, page layout.Rect, p Palette) {
	c.FillRect(layout.Rect{X: 0, Y: page.H - 5, W: page.W, H: 5}, p.Primary)
}

// motifOrbit draws concentric circles bleeding off the top-right corner.
func motifOrbit(c *layout.Canvas, page layout.Rect, p Palette) {
	for i, r := range []float64{14, 22, 30} {
		w := 0.8 - 0.2*float64(i)
		c.StrokeCircle(page.W-8, 10, r, p.Accent, w)
	}
}

// motifDiagonal draws a fan of accent lines in the top-right corner.
func motifDiagonal(c *layout.Canvas, page layout.Rect, p Palette) {
	for i := 0; i < 5; i++ {
		offset := float64(12 + i*7)
		c.StrokeLine(page.W-offset, 0, page.W, offset, p.Accent, 0.6)
	}
}

// motifMosaic staggers small filled squares near the top-right corner.
func motifMosaic(c *layout.Canvas, page layout.Rect, p Palette) {
	size := 6.0
	colors := []layout.RGB{p.Primary, p.Accent, p.Secondary}
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			c.FillRect(layout.Rect{
				X: page.W - size*float64(3-j) - 2,
				Y: 2 + size*float64(i),
				W: size - 1,
				H: size - 1,
			}, colors[(i+j)%len(colors)])
		}
	}
}

// motifDoubleRule draws paired rules near the top and bottom edges, the
// letterhead treatment used by the traditional designs.
func motifDoubleRule(c *layout.Canvas, page layout.Rect, p Palette) {
	c.StrokeLine(10, 8, page.W-10, 8, p.Primary, 0.8)
	c.StrokeLine(10, 10, page.W-10, 10, p.Primary, 0.3)
	c.StrokeLine(10, page.H-10, page.W-10, page.H-10, p.Primary, 0.3)
	c.StrokeLine(10, page.H-8, page.W-10, page.H-8, p.Primary, 0.8)
}

// motifCross draws the care cross used by the healthcare designs.
func motifCross(c *layout.Canvas, page layout.Rect, p Palette) {
	cx, cy := page.W-16.0, 12.0
	arm, thick := 9.0, 3.0
	c.FillRect(layout.Rect{X: cx - arm/2, Y: cy - thick/2, W: arm, H: thick}, p.Accent)
	c.FillRect(layout.Rect{X: cx - thick/2, Y: cy - arm/2, W: thick, H: arm}, p.Accent)
}

// motifDotStrip runs a row of dots along the bottom content edge.
func motifDotStrip(c *layout.Canvas, page layout.Rect, p Palette) {
	y := page.H - 14.0
	for x := 14.0; x < page.W-14; x += 8 {
		c.FillCircle(x, y, 0.7, p.Line)
	}
}

// motifContour draws nested quarter-circle outlines in the bottom-left
// corner.
func motifContour(c *layout.Canvas, page layout.Rect, p Palette) {
	for _, r := range []float64{18, 26, 34} {
		c.StrokeCircle(0, page.H, r, p.Accent, 0.5)
	}
}
