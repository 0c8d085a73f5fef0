package template

import (
	"fmt"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/internal/render/layout"
	"github.com/docuflow/docuflow-api/internal/render/payment"
	"github.com/docuflow/docuflow-api/internal/render/table"
	"github.com/docuflow/docuflow-api/pkg/currency"
)

// headerTreatment selects how the page header band is drawn.
type headerTreatment int

const (
	headerBanded   headerTreatment = iota // full-width filled band
	headerHairline                        // open header over a thin rule
	headerBlocked                         // filled block behind the title
	headerTwoTone                         // split band, primary + secondary
)

// MotifFunc draws a design's decorative page background. It runs before any
// content so everything else layers on top.
type MotifFunc func(c *layout.Canvas, page layout.Rect, p Palette)

// Style is the full set of tokens that differentiates one design from
// another. The rendering skeleton itself is shared.
type Style struct {
	BodyFamily    string
	HeadingFamily string

	Header      headerTreatment
	TableFilled bool // filled table header band; false draws a rule instead
	RowShading  bool // alternate row backgrounds
	Framed      bool // hairline frame around the page content
	Motif       MotifFunc

	Margin           float64
	SafeBottomMargin float64
	RowHeight        float64
	HeaderRowHeight  float64
}

// normalized fills zero-valued geometry with the shared defaults.
func (s Style) normalized() Style {
	if s.BodyFamily == "" {
		s.BodyFamily = "Helvetica"
	}
	if s.HeadingFamily == "" {
		s.HeadingFamily = s.BodyFamily
	}
	if s.Margin == 0 {
		s.Margin = 16
	}
	if s.SafeBottomMargin == 0 {
		s.SafeBottomMargin = 18
	}
	if s.RowHeight == 0 {
		s.RowHeight = 8
	}
	if s.HeaderRowHeight == 0 {
		s.HeaderRowHeight = 9
	}
	return s
}

var white = layout.RGB{R: 255, G: 255, B: 255}

// styledRenderer is the shared skeleton: every design is an instance of this
// type with different tokens.
type styledRenderer struct {
	descriptor entity.TemplateDescriptor
	theme      entity.TemplateTheme
	palette    Palette
	style      Style
}

func (t *styledRenderer) Theme() entity.TemplateTheme {
	return t.theme
}

// Draw renders the whole invoice: header and bill-to on the first page, the
// item table across as many pages as it needs, then totals, payment details
// and per-page footers.
func (t *styledRenderer) Draw(c *layout.Canvas, inv *entity.Invoice, company entity.Company,
	customer entity.Customer, currencyCode string, logo []byte) error {

	st := t.style.normalized()
	page := c.PageRect()
	left := st.Margin
	right := page.W - st.Margin
	safeBottom := page.H - st.SafeBottomMargin

	startPage := func() {
		c.AddPage()
		c.FillRect(page, t.palette.Background)
		if st.Motif != nil {
			st.Motif(c, page, t.palette)
		}
		if st.Framed {
			c.StrokeRect(page.Inset(st.Margin/2), t.palette.Line, 0.4)
		}
		t.drawFooter(c, company, page, st)
	}

	startPage()
	y := t.drawHeader(c, inv, company, logo, left, right, st)
	y = t.drawBillTo(c, inv, customer, left, right, y, st)

	tbl := t.buildTable(left, right, safeBottom, currencyCode, st)
	items := inv.Items
	res := tbl.Render(c, items, y)
	for res.HasMore {
		items = items[res.Drawn:]
		startPage()
		contY := t.drawContinuedHeader(c, inv, left, right, st)
		res = tbl.Render(c, items, contY)
	}
	y = res.CursorY + 5

	totalsHeight := t.totalsHeight(inv)
	y = layout.PlaceBlock(y, totalsHeight, safeBottom)
	y = t.drawTotals(c, inv, currencyCode, right, y, st)

	block := t.paymentBlock(left, right, st)
	payY := y + 4
	payY = layout.PlaceBlock(payY, t.paymentHeight(inv, block), safeBottom)
	block.Draw(c, payY, inv.PaymentMethods, inv.PaymentNotes)

	return c.Error()
}

const (
	bandedHeaderHeight = 34
	openHeaderHeight   = 30
	logoBoxSize        = 22.0
)

// drawHeader draws the identity band and returns the content cursor below it.
func (t *styledRenderer) drawHeader(c *layout.Canvas, inv *entity.Invoice, company entity.Company,
	logo []byte, left, right float64, st Style) float64 {

	page := c.PageRect()
	heading := layout.Font{Family: st.HeadingFamily, Style: "B", Size: 20}
	nameFont := layout.Font{Family: st.HeadingFamily, Style: "B", Size: 14}
	metaFont := layout.Font{Family: st.BodyFamily, Size: 9}

	switch st.Header {
	case headerBanded:
		band := layout.Rect{X: 0, Y: 0, W: page.W, H: bandedHeaderHeight}
		c.FillRect(band, t.palette.Primary)
		textX := left
		if len(logo) > 0 {
			box := layout.Rect{X: left, Y: 6, W: logoBoxSize, H: logoBoxSize}
			_ = c.ImageFit(box, logo)
			textX += logoBoxSize + 5
		}
		c.Text(layout.Rect{X: textX, Y: 7, W: right - textX, H: 10},
			company.Name, nameFont, layout.AlignLeft, white)
		c.Text(layout.Rect{X: left, Y: 6, W: right - left, H: 12},
			"INVOICE", heading, layout.AlignRight, white)
		c.Text(layout.Rect{X: left, Y: 18, W: right - left, H: 8},
			"#"+inv.Number, metaFont, layout.AlignRight, white)
		return bandedHeaderHeight + 8

	case headerBlocked:
		blockW := c.TextWidth("INVOICE", heading) + 12
		block := layout.Rect{X: right - blockW, Y: st.Margin, W: blockW, H: 14}
		c.FillRect(block, t.palette.Primary)
		c.Text(block, "INVOICE", heading, layout.AlignCenter, white)
		c.Text(layout.Rect{X: right - blockW, Y: st.Margin + 15, W: blockW, H: 6},
			"#"+inv.Number, metaFont, layout.AlignCenter, t.palette.Subtle)
		t.drawCompanyIdentity(c, company, logo, left, right-blockW-8, st.Margin, nameFont, metaFont)
		return st.Margin + openHeaderHeight

	case headerTwoTone:
		half := page.W / 2
		c.FillRect(layout.Rect{X: 0, Y: 0, W: half, H: bandedHeaderHeight}, t.palette.Primary)
		c.FillRect(layout.Rect{X: half, Y: 0, W: page.W - half, H: bandedHeaderHeight}, t.palette.Secondary)
		textX := left
		if len(logo) > 0 {
			box := layout.Rect{X: left, Y: 6, W: logoBoxSize, H: logoBoxSize}
			_ = c.ImageFit(box, logo)
			textX += logoBoxSize + 5
		}
		c.Text(layout.Rect{X: textX, Y: 7, W: half - textX, H: 10},
			company.Name, nameFont, layout.AlignLeft, white)
		c.Text(layout.Rect{X: half, Y: 6, W: right - half, H: 12},
			"INVOICE", heading, layout.AlignRight, white)
		c.Text(layout.Rect{X: half, Y: 18, W: right - half, H: 8},
			"#"+inv.Number, metaFont, layout.AlignRight, white)
		return bandedHeaderHeight + 8

	default: // headerHairline
		t.drawCompanyIdentity(c, company, logo, left, right, st.Margin, nameFont, metaFont)
		c.Text(layout.Rect{X: left, Y: st.Margin, W: right - left, H: 12},
			"INVOICE", heading, layout.AlignRight, t.palette.Primary)
		c.Text(layout.Rect{X: left, Y: st.Margin + 12, W: right - left, H: 6},
			"#"+inv.Number, metaFont, layout.AlignRight, t.palette.Subtle)
		ruleY := st.Margin + openHeaderHeight - 4
		c.StrokeLine(left, ruleY, right, ruleY, t.palette.Line, 0.5)
		return st.Margin + openHeaderHeight
	}
}

// drawCompanyIdentity draws the logo and company name block used by the open
// header treatments.
func (t *styledRenderer) drawCompanyIdentity(c *layout.Canvas, company entity.Company, logo []byte,
	left, right, top float64, nameFont, metaFont layout.Font) {

	textX := left
	if len(logo) > 0 {
		box := layout.Rect{X: left, Y: top, W: logoBoxSize, H: logoBoxSize}
		_ = c.ImageFit(box, logo)
		textX += logoBoxSize + 5
	}
	c.Text(layout.Rect{X: textX, Y: top, W: right - textX, H: 8},
		company.Name, nameFont, layout.AlignLeft, t.palette.Primary)
	lineY := top + 8.5
	for _, line := range company.Address.Lines() {
		c.Text(layout.Rect{X: textX, Y: lineY, W: right - textX, H: 4.5},
			line, metaFont, layout.AlignLeft, t.palette.Subtle)
		lineY += 4.5
	}
}

// drawBillTo draws the customer block on the left and the invoice metadata
// (dates, status) on the right; returns the cursor below the taller side.
func (t *styledRenderer) drawBillTo(c *layout.Canvas, inv *entity.Invoice, customer entity.Customer,
	left, right, top float64, st Style) float64 {

	labelFont := layout.Font{Family: st.BodyFamily, Style: "B", Size: 8}
	nameFont := layout.Font{Family: st.HeadingFamily, Style: "B", Size: 11}
	bodyFont := layout.Font{Family: st.BodyFamily, Size: 9}

	colW := (right - left) / 2

	c.Text(layout.Rect{X: left, Y: top, W: colW, H: 5},
		"BILL TO", labelFont, layout.AlignLeft, t.palette.Subtle)
	yL := top + 5.5
	c.Text(layout.Rect{X: left, Y: yL, W: colW, H: 6},
		customer.Name, nameFont, layout.AlignLeft, t.palette.Secondary)
	yL += 6.5
	for _, line := range customer.Address.Lines() {
		c.Text(layout.Rect{X: left, Y: yL, W: colW, H: 4.5},
			line, bodyFont, layout.AlignLeft, t.palette.Subtle)
		yL += 4.5
	}
	if customer.Email != "" {
		c.Text(layout.Rect{X: left, Y: yL, W: colW, H: 4.5},
			customer.Email, bodyFont, layout.AlignLeft, t.palette.Subtle)
		yL += 4.5
	}

	metaX := left + colW
	yR := top
	meta := []struct{ label, value string }{
		{"Issue Date", currency.FormatDate(inv.IssueDate)},
	}
	if inv.DueDate != nil {
		meta = append(meta, struct{ label, value string }{"Due Date", currency.FormatDate(*inv.DueDate)})
	}
	meta = append(meta, struct{ label, value string }{"Status", inv.Status.String()})
	for _, m := range meta {
		c.Text(layout.Rect{X: metaX, Y: yR, W: colW - 30, H: 5},
			m.label, labelFont, layout.AlignRight, t.palette.Subtle)
		valueColor := t.palette.Secondary
		if m.label == "Status" {
			valueColor = t.palette.Accent
		}
		c.Text(layout.Rect{X: metaX + colW - 28, Y: yR, W: 28, H: 5},
			m.value, bodyFont, layout.AlignRight, valueColor)
		yR += 5.5
	}

	bottom := yL
	if yR > bottom {
		bottom = yR
	}
	return bottom + 7
}

// drawContinuedHeader draws the compact identity line used on overflow pages.
func (t *styledRenderer) drawContinuedHeader(c *layout.Canvas, inv *entity.Invoice,
	left, right float64, st Style) float64 {

	font := layout.Font{Family: st.HeadingFamily, Style: "B", Size: 11}
	c.Text(layout.Rect{X: left, Y: st.Margin, W: right - left, H: 6},
		"Invoice #"+inv.Number, font, layout.AlignLeft, t.palette.Primary)
	c.Text(layout.Rect{X: left, Y: st.Margin, W: right - left, H: 6},
		"continued", layout.Font{Family: st.BodyFamily, Style: "I", Size: 9},
		layout.AlignRight, t.palette.Subtle)
	ruleY := st.Margin + 8
	c.StrokeLine(left, ruleY, right, ruleY, t.palette.Line, 0.4)
	return ruleY + 4
}

// buildTable wires the shared table layout to this design's cell styling.
func (t *styledRenderer) buildTable(left, right, safeBottom float64, currencyCode string, st Style) table.Table {
	headerFont := layout.Font{Family: st.BodyFamily, Style: "B", Size: 9}
	cellFont := layout.Font{Family: st.BodyFamily, Size: 9}

	headerColor := t.palette.Secondary
	if st.TableFilled {
		headerColor = white
	}

	return table.Table{
		Columns: []table.Column{
			{Title: "DESCRIPTION", Weight: 6, Align: layout.AlignLeft},
			{Title: "QTY", Weight: 1.5, Align: layout.AlignRight},
			{Title: "RATE", Weight: 2.25, Align: layout.AlignRight},
			{Title: "AMOUNT", Weight: 2.25, Align: layout.AlignRight},
		},
		LeftX:        left,
		RightX:       right,
		HeaderHeight: st.HeaderRowHeight,
		RowHeight:    st.RowHeight,
		SafeBottom:   safeBottom,
		Currency:     currencyCode,
		DrawHeaderBackground: func(c *layout.Canvas, band layout.Rect) {
			if st.TableFilled {
				c.FillRect(band, t.palette.Primary)
			} else {
				c.StrokeLine(band.X, band.Y+band.H, band.X+band.W, band.Y+band.H, t.palette.Line, 0.5)
			}
		},
		DrawHeaderCell: func(c *layout.Canvas, cell layout.Rect, col table.Column, text string) {
			c.Text(cell.Inset(1.5), text, headerFont, col.Align, headerColor)
		},
		DrawRowBackground: func(c *layout.Canvas, band layout.Rect, row int, shaded bool) {
			if st.RowShading && shaded {
				c.FillRect(band, t.palette.Line)
			}
		},
		DrawRowCell: func(c *layout.Canvas, cell layout.Rect, col table.Column, text string) {
			c.Text(cell.Inset(1.5), text, cellFont, col.Align, t.palette.Secondary)
		},
	}
}

const totalsRowHeight = 7.0

// totalsHeight returns the vertical space the totals block will consume,
// used for safe-bottom placement before drawing.
func (t *styledRenderer) totalsHeight(inv *entity.Invoice) float64 {
	rows := 2.0 // subtotal + grand total
	if inv.TaxAmount().IsPositive() {
		rows++
	}
	if inv.DiscountAmount().IsPositive() {
		rows++
	}
	return rows*totalsRowHeight + 4
}

// drawTotals draws the right-aligned totals column and returns the cursor
// below it.
func (t *styledRenderer) drawTotals(c *layout.Canvas, inv *entity.Invoice, currencyCode string,
	right, top float64, st Style) float64 {

	labelFont := layout.Font{Family: st.BodyFamily, Size: 9.5}
	totalFont := layout.Font{Family: st.HeadingFamily, Style: "B", Size: 11.5}

	totals := inv.Totals(currencyCode)
	blockW := 72.0
	x := right - blockW
	y := top

	row := func(label, value string, font layout.Font, color layout.RGB) {
		c.Text(layout.Rect{X: x, Y: y, W: blockW * 0.55, H: totalsRowHeight},
			label, font, layout.AlignLeft, t.palette.Subtle)
		c.Text(layout.Rect{X: x + blockW*0.45, Y: y, W: blockW * 0.55, H: totalsRowHeight},
			value, font, layout.AlignRight, color)
		y += totalsRowHeight
	}

	row("Subtotal", currency.Format(totals.Subtotal, currencyCode), labelFont, t.palette.Secondary)
	if totals.Tax.IsPositive() {
		label := "Tax"
		if inv.TaxKind == enum.TaxKindPercentage {
			label = fmt.Sprintf("Tax (%s%%)", inv.TaxRate.String())
		}
		row(label, currency.Format(totals.Tax, currencyCode), labelFont, t.palette.Secondary)
	}
	if totals.Discount.IsPositive() {
		row("Discount", currency.Format(totals.Discount.Neg(), currencyCode), labelFont, t.palette.Accent)
	}

	c.StrokeLine(x, y+1, right, y+1, t.palette.Line, 0.5)
	y += 3
	row("Total", currency.Format(totals.Total, currencyCode), totalFont, t.palette.Primary)

	return y + 2
}

// paymentBlock builds this design's payment details block.
func (t *styledRenderer) paymentBlock(left, right float64, st Style) payment.Block {
	return payment.Block{
		LeftX:       left,
		Width:       (right - left) * 0.58,
		Title:       "Payment Details",
		TitleFont:   layout.Font{Family: st.HeadingFamily, Style: "B", Size: 11},
		RowFont:     layout.Font{Family: st.BodyFamily, Size: 9},
		NotesFont:   layout.Font{Family: st.BodyFamily, Style: "I", Size: 8.5},
		TitleColor:  t.palette.Primary,
		TextColor:   t.palette.Secondary,
		SubtleColor: t.palette.Subtle,
		BoxColor:    t.palette.Line,
		Boxed:       st.TableFilled,
		RowHeight:   5,
		Spacing:     2,
		Padding:     4,
	}
}

// paymentHeight estimates the payment block's height for placement.
func (t *styledRenderer) paymentHeight(inv *entity.Invoice, b payment.Block) float64 {
	lines := payment.Lines(inv.PaymentMethods)
	if len(lines) == 0 && inv.PaymentNotes == "" {
		return 0
	}
	h := 6 + b.Spacing
	if len(lines) > 0 {
		h += float64(len(lines))*(b.RowHeight+b.Spacing) + b.Padding
	}
	if inv.PaymentNotes != "" {
		h += b.Spacing + b.RowHeight
	}
	return h
}

// drawFooter draws the per-page footer: company identity centered, page
// number at the right edge.
func (t *styledRenderer) drawFooter(c *layout.Canvas, company entity.Company, page layout.Rect, st Style) {
	font := layout.Font{Family: st.BodyFamily, Size: 7.5}
	identity := company.Name
	if company.Website != "" {
		identity += "  ·  " + company.Website
	}
	if company.Email != "" {
		identity += "  ·  " + company.Email
	}
	y := page.H - 10
	c.Text(layout.Rect{X: st.Margin, Y: y, W: page.W - 2*st.Margin, H: 5},
		identity, font, layout.AlignCenter, t.palette.Subtle)
	c.Text(layout.Rect{X: st.Margin, Y: y, W: page.W - 2*st.Margin, H: 5},
		fmt.Sprintf("Page %d", c.PageCount()), font, layout.AlignRight, t.palette.Subtle)
}
