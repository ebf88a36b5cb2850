package pdf

import (
	"fmt"
	"strconv"

	"palmcafe/internal/model"
	"palmcafe/pkg/money"

	"github.com/shopspring/decimal"
)

// Page geometry in millimetres. printableHeight stays below what maroto
// leaves between the top margin and the page-number footer on A4, so a
// planned page never spills onto a second physical page.
const (
	gridSize        = 12
	pageWidth       = 210.0
	leftMargin      = 10.0
	rightMargin     = 10.0
	topMargin       = 15.0
	contentWidth    = pageWidth - leftMargin - rightMargin
	printableHeight = 250.0
)

// Row heights.
const (
	headerHeight   = 28.0
	titleHeight    = 10.0
	metaHeight     = 6.0
	sectionHeight  = 8.0
	tableRowHeight = 7.0
	ruleHeight     = 3.0
	totalHeight    = 7.0
	grandHeight    = 10.0
	footerHeight   = 16.0
	footnoteHeight = 5.0
)

// itemColumns is the item table grid: name, quantity, unit price, line total.
var itemColumns = [4]int{6, 2, 2, 2}

// Align is the horizontal alignment of a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Cell is one column of a planned line. A cell with Mark set draws the
// logo mark instead of text.
type Cell struct {
	Span  int
	Text  string
	Bold  bool
	Size  float64
	Align Align
	Mark  bool
}

// LineKind tells the renderer how to draw a line.
type LineKind int

const (
	LineText LineKind = iota
	LineRule
	LineItem
)

type Line struct {
	Kind   LineKind
	Height float64
	Cells  []Cell
}

type Page struct {
	Lines []Line
}

// Height is the sum of the line heights on the page.
func (p Page) Height() float64 {
	var h float64
	for _, l := range p.Lines {
		h += l.Height
	}
	return h
}

// Plan is the full document laid out into pages.
type Plan struct {
	Pages []Page
}

// Texts returns every cell text in the plan, in drawing order.
func (p Plan) Texts() []string {
	var out []string
	for _, page := range p.Pages {
		for _, l := range page.Lines {
			for _, c := range l.Cells {
				if c.Text != "" {
					out = append(out, c.Text)
				}
			}
		}
	}
	return out
}

// ColumnX returns the left edge, in mm from the page edge, of each cell of l.
func ColumnX(l Line) []float64 {
	xs := make([]float64, 0, len(l.Cells))
	x := leftMargin
	for _, c := range l.Cells {
		xs = append(xs, x)
		x += contentWidth * float64(c.Span) / gridSize
	}
	return xs
}

// Content is the header text that is not part of the invoice itself.
type Content struct {
	BusinessName string
	Title        string
	ThankYou     string
	Attribution  string
}

// DefaultContent is the text printed on every Palm Cafe invoice.
func DefaultContent() Content {
	return Content{
		BusinessName: "PALM CAFE",
		Title:        "INVOICE",
		ThankYou:     "Thank you for visiting Palm Cafe!",
		Attribution:  "Generated by Palm Cafe Management System",
	}
}

type planner struct {
	plan   Plan
	cursor float64
}

// add appends l, starting a new page when l would cross printableHeight.
// It reports whether a page break happened.
func (p *planner) add(l Line) bool {
	broke := false
	if len(p.plan.Pages) == 0 || (p.cursor > 0 && p.cursor+l.Height > printableHeight) {
		p.plan.Pages = append(p.plan.Pages, Page{})
		p.cursor = 0
		broke = len(p.plan.Pages) > 1
	}
	last := &p.plan.Pages[len(p.plan.Pages)-1]
	last.Lines = append(last.Lines, l)
	p.cursor += l.Height
	return broke
}

// Layout plans inv into pages. symbol must already be render-safe.
func Layout(inv *model.Invoice, symbol string, content Content) Plan {
	var p planner
	amount := func(d decimal.Decimal) string { return money.Format(symbol, d) }

	p.add(Line{Kind: LineText, Height: headerHeight, Cells: []Cell{
		{Span: 3, Mark: true},
		{Span: 6, Text: content.BusinessName, Bold: true, Size: 22, Align: AlignCenter},
		{Span: 3},
	}})
	p.add(textLine(titleHeight, Cell{Span: gridSize, Text: content.Title, Size: 14, Align: AlignCenter}))

	p.add(textLine(metaHeight, Cell{Span: gridSize, Text: "Invoice #: " + inv.InvoiceNumber, Bold: true, Size: 12}))
	p.add(textLine(metaHeight, Cell{Span: gridSize, Text: "Date: " + inv.Date.Format("Jan 02, 2006"), Size: 10}))
	p.add(textLine(metaHeight, Cell{Span: gridSize, Text: "Time: " + inv.Date.Format("03:04 PM"), Size: 10}))

	p.add(textLine(sectionHeight, Cell{Span: gridSize, Text: "Customer Information:", Bold: true, Size: 12}))
	p.add(textLine(metaHeight, Cell{Span: gridSize, Text: "Name: " + inv.CustomerName, Size: 10}))
	if inv.CustomerPhone != "" {
		p.add(textLine(metaHeight, Cell{Span: gridSize, Text: "Phone: " + inv.CustomerPhone, Size: 10}))
	}

	p.add(textLine(sectionHeight, Cell{Span: gridSize, Text: "Items:", Bold: true, Size: 12}))
	p.add(tableHeader())
	p.add(Line{Kind: LineRule, Height: ruleHeight})
	for _, item := range inv.Items {
		row := itemLine(item.ItemName, strconv.Itoa(item.Quantity), amount(item.Price), amount(item.Total))
		if p.add(row) {
			// continue the table under a repeated header
			last := &p.plan.Pages[len(p.plan.Pages)-1]
			last.Lines = append([]Line{tableHeader(), {Kind: LineRule, Height: ruleHeight}}, last.Lines...)
			p.cursor += tableRowHeight + ruleHeight
		}
	}

	p.add(Line{Kind: LineRule, Height: ruleHeight})
	p.add(totalLine("Subtotal:", amount(inv.Subtotal), false, totalHeight))
	if inv.TaxAmount.IsPositive() {
		p.add(totalLine(taxLabel(inv), amount(inv.TaxAmount), false, totalHeight))
	}
	if inv.TipAmount.IsPositive() {
		p.add(totalLine("Tip:", amount(inv.TipAmount), false, totalHeight))
	}
	p.add(totalLine("Total:", amount(inv.Total), true, grandHeight))

	p.add(Line{Kind: LineText, Height: footerHeight, Cells: []Cell{
		{Span: 1, Mark: true},
		{Span: 11},
	}})
	p.add(textLine(footnoteHeight, Cell{Span: gridSize, Text: content.ThankYou, Size: 10, Align: AlignCenter}))
	p.add(textLine(footnoteHeight, Cell{Span: gridSize, Text: content.Attribution, Size: 8, Align: AlignCenter}))

	return p.plan
}

func taxLabel(inv *model.Invoice) string {
	name := inv.TaxName
	if name == "" {
		name = "Tax"
	}
	if inv.TaxRate.IsZero() {
		return name + ":"
	}
	return fmt.Sprintf("%s (%s%%):", name, inv.TaxRate.String())
}

func textLine(height float64, c Cell) Line {
	return Line{Kind: LineText, Height: height, Cells: []Cell{c}}
}

func tableHeader() Line {
	return Line{Kind: LineItem, Height: tableRowHeight, Cells: []Cell{
		{Span: itemColumns[0], Text: "Item", Bold: true, Size: 10},
		{Span: itemColumns[1], Text: "Qty", Bold: true, Size: 10, Align: AlignRight},
		{Span: itemColumns[2], Text: "Price", Bold: true, Size: 10, Align: AlignRight},
		{Span: itemColumns[3], Text: "Total", Bold: true, Size: 10, Align: AlignRight},
	}}
}

func itemLine(name, qty, price, total string) Line {
	return Line{Kind: LineItem, Height: tableRowHeight, Cells: []Cell{
		{Span: itemColumns[0], Text: name, Size: 10},
		{Span: itemColumns[1], Text: qty, Size: 10, Align: AlignRight},
		{Span: itemColumns[2], Text: price, Size: 10, Align: AlignRight},
		{Span: itemColumns[3], Text: total, Size: 10, Align: AlignRight},
	}}
}

func totalLine(label, value string, grand bool, height float64) Line {
	size := 10.0
	if grand {
		size = 12
	}
	return Line{Kind: LineText, Height: height, Cells: []Cell{
		{Span: 8},
		{Span: 2, Text: label, Bold: grand, Size: size},
		{Span: 2, Text: value, Bold: grand, Size: size, Align: AlignRight},
	}}
}
