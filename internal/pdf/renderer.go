// Package pdf renders persisted invoices into printable documents.
package pdf

import (
	"bytes"
	"fmt"
	"sync"

	"palmcafe/internal/model"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// Renderer turns an invoice with its items into PDF bytes. The currency
// symbol must already be render-safe. Output depends only on the inputs.
type Renderer interface {
	Render(inv *model.Invoice, currencySymbol string) (Document, error)
}

// Document is a rendered invoice.
type Document struct {
	Bytes []byte
	Pages int
	Mark  string
}

type Config struct {
	LogoPath string
	Content  Content
}

type renderer struct {
	cfg Config
	log *zap.Logger
}

var catalogSortOnce sync.Once

func NewRenderer(cfg Config, log *zap.Logger) Renderer {
	// maroto builds its own Fpdf, so the sort flag has to be the package default.
	catalogSortOnce.Do(func() { gofpdf.SetDefaultCatalogSort(true) })
	if cfg.Content == (Content{}) {
		cfg.Content = DefaultContent()
	}
	return &renderer{cfg: cfg, log: log.Named("pdf")}
}

func (r *renderer) Render(inv *model.Invoice, currencySymbol string) (Document, error) {
	if inv == nil {
		return Document{}, fmt.Errorf("nil invoice")
	}
	mark := r.selectMark(inv.InvoiceNumber)
	plan := Layout(inv, currencySymbol, r.cfg.Content)

	cfg := config.NewBuilder().
		WithLeftMargin(leftMargin).
		WithTopMargin(topMargin).
		WithRightMargin(rightMargin).
		WithCreationDate(inv.Date).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)
	pages := make([]core.Page, 0, len(plan.Pages))
	for _, p := range plan.Pages {
		rows := make([]core.Row, 0, len(p.Lines))
		for _, l := range p.Lines {
			rows = append(rows, buildRow(l, mark))
		}
		pages = append(pages, page.New().Add(rows...))
	}
	m.AddPages(pages...)

	doc, err := m.Generate()
	if err != nil {
		return Document{}, fmt.Errorf("failed to generate invoice %s: %w", inv.InvoiceNumber, err)
	}
	return Document{Bytes: pinModDate(doc.GetBytes()), Pages: len(plan.Pages), Mark: mark.Kind()}, nil
}

var (
	creationDateKey = []byte("/CreationDate (D:")
	modDateKey      = []byte("/ModDate (D:")
)

const pdfStampLen = len("20060102150405")

// pinModDate copies the creation stamp over the modification stamp, which
// gofpdf otherwise takes from the wall clock. Both stamps have the same
// length so xref offsets stay valid.
func pinModDate(b []byte) []byte {
	c := bytes.Index(b, creationDateKey)
	m := bytes.Index(b, modDateKey)
	if c < 0 || m < 0 {
		return b
	}
	c += len(creationDateKey)
	m += len(modDateKey)
	if c+pdfStampLen > len(b) || m+pdfStampLen > len(b) {
		return b
	}
	copy(b[m:m+pdfStampLen], b[c:c+pdfStampLen])
	return b
}

// selectMark picks the logo implementation once for the whole document.
func (r *renderer) selectMark(number string) Mark {
	mark, err := LoadImageMark(r.cfg.LogoPath)
	if err != nil {
		r.log.Warn("logo unavailable, drawing vector mark",
			zap.String("invoice_number", number),
			zap.String("logo_path", r.cfg.LogoPath),
			zap.Error(err))
		return NewVectorMark()
	}
	return mark
}

func buildRow(l Line, mark Mark) core.Row {
	if l.Kind == LineRule {
		return row.New(l.Height).Add(line.NewCol(gridSize))
	}
	cols := make([]core.Col, 0, len(l.Cells))
	for _, c := range l.Cells {
		switch {
		case c.Mark:
			cols = append(cols, mark.Col(c.Span, l.Height))
		case c.Text == "":
			cols = append(cols, col.New(c.Span))
		default:
			cols = append(cols, text.NewCol(c.Span, c.Text, textProps(c, l.Height)))
		}
	}
	return row.New(l.Height).Add(cols...)
}

func textProps(c Cell, height float64) props.Text {
	p := props.Text{
		Size:  c.Size,
		Align: align.Left,
		Color: &navy,
	}
	// vertically centre single lines of text
	if top := (height - c.Size*0.3528) / 2; top > 0 {
		p.Top = top
	}
	if c.Bold {
		p.Style = fontstyle.Bold
	}
	switch c.Align {
	case AlignCenter:
		p.Align = align.Center
	case AlignRight:
		p.Align = align.Right
	}
	return p
}
