package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLDocument extracts text and tables from an HTML report using goquery.
type HTMLDocument struct {
	doc *goquery.Document
}

var _ Document = (*HTMLDocument)(nil)

// NewHTMLDocument parses the payload once; both extraction methods read the
// same parsed tree.
func NewHTMLDocument(data []byte) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// ExtractText returns the visible body text with scripts and styles
// stripped and runs of whitespace collapsed.
func (h *HTMLDocument) ExtractText() (string, error) {
	sel := h.doc.Find("body")
	if sel.Length() == 0 {
		sel = h.doc.Selection
	}
	clone := sel.Clone()
	clone.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(clone.Text()), " "), nil
}

// ExtractTables walks every <table> in document order. Header cells (th)
// and data cells (td) are both honored; rows with no cells are dropped and
// tables with no rows are skipped entirely.
func (h *HTMLDocument) ExtractTables() ([][][]string, error) {
	var tables [][][]string
	h.doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var rows [][]string
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		})
		if len(rows) > 0 {
			tables = append(tables, rows)
		}
	})
	return tables, nil
}
