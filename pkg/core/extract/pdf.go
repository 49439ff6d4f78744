package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFDocument extracts text from a PDF with pdfcpu. pdfcpu exposes raw page
// content streams rather than laid-out text, so each page's stream is
// decoded with a small Tj/TJ operator scanner and tables are recovered from
// whitespace-aligned text lines. Both are best effort: encrypted PDFs and
// image-only pages contribute nothing.
type PDFDocument struct {
	data []byte

	// extraction runs once; both accessors share the result
	extracted  bool
	pages      map[int]string
	pageCount  int
	extractErr error
}

var _ Document = (*PDFDocument)(nil)

// NewPDFDocument wraps raw PDF bytes. Parsing is deferred to the first
// extraction call.
func NewPDFDocument(data []byte) *PDFDocument {
	return &PDFDocument{data: data}
}

// ExtractText concatenates the decoded text of every page in order. Pages
// whose content could not be decoded contribute the empty string.
func (p *PDFDocument) ExtractText() (string, error) {
	if err := p.extract(); err != nil {
		return "", err
	}

	var text string
	for pageNum := 1; pageNum <= p.pageCount; pageNum++ {
		text += p.pages[pageNum]
	}
	return text, nil
}

// ExtractTables scans each page's decoded text for runs of whitespace-aligned
// lines and returns them as tables in page order.
func (p *PDFDocument) ExtractTables() ([][][]string, error) {
	if err := p.extract(); err != nil {
		return nil, err
	}

	var tables [][][]string
	for pageNum := 1; pageNum <= p.pageCount; pageNum++ {
		tables = append(tables, tablesFromText(p.pages[pageNum])...)
	}
	return tables, nil
}

// extract writes the payload to a temp file, pulls per-page content streams
// with pdfcpu and decodes them. pdfcpu's extraction API is file-based, so a
// scratch directory is used and discarded per document.
func (p *PDFDocument) extract() error {
	if p.extracted {
		return p.extractErr
	}
	p.extracted = true
	p.extractErr = p.doExtract()
	return p.extractErr
}

func (p *PDFDocument) doExtract() error {
	tempDir, err := os.MkdirTemp("", "reportlens-pdf-")
	if err != nil {
		return fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, "upload.pdf")
	if err := os.WriteFile(tempFile, p.data, 0644); err != nil {
		return fmt.Errorf("failed to write temp PDF: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(tempFile)
	if err != nil {
		return fmt.Errorf("failed to read PDF: %w", err)
	}
	p.pageCount = pdfCtx.PageCount

	outDir := filepath.Join(tempDir, "content")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create content dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	p.pages = make(map[int]string, p.pageCount)
	if err := api.ExtractContentFile(tempFile, outDir, nil, conf); err != nil {
		// Content extraction can fail on odd producers even when the
		// document itself opened fine; pages then stay empty.
		return nil
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var pageNum int
		if _, err := fmt.Sscanf(name, "upload_Content_page_%d", &pageNum); err != nil {
			if _, err := fmt.Sscanf(name, "Content_page_%d", &pageNum); err != nil {
				if _, err := fmt.Sscanf(name, "page_%d", &pageNum); err != nil {
					continue
				}
			}
		}
		content, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			continue
		}
		p.pages[pageNum] = decodeContentText(content)
	}
	return nil
}
