// Package extract - document text/table extraction backends. The rest of
// the pipeline treats a Document as a black box that yields best-effort
// page-concatenated text and zero or more tables.
package extract

import (
	"bytes"
	"fmt"
	"strings"
)

// Document is one uploaded report. Both methods are single-shot reads over
// the decoded bytes; a failed text extraction marks the whole document
// unreadable, while a document with no tables simply yields none.
type Document interface {
	// ExtractText returns the page-concatenated text. Pages with no
	// extractable text contribute the empty string.
	ExtractText() (string, error)
	// ExtractTables returns tables in document order, each an ordered
	// sequence of rows of cell strings.
	ExtractTables() ([][][]string, error)
}

// Open sniffs the payload and returns the matching backend. Filename is
// only a fallback hint when the content itself is ambiguous.
func Open(data []byte, filename string) (Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return NewPDFDocument(data), nil
	case looksLikeHTML(data) || strings.HasSuffix(strings.ToLower(filename), ".html"):
		return NewHTMLDocument(data)
	case strings.HasSuffix(strings.ToLower(filename), ".pdf"):
		// Extension says PDF but the magic header is missing; let the
		// backend report the real parse failure.
		return NewPDFDocument(data), nil
	}
	return nil, fmt.Errorf("unsupported document type for %q", filename)
}

func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(string(data[:min(len(data), 512)]))
	return strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html")
}
