package extract

import (
	"strings"
	"testing"
)

const sampleHTML = `<!DOCTYPE html>
<html><head><title>Report</title><style>body{}</style></head>
<body>
<script>var tracked = true;</script>
<h1>Initiation of Coverage</h1>
<p>Recommendation: Buy. Price Target: $50.</p>
<table>
  <tr><th>Revenue</th><th>Q1</th></tr>
  <tr><td>100</td><td>200</td></tr>
</table>
</body></html>`

func TestHTMLDocumentExtractText(t *testing.T) {
	doc, err := NewHTMLDocument([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	text, err := doc.ExtractText()
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "Recommendation: Buy") {
		t.Errorf("Missing body text: %q", text)
	}
	if strings.Contains(text, "tracked") || strings.Contains(text, "body{}") {
		t.Errorf("Script/style content leaked: %q", text)
	}
}

func TestHTMLDocumentExtractTables(t *testing.T) {
	doc, err := NewHTMLDocument([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tables, err := doc.ExtractTables()
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if tables[0][0][0] != "Revenue" || tables[0][1][1] != "200" {
		t.Errorf("Unexpected table content: %v", tables[0])
	}
}

func TestOpenSniffsDocumentType(t *testing.T) {
	if _, err := Open([]byte(sampleHTML), "report.html"); err != nil {
		t.Errorf("HTML payload rejected: %v", err)
	}
	if doc, err := Open([]byte("%PDF-1.7 rest"), "report.pdf"); err != nil {
		t.Errorf("PDF payload rejected: %v", err)
	} else if _, ok := doc.(*PDFDocument); !ok {
		t.Errorf("Expected PDF backend, got %T", doc)
	}
	if _, err := Open([]byte("plain text"), "report.txt"); err == nil {
		t.Error("Expected error for unsupported payload")
	}
	if _, err := Open(nil, "report.pdf"); err == nil {
		t.Error("Expected error for empty payload")
	}
}
