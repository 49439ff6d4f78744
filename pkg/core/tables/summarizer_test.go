package tables

import (
	"reflect"
	"testing"
)

func TestSummarizeReturnsAbsentWhenNoTables(t *testing.T) {
	if got := Summarize(nil); got != nil {
		t.Errorf("Expected nil for no tables, got %+v", got)
	}
	if got := Summarize([][][]string{}); got != nil {
		t.Errorf("Expected nil for empty slice, got %+v", got)
	}
	if got := Summarize([][][]string{{}, {{}}}); got != nil {
		t.Errorf("Expected nil when all tables are empty, got %+v", got)
	}
}

func TestSummarizeReturnsFirstTableUnaltered(t *testing.T) {
	raw := [][][]string{
		{
			{"Revenue", "Q1"},
			{"100", "200"},
		},
	}
	got := Summarize(raw)
	if got == nil {
		t.Fatal("Expected a table")
	}
	if !reflect.DeepEqual(got.Headers, []string{"Revenue", "Q1"}) {
		t.Errorf("Unexpected headers: %v", got.Headers)
	}
	if !reflect.DeepEqual(got.Rows, [][]string{{"100", "200"}}) {
		t.Errorf("Unexpected rows: %v", got.Rows)
	}
}

func TestSummarizeSkipsEmptyAndIgnoresLaterTables(t *testing.T) {
	raw := [][][]string{
		{}, // empty table from a sparse page
		{
			{"Metric", "Value"},
			{"EPS", "2.5"},
		},
		{
			{"Revenue", "FY24"},
			{"900", "1000"},
		},
	}
	got := Summarize(raw)
	if got == nil {
		t.Fatal("Expected a table")
	}
	// First qualifying table wins, even though the later one mentions
	// Revenue and would score better.
	if got.Headers[0] != "Metric" {
		t.Errorf("Expected first non-empty table, got headers %v", got.Headers)
	}
}

func TestSummarizeHeaderOnlyTable(t *testing.T) {
	got := Summarize([][][]string{{{"Revenue", "Q1"}}})
	if got == nil {
		t.Fatal("Expected a table")
	}
	if len(got.Rows) != 0 {
		t.Errorf("Expected no data rows, got %v", got.Rows)
	}
	if !got.HasColumn("Revenue") {
		t.Error("Expected Revenue column")
	}
}
