package qualitative

import (
	"testing"

	"reportlens/pkg/models"
)

func allFound() models.FieldMap {
	return models.FieldMap{
		"price_target":   {Value: "50", Found: true},
		"recommendation": {Value: "Buy", Found: true},
	}
}

func TestExtractMatchesSignalGroups(t *testing.T) {
	text := "The company shows STRONG GROWTH and remains the market leader, " +
		"though litigation and margin pressure persist."

	f := Extract(text, allFound())

	if len(f.Pros) != 2 {
		t.Errorf("Expected 2 pros, got %v", f.Pros)
	}
	if len(f.Cons) != 2 {
		t.Errorf("Expected 2 cons, got %v", f.Cons)
	}
}

func TestExtractOneStatementPerGroup(t *testing.T) {
	// Two keywords of the same group still contribute one statement.
	f := Extract("strong growth everywhere, record revenue again", allFound())
	if len(f.Pros) != 1 {
		t.Errorf("Expected 1 pro for a single group, got %v", f.Pros)
	}
}

func TestMissingFieldAddsCon(t *testing.T) {
	info := models.FieldMap{
		"price_target": {Found: false},
	}
	f := Extract("nothing qualitative here", info)
	if len(f.Cons) != 1 {
		t.Fatalf("Expected the missing-figures con, got %v", f.Cons)
	}
}

func TestEnsurePlaceholdersNeverLeavesEmptyLists(t *testing.T) {
	f := EnsurePlaceholders(models.QualitativeFindings{})
	if len(f.Pros) != 1 || f.Pros[0] != ProsPlaceholder {
		t.Errorf("Expected pros placeholder, got %v", f.Pros)
	}
	if len(f.Cons) != 1 || f.Cons[0] != ConsPlaceholder {
		t.Errorf("Expected cons placeholder, got %v", f.Cons)
	}
}

func TestEnsurePlaceholdersKeepsRealFindings(t *testing.T) {
	f := EnsurePlaceholders(models.QualitativeFindings{Pros: []string{"real"}})
	if f.Pros[0] != "real" {
		t.Errorf("Placeholder must not replace real findings: %v", f.Pros)
	}
	if len(f.Cons) != 1 || f.Cons[0] != ConsPlaceholder {
		t.Errorf("Expected cons placeholder, got %v", f.Cons)
	}
}
