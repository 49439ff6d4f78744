// Package qualitative - keyword-driven pros/cons extraction from report text.
package qualitative

import (
	"strings"

	"reportlens/pkg/models"
)

// signalGroup matches when any of its keywords appears in the text
// (case-insensitive substring). A matching group contributes exactly one
// fixed statement, no matter how often its keywords occur.
type signalGroup struct {
	keywords  []string
	statement string
}

var prosSignals = []signalGroup{
	{
		keywords:  []string{"strong growth", "record revenue", "beat expectations", "raised guidance"},
		statement: "Report highlights strong growth momentum.",
	},
	{
		keywords:  []string{"market leader", "competitive advantage", "market share gains", "pricing power"},
		statement: "Company holds a strong competitive position.",
	},
	{
		keywords:  []string{"healthy balance sheet", "strong cash flow", "net cash", "low leverage"},
		statement: "Financial position appears healthy.",
	},
	{
		keywords:  []string{"dividend increase", "share buyback", "capital return"},
		statement: "Management is returning capital to shareholders.",
	},
}

var consSignals = []signalGroup{
	{
		keywords:  []string{"headwinds", "macro uncertainty", "slowing demand", "weak outlook"},
		statement: "Report flags demand or macro headwinds.",
	},
	{
		keywords:  []string{"litigation", "regulatory risk", "investigation", "lawsuit"},
		statement: "Legal or regulatory exposure noted.",
	},
	{
		keywords:  []string{"declining margins", "margin pressure", "cost inflation"},
		statement: "Margins are under pressure.",
	},
	{
		keywords:  []string{"high debt", "leverage concerns", "covenant", "refinancing risk"},
		statement: "Balance-sheet leverage is a concern.",
	},
}

// Placeholder entries keep the rendered lists non-empty when nothing matched.
const (
	ProsPlaceholder = "No notable strengths identified."
	ConsPlaceholder = "No notable concerns identified."
)

const missingFieldsCon = "Some key figures could not be located in the report."

// Extract tests every signal group against the text and returns the matched
// statements. Cons additionally gains an entry when any configured field came
// back NotFound. Lists may be empty here; callers that feed a UI should run
// EnsurePlaceholders afterwards.
func Extract(text string, info models.FieldMap) models.QualitativeFindings {
	lower := strings.ToLower(text)

	var findings models.QualitativeFindings
	for _, g := range prosSignals {
		if matchesAny(lower, g.keywords) {
			findings.Pros = append(findings.Pros, g.statement)
		}
	}
	for _, g := range consSignals {
		if matchesAny(lower, g.keywords) {
			findings.Cons = append(findings.Cons, g.statement)
		}
	}
	if info.MissingAny() {
		findings.Cons = append(findings.Cons, missingFieldsCon)
	}
	return findings
}

// EnsurePlaceholders substitutes the fixed placeholder entry for any empty
// category. Kept separate from Extract so batch consumers can skip it.
func EnsurePlaceholders(f models.QualitativeFindings) models.QualitativeFindings {
	if len(f.Pros) == 0 {
		f.Pros = []string{ProsPlaceholder}
	}
	if len(f.Cons) == 0 {
		f.Cons = []string{ConsPlaceholder}
	}
	return f
}

func matchesAny(lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}
