// Package fields - declarative regex rule tables for pulling named values
// out of raw report text.
package fields

import (
	"regexp"
	"strings"
)

// TransformFunc normalizes a captured value before it is stored.
type TransformFunc func(string) string

// Rule binds one field name to the pattern that locates its value and an
// optional transform. Only the first match in document order is kept.
type Rule struct {
	Field     string
	Pattern   *regexp.Regexp
	Transform TransformFunc
}

// RuleSet is the full rule table for one document template. Rule order is
// immaterial because every rule targets a distinct field name.
type RuleSet struct {
	Template string
	Rules    []Rule
}

// CanonicalRecommendation maps any casing of buy/sell/hold to the canonical
// form the scoring engine compares against.
func CanonicalRecommendation(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return "Buy"
	case "sell":
		return "Sell"
	case "hold":
		return "Hold"
	}
	return s
}

// Named transforms referenced by template config files.
var transforms = map[string]TransformFunc{
	"":               nil,
	"none":           nil,
	"trim":           strings.TrimSpace,
	"recommendation": CanonicalRecommendation,
}

// StandardTemplate is the canonical rule table for the plain research-report
// layout. Patterns capture the bare number; revenue and net income keep a
// trailing B/M scale marker when the document carries one.
func StandardTemplate() *RuleSet {
	return &RuleSet{
		Template: "standard",
		Rules: []Rule{
			{Field: "price_target", Pattern: regexp.MustCompile(`(?i)Price Target[:\s]*\$?(\d+\.?\d*)`)},
			{Field: "recommendation", Pattern: regexp.MustCompile(`(?i)Recommendation[:\s]*(Buy|Sell|Hold)`), Transform: CanonicalRecommendation},
			{Field: "revenue", Pattern: regexp.MustCompile(`(?i)Revenue[:\s]*\$?(\d+\.?\d*[BM]?)`)},
			{Field: "net_income", Pattern: regexp.MustCompile(`(?i)Net Income[:\s]*\$?(\d+\.?\d*[BM]?)`)},
			{Field: "eps", Pattern: regexp.MustCompile(`(?i)EPS[:\s]*\$?(\d+\.?\d*)`)},
		},
	}
}

// ValuationTemplate extends the standard table with the valuation-ratio
// fields some report families print (EV/EBITDA, P/E, ROCE). It is a separate
// template rather than a merge: the families disagree on wording, so each
// keeps its own canonical table.
func ValuationTemplate() *RuleSet {
	base := StandardTemplate()
	base.Template = "valuation"
	base.Rules = append(base.Rules,
		Rule{Field: "ev_ebitda", Pattern: regexp.MustCompile(`(?i)EV\s*/\s*EBITDA[:\s]*(\d+\.?\d*)\s*x?`)},
		Rule{Field: "pe_ratio", Pattern: regexp.MustCompile(`(?i)P/E(?:\s+Ratio)?[:\s]*(\d+\.?\d*)\s*x?`)},
		Rule{Field: "roce", Pattern: regexp.MustCompile(`(?i)ROCE[:\s]*(\d+\.?\d*)\s*%?`)},
	)
	return base
}

// BuiltinTemplates returns the compiled-in rule tables keyed by name.
func BuiltinTemplates() map[string]*RuleSet {
	return map[string]*RuleSet{
		"standard":  StandardTemplate(),
		"valuation": ValuationTemplate(),
	}
}
