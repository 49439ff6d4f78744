package models

import (
	"time"
)

// Canonical field names produced by the rule templates.
const (
	FieldPriceTarget    = "price_target"
	FieldRecommendation = "recommendation"
	FieldRevenue        = "revenue"
	FieldNetIncome      = "net_income"
	FieldEPS            = "eps"
	FieldEVEBITDA       = "ev_ebitda"
	FieldPERatio        = "pe_ratio"
	FieldROCE           = "roce"
)

// FieldValue is the outcome of applying one field rule to document text.
// A field is either Found with the captured value, or NotFound; there is
// no third state and no partial match.
type FieldValue struct {
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

// FieldMap maps every configured field name to its extraction outcome.
// Fields absent from the map were never configured, which is different
// from configured-but-not-found.
type FieldMap map[string]FieldValue

// Get returns the value for a field and whether it was found.
func (m FieldMap) Get(name string) (string, bool) {
	v, ok := m[name]
	if !ok {
		return "", false
	}
	return v.Value, v.Found
}

// MissingAny reports whether any configured field resolved to NotFound.
func (m FieldMap) MissingAny() bool {
	for _, v := range m {
		if !v.Found {
			return true
		}
	}
	return false
}

// FinancialTable is the first qualifying table found in the document.
// The header row is kept separate from the data rows. A nil *FinancialTable
// is the explicit "absent" value; an empty table is never fabricated.
type FinancialTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// HasColumn reports whether any header cell equals name (exact match,
// matching the column check the score contribution uses).
func (t *FinancialTable) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Sentiment labels returned by classifiers.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
)

// SentimentResult is the classifier's top label and its confidence in [0,1],
// computed once over a bounded prefix of the document text.
type SentimentResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// QualitativeFindings holds the matched pros/cons statements. After the
// placeholder pass neither list is ever empty.
type QualitativeFindings struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// Risk tiers, resolved by the scoring engine's priority rules.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

// Style-fit and growth-outlook judgments.
const (
	FitLikely    = "Likely"
	FitUncertain = "Uncertain"

	OutlookHigh     = "High"
	OutlookModerate = "Moderate"
	OutlookLow      = "Low"
)

// AnalysisResult aggregates everything derived from one document. It is
// created fresh per upload, never mutated after construction and never
// persisted beyond the session.
type AnalysisResult struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	KeyInfo    FieldMap        `json:"key_info"`
	Financials *FinancialTable `json:"financial_summary,omitempty"`

	Sentiment      *SentimentResult `json:"sentiment,omitempty"`
	SentimentError string           `json:"sentiment_error,omitempty"`

	Qualitative QualitativeFindings `json:"qualitative"`

	InvestmentScore int    `json:"investment_score"`
	RiskTier        string `json:"risk_tier"`

	ValueFit      string   `json:"value_fit"`
	GrowthFit     string   `json:"growth_fit"`
	GrowthOutlook string   `json:"growth_outlook"`
	Risks         []string `json:"risks"`

	// Set only when the document itself could not be read; every other
	// failure is reported through the markers above.
	Unreadable    bool   `json:"unreadable,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}
