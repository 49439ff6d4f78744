package report

import (
	"strings"
	"testing"
	"time"

	"reportlens/pkg/models"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		ID:          "abc",
		GeneratedAt: time.Now().UTC(),
		KeyInfo: models.FieldMap{
			"price_target":   {Value: "50", Found: true},
			"recommendation": {Value: "Buy", Found: true},
			"eps":            {},
		},
		Financials: &models.FinancialTable{
			Headers: []string{"Revenue", "Q1"},
			Rows:    [][]string{{"100", "200"}},
		},
		Sentiment:       &models.SentimentResult{Label: models.SentimentPositive, Confidence: 0.9},
		Qualitative:     models.QualitativeFindings{Pros: []string{"p"}, Cons: []string{"c"}},
		InvestmentScore: 90,
		RiskTier:        models.RiskLow,
		ValueFit:        models.FitLikely,
		GrowthFit:       models.FitLikely,
		GrowthOutlook:   models.OutlookHigh,
		Risks:           []string{"No price target provided"},
	}
}

func TestRenderMarkdownSections(t *testing.T) {
	md := RenderMarkdown(sampleResult())

	for _, want := range []string{
		"# Research Report Analysis",
		"## Key Information",
		"**price_target**: 50",
		"**eps**: Not Found",
		"## Financial Summary",
		"| Revenue | Q1 |",
		"| 100 | 200 |",
		"POSITIVE (confidence 0.90)",
		"## Investment Score: 90/100",
		"**Risk Level:** Low",
		"## Strengths",
		"## Concerns",
		"## Risks",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}

func TestRenderMarkdownAbsentSections(t *testing.T) {
	r := sampleResult()
	r.Financials = nil
	r.Sentiment = nil
	r.SentimentError = "endpoint down"

	md := RenderMarkdown(r)
	if !strings.Contains(md, "Not Found") {
		t.Error("Absent table must render the explicit marker")
	}
	if !strings.Contains(md, "Unavailable: endpoint down") {
		t.Error("Sentiment failure must be visible in the report")
	}
}

func TestRenderMarkdownUnreadable(t *testing.T) {
	r := sampleResult()
	r.Unreadable = true
	r.FailureReason = "document could not be read: corrupt header"

	md := RenderMarkdown(r)
	if !strings.Contains(md, "could not be analyzed") {
		t.Error("Unreadable banner missing")
	}
	if !strings.Contains(md, "corrupt header") {
		t.Error("Failure reason missing")
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleResult())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if !strings.Contains(html, "<h1>") || !strings.Contains(html, "<li>") {
		t.Errorf("Expected rendered HTML elements, got %q", html)
	}
}
