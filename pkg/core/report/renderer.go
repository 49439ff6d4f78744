// Package report - renders an AnalysisResult as Markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"reportlens/pkg/models"
)

// RenderMarkdown builds the human-readable report, section for section in
// the order the analysis produces them.
func RenderMarkdown(result *models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Research Report Analysis\n\n")

	if result.Unreadable {
		b.WriteString("**Document could not be analyzed.**\n\n")
		fmt.Fprintf(&b, "Reason: %s\n\n", result.FailureReason)
	}

	b.WriteString("## Key Information\n\n")
	names := make([]string, 0, len(result.KeyInfo))
	for name := range result.KeyInfo {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := result.KeyInfo[name]
		value := "Not Found"
		if v.Found {
			value = v.Value
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", name, value)
	}
	b.WriteString("\n")

	b.WriteString("## Financial Summary\n\n")
	if result.Financials == nil {
		b.WriteString("Not Found\n\n")
	} else {
		writeTable(&b, result.Financials)
	}

	b.WriteString("## Sentiment\n\n")
	if result.Sentiment != nil {
		fmt.Fprintf(&b, "%s (confidence %.2f)\n\n", result.Sentiment.Label, result.Sentiment.Confidence)
	} else if result.SentimentError != "" {
		fmt.Fprintf(&b, "Unavailable: %s\n\n", result.SentimentError)
	} else {
		b.WriteString("Unavailable\n\n")
	}

	fmt.Fprintf(&b, "## Investment Score: %d/100\n\n", result.InvestmentScore)
	fmt.Fprintf(&b, "**Risk Level:** %s\n\n", result.RiskTier)
	fmt.Fprintf(&b, "**Value-Investor Fit:** %s\n\n", result.ValueFit)
	fmt.Fprintf(&b, "**Growth-Investor Fit:** %s\n\n", result.GrowthFit)
	fmt.Fprintf(&b, "**Growth Prospects:** %s\n\n", result.GrowthOutlook)

	b.WriteString("## Strengths\n\n")
	for _, pro := range result.Qualitative.Pros {
		fmt.Fprintf(&b, "- %s\n", pro)
	}
	b.WriteString("\n## Concerns\n\n")
	for _, con := range result.Qualitative.Cons {
		fmt.Fprintf(&b, "- %s\n", con)
	}

	if len(result.Risks) > 0 {
		b.WriteString("\n## Risks\n\n")
		for _, risk := range result.Risks {
			fmt.Fprintf(&b, "- %s\n", risk)
		}
	}

	return b.String()
}

// RenderHTML converts the Markdown report to HTML with Goldmark.
func RenderHTML(result *models.AnalysisResult) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderMarkdown(result)), &buf); err != nil {
		return "", fmt.Errorf("markdown rendering failed: %w", err)
	}
	return buf.String(), nil
}

func writeTable(b *strings.Builder, t *models.FinancialTable) {
	b.WriteString("| " + strings.Join(t.Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Headers)) + "\n")
	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}
