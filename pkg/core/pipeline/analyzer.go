// Package pipeline - sequences extraction, field matching, table summary,
// sentiment, qualitative findings and scoring into one AnalysisResult.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"reportlens/pkg/core/extract"
	"reportlens/pkg/core/fields"
	"reportlens/pkg/core/qualitative"
	"reportlens/pkg/core/scoring"
	"reportlens/pkg/core/sentiment"
	"reportlens/pkg/core/tables"
	"reportlens/pkg/models"
)

// Analyzer runs the full analysis pipeline over one document. All state is
// per-call; a single Analyzer may be shared across requests.
type Analyzer struct {
	rules     *fields.RuleSet
	annotator *sentiment.Annotator
	engine    *scoring.Engine
}

// NewAnalyzer builds a pipeline with the given rule template and classifier.
// maxChars bounds the classifier input (<= 0 selects the default budget).
func NewAnalyzer(rules *fields.RuleSet, classifier sentiment.Classifier, maxChars int) *Analyzer {
	return &Analyzer{
		rules:     rules,
		annotator: sentiment.NewAnnotator(classifier, maxChars),
		engine:    scoring.NewEngine(),
	}
}

// SetEngine swaps in a scoring engine with non-default weights.
func (a *Analyzer) SetEngine(engine *scoring.Engine) {
	a.engine = engine
}

// Template reports the active rule template name.
func (a *Analyzer) Template() string {
	return a.rules.Template
}

// Analyze processes one document. Only an unreadable document short-circuits:
// every other failure is folded into the result as an explicit marker, and
// no error ever escapes this boundary.
func (a *Analyzer) Analyze(ctx context.Context, doc extract.Document) *models.AnalysisResult {
	start := time.Now()

	text, err := doc.ExtractText()
	if err != nil {
		fmt.Printf("[PIPELINE] Document unreadable: %v\n", err)
		return a.unreadableResult(err)
	}

	// The table summary and the sentiment call touch disjoint parts of
	// the result and have no data dependency, so they run concurrently.
	var (
		wg           sync.WaitGroup
		financials   *models.FinancialTable
		sentimentRes *models.SentimentResult
		sentimentErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, tErr := doc.ExtractTables()
		if tErr != nil {
			// Text came through but tables did not; the absent marker
			// already feeds the risk rules, so there is nothing to add.
			fmt.Printf("[PIPELINE] Table extraction failed: %v\n", tErr)
			return
		}
		financials = tables.Summarize(raw)
	}()
	go func() {
		defer wg.Done()
		sentimentRes, sentimentErr = a.annotator.Annotate(ctx, text)
	}()

	info := a.rules.Extract(text)
	findings := qualitative.EnsurePlaceholders(qualitative.Extract(text, info))

	wg.Wait()

	if sentimentErr != nil {
		fmt.Printf("[PIPELINE] Sentiment unavailable: %v\n", sentimentErr)
	}

	assessment := a.engine.Evaluate(info, sentimentRes, financials)

	result := &models.AnalysisResult{
		ID:              uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		KeyInfo:         info,
		Financials:      financials,
		Sentiment:       sentimentRes,
		Qualitative:     findings,
		InvestmentScore: assessment.Score,
		RiskTier:        assessment.RiskTier,
		ValueFit:        assessment.ValueFit,
		GrowthFit:       assessment.GrowthFit,
		GrowthOutlook:   assessment.GrowthOutlook,
		Risks:           assessment.Risks,
	}
	if sentimentErr != nil {
		result.SentimentError = sentimentErr.Error()
	}

	fmt.Printf("[PIPELINE] Analysis %s complete in %v: score=%d risk=%s\n",
		result.ID, time.Since(start), result.InvestmentScore, result.RiskTier)
	return result
}

// unreadableResult is the short-circuit outcome: every field explicitly
// absent plus a descriptive failure reason. The engine still runs so the
// risk markers stay consistent with what a caller would derive.
func (a *Analyzer) unreadableResult(cause error) *models.AnalysisResult {
	info := a.rules.EmptyMap()
	assessment := a.engine.Evaluate(info, nil, nil)

	return &models.AnalysisResult{
		ID:              uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		KeyInfo:         info,
		Qualitative:     qualitative.EnsurePlaceholders(models.QualitativeFindings{}),
		InvestmentScore: assessment.Score,
		RiskTier:        assessment.RiskTier,
		ValueFit:        assessment.ValueFit,
		GrowthFit:       assessment.GrowthFit,
		GrowthOutlook:   assessment.GrowthOutlook,
		Risks:           assessment.Risks,
		Unreadable:      true,
		FailureReason:   fmt.Sprintf("document could not be read: %v", cause),
	}
}
