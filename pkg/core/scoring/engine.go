// Package scoring - weighted investment score, risk tier and the secondary
// style/growth heuristics derived from one document's extracted data.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"reportlens/pkg/models"
)

// Weights holds the per-contribution points. They are configuration, not
// constants, so report-template variants with extra valuation fields can
// rebalance without touching the engine.
type Weights struct {
	RecommendationBuy  int `yaml:"recommendation_buy"`
	RecommendationHold int `yaml:"recommendation_hold"`
	PositiveSentiment  int `yaml:"positive_sentiment"`
	PriceTarget        int `yaml:"price_target"`
	RevenueColumn      int `yaml:"revenue_column"`
}

// DefaultWeights returns the base formula: 30/15/20/20/20, summing to 90
// with headroom below the 100 cap.
func DefaultWeights() Weights {
	return Weights{
		RecommendationBuy:  30,
		RecommendationHold: 15,
		PositiveSentiment:  20,
		PriceTarget:        20,
		RevenueColumn:      20,
	}
}

// Engine evaluates one document's extracted data. It is stateless across
// calls; identical inputs always produce identical assessments.
type Engine struct {
	weights         Weights
	confidenceFloor float64
	lowRiskAbove    int
	maxScore        int
}

// NewEngine creates an engine with the default weights and thresholds.
func NewEngine() *Engine {
	return NewEngineWithWeights(DefaultWeights())
}

// NewEngineWithWeights creates an engine with custom contribution weights.
func NewEngineWithWeights(w Weights) *Engine {
	return &Engine{
		weights:         w,
		confidenceFloor: 0.7,
		lowRiskAbove:    70,
		maxScore:        100,
	}
}

// Assessment is the engine's full output for one document.
type Assessment struct {
	Score         int
	RiskTier      string
	ValueFit      string
	GrowthFit     string
	GrowthOutlook string
	Risks         []string
}

// Evaluate computes the clamped score, resolves the risk tier by priority
// order and runs the secondary heuristics. A nil sentiment means the
// classifier was unavailable: its contribution is zero and its confidence
// counts as below the floor. A nil table is the absent marker.
func (e *Engine) Evaluate(info models.FieldMap, sentiment *models.SentimentResult, table *models.FinancialTable) Assessment {
	score := e.score(info, sentiment, table)

	return Assessment{
		Score:         score,
		RiskTier:      e.riskTier(score, info, sentiment, table),
		ValueFit:      valueFit(info),
		GrowthFit:     growthFit(info),
		GrowthOutlook: growthOutlook(info, sentiment),
		Risks:         e.riskList(info, sentiment, table),
	}
}

func (e *Engine) score(info models.FieldMap, sentiment *models.SentimentResult, table *models.FinancialTable) int {
	score := 0

	rec, _ := info.Get(models.FieldRecommendation)
	switch rec {
	case "Buy":
		score += e.weights.RecommendationBuy
	case "Hold":
		score += e.weights.RecommendationHold
	}

	if sentiment != nil && sentiment.Label == models.SentimentPositive {
		score += e.weights.PositiveSentiment
	}

	if target, found := info.Get(models.FieldPriceTarget); found {
		if v, err := parseNumber(target); err == nil && v > 0 {
			score += e.weights.PriceTarget
		}
	}

	if table.HasColumn("Revenue") {
		score += e.weights.RevenueColumn
	}

	if score > e.maxScore {
		score = e.maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// riskTier applies the priority rules; the first matching rule wins.
func (e *Engine) riskTier(score int, info models.FieldMap, sentiment *models.SentimentResult, table *models.FinancialTable) string {
	rec, _ := info.Get(models.FieldRecommendation)
	switch {
	case sentiment == nil || sentiment.Confidence < e.confidenceFloor:
		return models.RiskHigh
	case rec == "Sell" || table == nil:
		return models.RiskHigh
	case score > e.lowRiskAbove:
		return models.RiskLow
	default:
		return models.RiskModerate
	}
}

// valueFit judges whether the figures match a value-investing profile:
// billion-scale revenue and positive net income.
func valueFit(info models.FieldMap) string {
	revenue, revFound := info.Get(models.FieldRevenue)
	income, incFound := info.Get(models.FieldNetIncome)
	if !revFound || !incFound {
		return models.FitUncertain
	}

	rev, err := parseScaled(revenue)
	if err != nil {
		return models.FitUncertain
	}
	inc, err := parseScaled(income)
	if err != nil {
		return models.FitUncertain
	}

	if rev > 1 && inc > 0 {
		return models.FitLikely
	}
	return models.FitUncertain
}

// growthFit judges a growth-investing profile: positive EPS.
func growthFit(info models.FieldMap) string {
	eps, found := info.Get(models.FieldEPS)
	if !found {
		return models.FitUncertain
	}
	if v, err := parseNumber(eps); err == nil && v > 0 {
		return models.FitLikely
	}
	return models.FitUncertain
}

func growthOutlook(info models.FieldMap, sentiment *models.SentimentResult) string {
	rec, _ := info.Get(models.FieldRecommendation)
	if sentiment != nil && sentiment.Label == models.SentimentPositive && rec == "Buy" {
		return models.OutlookHigh
	}
	if rec == "Sell" {
		return models.OutlookLow
	}
	return models.OutlookModerate
}

func (e *Engine) riskList(info models.FieldMap, sentiment *models.SentimentResult, table *models.FinancialTable) []string {
	var risks []string
	if sentiment == nil || sentiment.Confidence < e.confidenceFloor {
		risks = append(risks, "Uncertain sentiment")
	}
	if table == nil {
		risks = append(risks, "Missing financial data")
	}
	if _, found := info.Get(models.FieldPriceTarget); !found {
		risks = append(risks, "No price target provided")
	}
	return risks
}

var scaleMarker = regexp.MustCompile(`(?i)[BM]`)

// parseNumber converts a plain captured value. A value that does not parse
// fails only the condition that needed it, never the whole evaluation.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseScaled strips a trailing B/M scale marker before converting, so "5B"
// compares as 5 on the billion scale the value-fit rule assumes.
func parseScaled(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(scaleMarker.ReplaceAllString(s, "")), 64)
}
