package sentiment

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"reportlens/pkg/models"
)

// LexiconClassifier is an offline classifier that counts positive and
// negative finance-domain words. It exists so the pipeline can run without
// network access or API keys; its confidence reflects how lopsided the word
// counts are, never certainty about language.
type LexiconClassifier struct {
	positive map[string]bool
	negative map[string]bool
}

var _ Classifier = (*LexiconClassifier)(nil)

// NewLexiconClassifier builds the classifier with the built-in word lists.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{
		positive: toSet([]string{
			"growth", "strong", "beat", "outperform", "upgrade", "record",
			"gain", "gains", "improve", "improved", "improving", "robust",
			"momentum", "exceed", "exceeded", "upside", "profitable",
			"buy", "bullish", "raised", "expansion", "leadership",
		}),
		negative: toSet([]string{
			"decline", "declining", "weak", "miss", "missed", "downgrade",
			"loss", "losses", "risk", "risks", "concern", "concerns",
			"underperform", "headwind", "headwinds", "pressure", "litigation",
			"sell", "bearish", "cut", "impairment", "write-down", "slowdown",
		}),
	}
}

// Classify labels the text by net word count. Text with no lexicon hits at
// all is an explicit failure: the caller must not receive a fabricated
// neutral verdict.
func (l *LexiconClassifier) Classify(_ context.Context, text string) (*models.SentimentResult, error) {
	words := tokenize(strings.ToLower(text))

	var pos, neg int
	for _, w := range words {
		if l.positive[w] {
			pos++
		}
		if l.negative[w] {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return nil, fmt.Errorf("no sentiment-bearing words in %d tokens", len(words))
	}

	label := models.SentimentPositive
	dominant := pos
	if neg > pos {
		label = models.SentimentNegative
		dominant = neg
	}

	// Confidence grows with the margin between the two counts: an even
	// split yields 0.5, a clean sweep approaches 1.
	confidence := 0.5 + 0.5*float64(dominant-(total-dominant))/float64(total)
	if confidence > 0.99 {
		confidence = 0.99
	}

	return &models.SentimentResult{Label: label, Confidence: confidence}, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	})
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
