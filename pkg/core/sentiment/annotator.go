// Package sentiment - bounded-prefix sentiment classification over report text.
package sentiment

import (
	"context"
	"fmt"

	"reportlens/pkg/models"
)

// DefaultMaxChars is the classifier input budget. Truncation is a hard cap
// on input size, not a sampling strategy.
const DefaultMaxChars = 512

// Classifier is the external text-classification capability. Implementations
// must surface failures explicitly; a fabricated neutral result is never an
// acceptable substitute.
type Classifier interface {
	Classify(ctx context.Context, text string) (*models.SentimentResult, error)
}

// Annotator truncates document text to the classifier's budget and invokes
// it exactly once per document.
type Annotator struct {
	classifier Classifier
	maxChars   int
}

// NewAnnotator wraps a classifier. maxChars <= 0 selects DefaultMaxChars.
func NewAnnotator(c Classifier, maxChars int) *Annotator {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Annotator{classifier: c, maxChars: maxChars}
}

// Annotate classifies the first maxChars characters of text. Errors
// propagate to the caller, which marks sentiment as unavailable.
func (a *Annotator) Annotate(ctx context.Context, text string) (*models.SentimentResult, error) {
	result, err := a.classifier.Classify(ctx, truncate(text, a.maxChars))
	if err != nil {
		return nil, fmt.Errorf("sentiment classification failed: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("classifier returned no result")
	}
	return result, nil
}

// truncate cuts at a character boundary, not a byte one, so a multi-byte
// rune is never split.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
