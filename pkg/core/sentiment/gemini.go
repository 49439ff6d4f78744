package sentiment

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"reportlens/pkg/core/utils"
	"reportlens/pkg/models"
)

const geminiSystemPrompt = `You are a financial sentiment classifier. ` +
	`Classify the overall sentiment of the given equity research text. ` +
	`Respond with JSON only: {"label": "POSITIVE" or "NEGATIVE", "confidence": number between 0 and 1}.`

// GeminiClassifier classifies text with Google's Gemini models via the
// GenAI SDK. Requires GEMINI_API_KEY.
type GeminiClassifier struct {
	Model string // e.g. "gemini-2.0-flash-exp"
}

var _ Classifier = (*GeminiClassifier)(nil)

// Classify sends one generateContent request and decodes the JSON verdict.
func (g *GeminiClassifier) Classify(ctx context.Context, text string) (*models.SentimentResult, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := g.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.0)),
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: geminiSystemPrompt},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("gemini classification failed: %w", err)
	}

	var verdict struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := utils.DecodeModelJSON(result.Text(), &verdict); err != nil {
		return nil, err
	}
	if verdict.Label != models.SentimentPositive && verdict.Label != models.SentimentNegative {
		return nil, fmt.Errorf("classifier returned unknown label %q", verdict.Label)
	}
	if verdict.Confidence < 0 || verdict.Confidence > 1 {
		return nil, fmt.Errorf("classifier confidence %f out of range", verdict.Confidence)
	}

	return &models.SentimentResult{Label: verdict.Label, Confidence: verdict.Confidence}, nil
}
