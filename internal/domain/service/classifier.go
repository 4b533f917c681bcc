package service

import "context"

// Sentiment labels returned by the API. Review labels are binary.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
)

// ClassificationResult represents the result of sentiment classification
type ClassificationResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Model      string  `json:"model"`
}

// Classifier defines the interface for sentiment classification. One call
// issues exactly one upstream request; no caching, batching, or retries.
type Classifier interface {
	// Classify classifies a single cleaned review text
	Classify(ctx context.Context, text string) (*ClassificationResult, error)
}
