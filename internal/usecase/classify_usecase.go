package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/normalize"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/service"
)

// Error definitions for classify usecase
var (
	ErrInvalidInput = errors.New("text is required")
	ErrUpstream     = errors.New("sentiment provider request failed")
)

// DefaultTimeout bounds a single upstream classification call.
const DefaultTimeout = 30 * time.Second

// ClassifyInput represents the input for a classification request
type ClassifyInput struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyOutput represents the output of a classification request
type ClassifyOutput struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Model      string  `json:"model,omitempty"`
}

// ClassifyUsecase defines the interface for classification business logic
type ClassifyUsecase interface {
	Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error)
}

type classifyUsecase struct {
	classifier service.Classifier
	timeout    time.Duration
}

// NewClassifyUsecase creates a new classify usecase
func NewClassifyUsecase(classifier service.Classifier, timeout time.Duration) ClassifyUsecase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &classifyUsecase{
		classifier: classifier,
		timeout:    timeout,
	}
}

// Classify normalizes the submitted text and forwards it to the sentiment
// provider. Exactly one outbound call is made per invocation; either a full
// result or an error is returned, never both.
func (u *classifyUsecase) Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
	cleaned := normalize.Clean(input.Text)
	if cleaned == "" {
		return nil, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	result, err := u.classifier.Classify(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if result.Confidence < 0 || result.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v out of range", ErrUpstream, result.Confidence)
	}

	return &ClassifyOutput{
		Sentiment:  result.Sentiment,
		Confidence: result.Confidence,
		Model:      result.Model,
	}, nil
}
