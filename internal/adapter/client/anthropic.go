package client

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/dataset"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/service"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/config"
)

// AnthropicClassifier classifies reviews with the Anthropic messages API.
// It honors the same prompt contract as the OpenAI client.
type AnthropicClassifier struct {
	client  *anthropic.Client
	model   anthropic.Model
	fewShot bool
	shots   []dataset.Record
}

// NewAnthropicClassifier creates a classifier from the provider configuration
func NewAnthropicClassifier(cfg *config.ClassifierConfig, shots []dataset.Record) *AnthropicClassifier {
	// One attempt per request; the SDK retries transient failures by default.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	c := anthropic.NewClient(opts...)

	return &AnthropicClassifier{
		client:  &c,
		model:   anthropic.Model(cfg.Model),
		fewShot: cfg.Mode == config.ModeFewShot,
		shots:   shots,
	}
}

// Classify issues exactly one messages call for the given cleaned text
func (c *AnthropicClassifier) Classify(ctx context.Context, text string) (*service.ClassificationResult, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   24,
		Temperature: anthropic.Float(0),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(c.fewShot, c.shots, text))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	return parseResult(resp.Content[0].Text, string(c.model))
}
