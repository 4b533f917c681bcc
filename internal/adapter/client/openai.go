package client

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/dataset"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/service"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/config"
)

// OpenAIClassifier classifies reviews with the OpenAI chat completions API.
// In few-shot mode each request carries sampled labeled examples; in
// fine-tuned mode the configured model id names the tuned variant.
type OpenAIClassifier struct {
	client  *openai.Client
	model   openai.ChatModel
	fewShot bool
	shots   []dataset.Record
}

// NewOpenAIClassifier creates a classifier from the provider configuration.
// shots may be nil in fine-tuned mode.
func NewOpenAIClassifier(cfg *config.ClassifierConfig, shots []dataset.Record) *OpenAIClassifier {
	// One attempt per request; the SDK retries transient failures by default.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	c := openai.NewClient(opts...)

	return &OpenAIClassifier{
		client:  &c,
		model:   openai.ChatModel(cfg.Model),
		fewShot: cfg.Mode == config.ModeFewShot,
		shots:   shots,
	}
}

// Classify issues exactly one chat completion call for the given cleaned text
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (*service.ClassificationResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(24),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(c.fewShot, c.shots, text)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return parseResult(resp.Choices[0].Message.Content, string(c.model))
}
