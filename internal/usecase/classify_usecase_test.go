package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/service"
)

// MockClassifier is a mock implementation of service.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (*service.ClassificationResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClassificationResult), args.Error(1)
}

func TestClassifyUsecase_Classify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockClassifier := new(MockClassifier)
		uc := NewClassifyUsecase(mockClassifier, 5*time.Second)

		mockClassifier.On("Classify", mock.Anything, "hated product").Return(&service.ClassificationResult{
			Sentiment:  service.SentimentNegative,
			Confidence: 0.9,
			Model:      "gpt-4o-mini",
		}, nil)

		output, err := uc.Classify(context.Background(), &ClassifyInput{Text: "I hated this product."})

		assert.NoError(t, err)
		assert.NotNil(t, output)
		assert.Equal(t, "Negative", output.Sentiment)
		assert.Equal(t, 0.9, output.Confidence)
		assert.Equal(t, "gpt-4o-mini", output.Model)
		mockClassifier.AssertExpectations(t)
	})

	t.Run("classifier receives normalized text", func(t *testing.T) {
		mockClassifier := new(MockClassifier)
		uc := NewClassifyUsecase(mockClassifier, 5*time.Second)

		mockClassifier.On("Classify", mock.Anything, "i'm happy").Return(&service.ClassificationResult{
			Sentiment:  service.SentimentPositive,
			Confidence: 0.95,
			Model:      "gpt-4o-mini",
		}, nil)

		output, err := uc.Classify(context.Background(), &ClassifyInput{Text: "I'm SO happy!!!"})

		assert.NoError(t, err)
		assert.Equal(t, "Positive", output.Sentiment)
		mockClassifier.AssertExpectations(t)
	})

	t.Run("empty text is invalid", func(t *testing.T) {
		mockClassifier := new(MockClassifier)
		uc := NewClassifyUsecase(mockClassifier, 5*time.Second)

		output, err := uc.Classify(context.Background(), &ClassifyInput{Text: ""})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, output)
		mockClassifier.AssertNotCalled(t, "Classify")
	})

	t.Run("text that normalizes to empty is invalid", func(t *testing.T) {
		mockClassifier := new(MockClassifier)
		uc := NewClassifyUsecase(mockClassifier, 5*time.Second)

		output, err := uc.Classify(context.Background(), &ClassifyInput{Text: "it is so!!! 123"})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, output)
		mockClassifier.AssertNotCalled(t, "Classify")
	})

	t.Run("upstream failure is wrapped", func(t *testing.T) {
		mockClassifier := new(MockClassifier)
		uc := NewClassifyUsecase(mockClassifier, 5*time.Second)

		mockClassifier.On("Classify", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		output, err := uc.Classify(context.Background(), &ClassifyInput{Text: "terrible quality"})

		assert.ErrorIs(t, err, ErrUpstream)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Nil(t, output)
	})

	t.Run("out of range confidence is an upstream error", func(t *testing.T) {
		mockClassifier := new(MockClassifier)
		uc := NewClassifyUsecase(mockClassifier, 5*time.Second)

		mockClassifier.On("Classify", mock.Anything, mock.Anything).Return(&service.ClassificationResult{
			Sentiment:  service.SentimentPositive,
			Confidence: 1.7,
			Model:      "gpt-4o-mini",
		}, nil)

		output, err := uc.Classify(context.Background(), &ClassifyInput{Text: "great product"})

		assert.ErrorIs(t, err, ErrUpstream)
		assert.Nil(t, output)
	})
}
