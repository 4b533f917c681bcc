package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/usecase"
)

// MockClassifyUsecase is a mock implementation of usecase.ClassifyUsecase
type MockClassifyUsecase struct {
	mock.Mock
}

func (m *MockClassifyUsecase) Classify(ctx context.Context, input *usecase.ClassifyInput) (*usecase.ClassifyOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ClassifyOutput), args.Error(1)
}

func setupClassifyRouter(uc usecase.ClassifyUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/classify", NewClassifyHandler(uc).Classify)
	return router
}

func postClassify(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/v1/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClassifyHandler_Classify(t *testing.T) {
	t.Run("returns the classification result", func(t *testing.T) {
		mockUC := new(MockClassifyUsecase)
		mockUC.On("Classify", mock.Anything, &usecase.ClassifyInput{Text: "I hated this product."}).
			Return(&usecase.ClassifyOutput{
				Sentiment:  "Negative",
				Confidence: 0.9,
				Model:      "gpt-4o-mini",
			}, nil)

		w := postClassify(setupClassifyRouter(mockUC), `{"text": "I hated this product."}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Negative", body["sentiment"])
		assert.Equal(t, 0.9, body["confidence"])
		mockUC.AssertExpectations(t)
	})

	t.Run("missing text returns 400", func(t *testing.T) {
		mockUC := new(MockClassifyUsecase)

		w := postClassify(setupClassifyRouter(mockUC), `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
		mockUC.AssertNotCalled(t, "Classify")
	})

	t.Run("non-string text returns 400", func(t *testing.T) {
		mockUC := new(MockClassifyUsecase)

		w := postClassify(setupClassifyRouter(mockUC), `{"text": 42}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Classify")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		mockUC := new(MockClassifyUsecase)

		w := postClassify(setupClassifyRouter(mockUC), `{"text": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Classify")
	})

	t.Run("text that normalizes to empty returns 400", func(t *testing.T) {
		mockUC := new(MockClassifyUsecase)
		mockUC.On("Classify", mock.Anything, mock.Anything).Return(nil, usecase.ErrInvalidInput)

		w := postClassify(setupClassifyRouter(mockUC), `{"text": "!!! 123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	})

	t.Run("upstream failure returns 502 with an error field, never 200", func(t *testing.T) {
		mockUC := new(MockClassifyUsecase)
		mockUC.On("Classify", mock.Anything, mock.Anything).Return(nil, usecase.ErrUpstream)

		w := postClassify(setupClassifyRouter(mockUC), `{"text": "decent product"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Error)
		assert.Equal(t, "UPSTREAM_ERROR", body.Code)
	})
}
