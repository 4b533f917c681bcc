package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "invalid input",
			err:                usecase.ErrInvalidInput,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "text is required",
		},
		{
			name:               "upstream failure",
			err:                usecase.ErrUpstream,
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "UPSTREAM_ERROR",
			expectedMessage:    "sentiment provider request failed",
		},
		{
			name:               "wrapped upstream failure",
			err:                fmt.Errorf("%w: connection refused", usecase.ErrUpstream),
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "UPSTREAM_ERROR",
			expectedMessage:    "sentiment provider request failed",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	t.Run("writes mapped status and error body", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			HandleUsecaseError(c, usecase.ErrUpstream)
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "UPSTREAM_ERROR")
		assert.Contains(t, w.Body.String(), `"error"`)
	})
}
