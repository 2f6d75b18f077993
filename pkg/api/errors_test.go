package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agentloom/loom/pkg/services"
)

func TestAbortWithServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", services.NewValidationError("content", "cannot be empty"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"access denied hides existence", services.ErrAccessDenied, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"insufficient balance", services.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"wrapped not found", fmt.Errorf("load session: %w", services.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			abortWithServiceError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
