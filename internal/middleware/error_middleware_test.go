package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "activity not found",
			err:         apperrors.ErrActivityNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Activity not found",
		},
		{
			name:        "already registered",
			err:         apperrors.ErrAlreadyRegistered,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Student is already signed up",
		},
		{
			name:        "not registered",
			err:         apperrors.ErrNotRegistered,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Student is not signed up for this activity",
		},
		{
			name:        "wrapped activity not found",
			err:         fmt.Errorf("service: %w", apperrors.ErrActivityNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Activity not found",
		},
		{
			name:        "validation failure",
			err:         fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "unknown errors leak no detail",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.False(t, body.Success)
		})
	}
}
