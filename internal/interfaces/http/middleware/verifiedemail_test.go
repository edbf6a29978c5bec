package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubTokenValidator struct {
	email string
	err   error
}

func (s *stubTokenValidator) Validate(token string) (string, error) {
	return s.email, s.err
}

func TestVerificationMiddleware_RequireVerifiedEmail(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validator  *stubTokenValidator
		wantStatus int
		wantEmail  string
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer good-token",
			validator:  &stubTokenValidator{email: "jane.doe@dolluzcorp.in"},
			wantStatus: http.StatusOK,
			wantEmail:  "jane.doe@dolluzcorp.in",
		},
		{
			name:       "bare token without scheme",
			header:     "good-token",
			validator:  &stubTokenValidator{email: "jane.doe@dolluzcorp.in"},
			wantStatus: http.StatusOK,
			wantEmail:  "jane.doe@dolluzcorp.in",
		},
		{
			name:       "missing header",
			header:     "",
			validator:  &stubTokenValidator{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			header:     "Bearer bad-token",
			validator:  &stubTokenValidator{err: assert.AnError},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			engine := gin.New()

			var gotEmail string
			mw := NewVerificationMiddleware(tt.validator)
			engine.POST("/submit", mw.RequireVerifiedEmail(), func(c *gin.Context) {
				gotEmail = VerifiedEmail(c)
				c.Status(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/submit", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantEmail, gotEmail)
		})
	}
}
