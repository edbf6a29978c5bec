package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
	"dbug/internal/shared/utils"
)

const verifiedEmailKey = "verified_email"

// TokenValidator checks a verification token and returns the email it
// was issued for.
type TokenValidator interface {
	Validate(token string) (string, error)
}

type VerificationMiddleware struct {
	tokens TokenValidator
	logger logger.Interface
}

func NewVerificationMiddleware(tokens TokenValidator) *VerificationMiddleware {
	return &VerificationMiddleware{
		tokens: tokens,
		logger: logger.NewLogger(),
	}
}

// RequireVerifiedEmail rejects requests that do not carry a valid
// verification token in the Authorization header. On success the
// token's email is stored in the request context.
func (m *VerificationMiddleware) RequireVerifiedEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewAccessDeniedError("Email verification required"))
			c.Abort()
			return
		}

		email, err := m.tokens.Validate(token)
		if err != nil {
			m.logger.Warnw("verification token rejected", "error", err)
			utils.ErrorResponseWithError(c, errors.NewAccessDeniedError("Email verification required"))
			c.Abort()
			return
		}

		c.Set(verifiedEmailKey, email)
		c.Next()
	}
}

// VerifiedEmail returns the email the request's verification token was
// issued for, or an empty string when no token was validated.
func VerifiedEmail(c *gin.Context) string {
	email, _ := c.Get(verifiedEmailKey)
	s, _ := email.(string)
	return s
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
