package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const subjectKey = "auth.subject"

// RequireToken rejects requests without a valid bearer token and stores the
// token subject on the context.
func RequireToken(tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			unauthorized(c)
			return
		}

		subject, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(subjectKey, subject)
		c.Next()
	}
}

// Subject returns the authenticated student id, or "" outside RequireToken.
func Subject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
}
