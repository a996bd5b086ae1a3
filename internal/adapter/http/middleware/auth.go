package middleware

import (
	"net/http"
	"strings"

	"checkmaster/internal/domain/entities"
	"checkmaster/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sessão inválida ou expirada", http.StatusUnauthorized)

// SessionVerifier resolves a bearer token into a session.
type SessionVerifier interface {
	Verify(token string) (entities.Session, error)
	Enabled() bool
}

// Auth rejects requests without a valid bearer token. When the verifier is
// disabled every request runs as the dev session.
func Auth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verifier.Enabled() {
			c.Set(sessionKey, entities.DevSession())
			c.Next()
			return
		}

		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		session, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// SessionFrom returns the session stored by Auth.
func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}
