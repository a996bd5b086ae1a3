package interfaces

import (
	"time"

	"checkmaster/internal/domain/entities"
)

// ITokenIssuer signs and verifies session tokens.
type ITokenIssuer interface {
	Issue(email, name string) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.Session, error)
}
