package response

import (
	"time"

	"checkmaster/internal/domain/entities"
)

// SessionResponse reports the session flag. Token is only set by login.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Name          string     `json:"name,omitempty"`
	Email         string     `json:"email,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Token         string     `json:"token,omitempty"`
}

func FromSession(s entities.Session, token string) SessionResponse {
	res := SessionResponse{
		Authenticated: s.Authenticated,
		Name:          s.Name,
		Email:         s.Email,
		Token:         token,
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		res.ExpiresAt = &exp
	}
	return res
}
