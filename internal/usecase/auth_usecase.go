package usecase

import (
	"context"
	"errors"
	"strings"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidSession = errors.New("invalid or expired session")
)

// IAuthUseCase is the login stub guarding the API.
//
// Without a token issuer authentication is disabled: Login succeeds with an
// empty token and every token verifies as the dev session.
type IAuthUseCase interface {
	Login(ctx context.Context, email string) (entities.Session, string, error)
	Verify(token string) (entities.Session, error)
	Enabled() bool
}

type AuthUseCase struct {
	issuer interfaces.ITokenIssuer
	logger *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(issuer interfaces.ITokenIssuer, log *zap.Logger) *AuthUseCase {
	return &AuthUseCase{issuer: issuer, logger: logger.OrNop(log).Named("auth.usecase")}
}

func (u *AuthUseCase) Enabled() bool {
	return u.issuer != nil
}

func (u *AuthUseCase) Login(_ context.Context, email string) (entities.Session, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return entities.Session{}, "", ErrInvalidEmail
	}
	s := entities.Session{Email: email, Name: email[:at], Authenticated: true}
	if !u.Enabled() {
		return s, "", nil
	}

	token, exp, err := u.issuer.Issue(s.Email, s.Name)
	if err != nil {
		u.logger.Error("issue token failed", zap.String("email", email), zap.Error(err))
		return entities.Session{}, "", err
	}
	s.ExpiresAt = exp
	u.logger.Info("login success", zap.String("name", s.Name))
	return s, token, nil
}

func (u *AuthUseCase) Verify(token string) (entities.Session, error) {
	if !u.Enabled() {
		return entities.DevSession(), nil
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrInvalidSession
	}
	s, err := u.issuer.Parse(token)
	if err != nil {
		u.logger.Debug("token rejected", zap.Error(err))
		return entities.Session{}, ErrInvalidSession
	}
	return s, nil
}
