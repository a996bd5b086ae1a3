package handlers

import (
	"errors"
	"net/http"

	request "checkmaster/internal/adapter/http/dto/request"
	response "checkmaster/internal/adapter/http/dto/response"
	"checkmaster/internal/adapter/http/middleware"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase"
	"checkmaster/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler is the login stub. Logout is client side: the token is simply
// dropped.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	logger  *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: logger.OrNop(log).Named("auth.handler")}
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  request.LoginRequest  true  "Credentials"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, token, err := h.usecase.Login(c.Request.Context(), payload.Email)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s, token))
}

// Session reports whether the caller holds a valid session. It never fails
// with 401; an invalid token reads as signed out.
//
// @Summary      Session
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.SessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	token, _ := middleware.BearerToken(c)
	s, err := h.usecase.Verify(token)
	if err != nil {
		h.logger.Debug("session check failed", zap.Error(err))
		s = entities.Session{}
	}
	c.JSON(http.StatusOK, response.FromSession(s, ""))
}

// @Summary      Logout
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if s, ok := middleware.SessionFrom(c); ok {
		h.logger.Info("logout", zap.String("name", s.Name))
	}
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "E-mail inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sessão inválida ou expirada", http.StatusUnauthorized)
	default:
		return mapCommonError(err)
	}
}
