package handlers

import (
	"net/http"

	request "checkmaster/internal/adapter/http/dto/request"
	response "checkmaster/internal/adapter/http/dto/response"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TemplateHandler serves the template library and the builder.
//
// Drafts are held by the client between builder calls; only Save writes to
// the store.

type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
	logger  *zap.Logger
}

func NewTemplateHandler(uc usecase.ITemplateUseCase, log *zap.Logger) *TemplateHandler {
	return &TemplateHandler{usecase: uc, logger: logger.OrNop(log).Named("template.handler")}
}

// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.TemplateResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	ts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(ts))
}

// @Summary      List favorite templates
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.TemplateResponse
// @Router       /templates/favorites [get]
func (h *TemplateHandler) ListFavorites(c *gin.Context) {
	ts, err := h.usecase.ListFavorites(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(ts))
}

// @Summary      Get template
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Template ID"
// @Success      200  {object}  response.TemplateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}

// SaveTemplate upserts a template. On PUT the path id wins over the body.
//
// @Summary      Save template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.TemplateRequest  true  "Template"
// @Success      200  {object}  response.TemplateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /templates [post]
// @Router       /templates/{id} [put]
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	var payload request.TemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("invalid template payload", zap.Error(err))
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if id := c.Param("id"); id != "" {
		payload.ID = id
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(saved))
}

// @Summary      New draft
// @Description  Returns an empty template with a fresh id; nothing is stored
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.TemplateResponse
// @Router       /templates/draft [post]
func (h *TemplateHandler) NewDraft(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTemplate(h.usecase.NewDraft()))
}

// @Summary      Apply builder action
// @Description  Applies one edit to the draft and returns the new draft; nothing is stored
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.BuilderRequest  true  "Draft and action"
// @Success      200  {object}  response.TemplateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /templates/builder [post]
func (h *TemplateHandler) ApplyBuilder(c *gin.Context) {
	var payload request.BuilderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	next, err := h.usecase.ApplyBuilder(payload.Template.ToEntity(), cmd)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(next))
}

// @Summary      Start inspection
// @Description  Copies the template into a new run seeded with its preset values
// @Tags         inspections
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Template ID"
// @Success      201  {object}  response.RunResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /templates/{id}/runs [post]
func (h *TemplateHandler) StartRun(c *gin.Context) {
	run, res, err := h.usecase.StartRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRun(run, res))
}
