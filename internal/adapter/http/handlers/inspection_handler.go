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

// InspectionHandler evaluates runs and finalizes them into service orders.

type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
	logger  *zap.Logger
}

func NewInspectionHandler(uc usecase.IInspectionUseCase, log *zap.Logger) *InspectionHandler {
	return &InspectionHandler{usecase: uc, logger: logger.OrNop(log).Named("inspection.handler")}
}

// @Summary      Evaluate run
// @Description  Returns the live total and whether the run can be finished
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.RunRequest  true  "Run state"
// @Success      200  {object}  response.EvaluationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /runs/evaluate [post]
func (h *InspectionHandler) Evaluate(c *gin.Context) {
	var payload request.RunRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Evaluate(c.Request.Context(), payload.ToRunInput())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(res))
}

// @Summary      Apply scanned vehicle
// @Description  Fills the run's AI-assisted fields from the vehicle data and re-evaluates
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.ApplyVehicleRequest  true  "Run state and field ids"
// @Success      200  {object}  response.RunValuesResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /runs/vehicle [post]
func (h *InspectionHandler) ApplyVehicle(c *gin.Context) {
	var payload request.ApplyVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	values, res, err := h.usecase.ApplyVehicle(c.Request.Context(), payload.ToRunInput(), payload.FieldIDs)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RunValuesResponse{Values: values, Evaluation: response.FromEvaluation(res)})
}

// @Summary      Finish inspection
// @Description  Freezes a ready run into a service order and appends it to the log
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.RunRequest  true  "Run state"
// @Success      201  {object}  response.OrderResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /runs/finish [post]
func (h *InspectionHandler) FinishInspection(c *gin.Context) {
	var payload request.RunRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.FinishInspection(c.Request.Context(), payload.ToRunInput())
	if err != nil {
		h.logger.Debug("finish rejected", zap.String("template_id", payload.TemplateID), zap.Error(err))
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.OrderResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *InspectionHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *InspectionHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
