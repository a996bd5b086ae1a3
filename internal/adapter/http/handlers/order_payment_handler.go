package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "checkmaster/internal/adapter/http/dto/response"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase"
	"checkmaster/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderPaymentHandler handles HTTP requests for order payments.

type OrderPaymentHandler struct {
	usecase  usecase.IOrderPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase, mockMode bool, log *zap.Logger) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger.OrNop(log).Named("payment.handler")}
}

// CreatePaymentByOrderID charges the frozen total of an order.
//
// @Summary      Charge order
// @Description  Creates and processes a Mercado Pago payment for the order total
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path  string                             true  "Order ID"
// @Param        request  body  request.OrderPaymentCreateRequest  true  "Mercado Pago payload"
// @Success      200  {object}  response.OrderPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [post]
func (h *OrderPaymentHandler) CreatePaymentByOrderID(c *gin.Context) {
	orderID := c.Param("id")
	log := h.logger.With(zap.String("order_id", orderID))
	log.Debug("create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Info("payload invalid in mock mode; fallback to empty payload", zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			log.Info("invalid payload", zap.Error(err))
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		log.Warn("create failed", zap.Error(err))
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// GetPaymentByOrderID returns the latest payment for an order.
//
// @Summary      Latest order payment
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [get]
func (h *OrderPaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("id")

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Warn("get-by-order failed", zap.String("order_id", orderID), zap.Error(err))
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(latest))
}

// GetPaymentByID returns one payment.
//
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      200  {object}  response.OrderPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *OrderPaymentHandler) GetPaymentByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Order total is not chargeable", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
