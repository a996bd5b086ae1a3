package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderPaymentNotFound           = errors.New("order payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderAlreadyPaid               = errors.New("order already paid")
	ErrNothingToCharge                = errors.New("order total is not chargeable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const sandboxPayerEmail = "test_user_br@testuser.com"

// PaymentOptions configures the Mercado Pago flow.
//
// In Mock mode the gateway is skipped and every charge is approved. The
// TestPayer values map sandbox users to payer e-mails when the access token is
// a TEST- token.
type PaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IOrderPaymentUseCase charges the frozen total of a service order.
type IOrderPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo    interfaces.IOrderPaymentRepository
	orders  IInspectionUseCase
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	logger  *zap.Logger
	metrics *metrics.Metrics
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orders IInspectionUseCase, gateway interfaces.IPaymentGateway, opts PaymentOptions, log *zap.Logger, m *metrics.Metrics) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{
		repo:    repo,
		orders:  orders,
		gateway: gateway,
		opts:    opts,
		logger:  logger.OrNop(log).Named("payment.usecase"),
		metrics: m,
	}
}

func (u *OrderPaymentUseCase) CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	log := u.logger.With(zap.String("order_id", orderID))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}
	reqMap, err := u.parsePayload(mpPayload)
	if err != nil {
		log.Info("invalid payload", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	if !u.opts.Mock && u.gateway == nil {
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.orders == nil || u.repo == nil {
		return entities.OrderPayment{}, errors.New("payment dependencies not configured")
	}

	order, err := u.orders.GetOrder(ctx, orderID)
	if err != nil {
		log.Info("failed loading order", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	if !order.TotalValue.IsPositive() {
		return entities.OrderPayment{}, ErrNothingToCharge
	}

	existing, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		log.Error("failed listing payments", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusAprovado {
			return entities.OrderPayment{}, ErrOrderAlreadyPaid
		}
	}

	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("missing payment_method_id")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("missing/invalid payer")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events with the order.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s - %s", order.TemplateName, order.ClientName)
	}
	// The frozen order total is the only source of the amount.
	reqMap["transaction_amount"] = order.TotalValue.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.OrderPayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.Mock {
		log.Info("mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockApproval(reqMap)
		if err != nil {
			return entities.OrderPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.metrics.RecordPayment("gateway_error")
			log.Warn("payment gateway failed", zap.Error(err))
			return entities.OrderPayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.OrderPayment{
		ID:           providerPaymentID,
		OrderID:      orderID,
		Date:         time.Now().UTC(),
		Status:       mapProviderStatus(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.OrderPayment{}, err
	}
	u.metrics.RecordPayment(string(created.Status))
	log.Info("create-and-approve success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.String("total", order.TotalValue.StringFixed(2)),
	)
	return created, nil
}

func (u *OrderPaymentUseCase) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if p.ID == "" {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}
	return p, nil
}

func (u *OrderPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// parsePayload decodes the caller's Mercado Pago request. Mock mode tolerates
// an empty or malformed body.
func (u *OrderPaymentUseCase) parsePayload(raw json.RawMessage) (map[string]any, error) {
	var m map[string]any
	if len(raw) == 0 || !json.Valid(raw) || json.Unmarshal(raw, &m) != nil || m == nil {
		if u.opts.Mock {
			return map[string]any{}, nil
		}
		return nil, ErrInvalidMPPayload
	}
	return m, nil
}

func mockApproval(reqMap map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *OrderPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *OrderPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill the e-mail
	// only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = sandboxPayerEmail
		}
	}
}

func (u *OrderPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
