package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/evaluation"
	mock_interfaces "checkmaster/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type paymentDeps struct {
	repo    *mock_interfaces.MockIOrderPaymentRepository
	store   *mock_interfaces.MockITemplateStore
	gateway *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, opts PaymentOptions) (*OrderPaymentUseCase, paymentDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := paymentDeps{
		repo:    mock_interfaces.NewMockIOrderPaymentRepository(ctrl),
		store:   mock_interfaces.NewMockITemplateStore(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	templates := NewTemplateUseCase(deps.store, evaluation.Policy{}, nil, nil)
	orders := NewInspectionUseCase(deps.store, templates, evaluation.Policy{}, nil, nil)
	return NewOrderPaymentUseCase(deps.repo, orders, deps.gateway, opts, nil, nil), deps
}

func paidOrder(total string) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:           "ord-1",
		TemplateName: "Instalação Padrão",
		ClientName:   "Transportes Silva",
		TotalValue:   decimal.RequireFromString(total),
		Status:       entities.OrderStatusCompleted,
		Date:         time.Now().UTC(),
	}
}

func TestOrderPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), "ord-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("non object payload", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`[]`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockITemplateStore(ctrl)
		orders := NewInspectionUseCase(store, NewTemplateUseCase(store, evaluation.Policy{}, nil, nil), evaluation.Policy{}, nil, nil)
		uc := NewOrderPaymentUseCase(mock_interfaces.NewMockIOrderPaymentRepository(ctrl), orders, nil, PaymentOptions{}, nil, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestOrderPaymentUseCase_CreateAndApprove_OrderChecks(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("0")}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("150")}, nil)
		deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.OrderPayment{{ID: "p0", Status: entities.PaymentStatusAprovado}}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("150")}, nil)
		deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("150")}, nil)
		deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestOrderPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, deps := newPaymentUseCase(t, PaymentOptions{})
			deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("10")}, nil)
			deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
			deps.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusAprovado, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusNegado, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPendente, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusAprovado, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, deps := newPaymentUseCase(t, PaymentOptions{
				AccessToken:     "TEST-token",
				TestPayerUserID: "123",
				TestPayerEmail:  "sandbox@test.com",
			})
			deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("77.20")}, nil)
			deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.OrderPayment{{ID: "old", Status: entities.PaymentStatusNegado}}, nil)

			deps.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "ord-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Instalação Padrão - Transportes Silva" {
						t.Fatalf("description not set: %v", body["description"])
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the order, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			deps.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderPayment{})).DoAndReturn(
				func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
					if p.ID != "pay-1" || p.OrderID != "ord-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)

			res, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips gateway", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{Mock: true})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("150")}, nil)
		deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				if p.MPPayload["transaction_amount"] != float64(150) || p.MPPayload["external_reference"] != "ord-1" {
					t.Fatalf("unexpected mock payload: %v", p.MPPayload)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "ord-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusAprovado || res.ID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.ServiceOrder{paidOrder("11")}, nil)
		deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		deps.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.OrderPayment{}, errors.New("db-create"))

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestOrderPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.OrderPayment{}, nil)

		if _, err := uc.GetByID(context.Background(), "id-1"); !errors.Is(err, ErrOrderPaymentNotFound) {
			t.Fatalf("expected ErrOrderPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		deps.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.OrderPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByOrderID", func(t *testing.T) {
		uc, deps := newPaymentUseCase(t, PaymentOptions{})
		if _, err := uc.ListByOrderID(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
		deps.repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.OrderPayment{{ID: "p1"}}, nil)
		res, err := uc.ListByOrderID(context.Background(), " ord-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestOrderPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) || hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for nil or blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		uc := &OrderPaymentUseCase{}
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		if m["payer"].(map[string]any)["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		uc.opts = PaymentOptions{TestPayerEmail: "custom@test.com"}
		m2 := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m2)
		if m2["payer"].(map[string]any)["email"] != "custom@test.com" {
			t.Fatalf("expected configured email fallback")
		}

		uc.opts = PaymentOptions{AccessToken: "TEST-123"}
		m3 := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m3)
		if m3["payer"].(map[string]any)["email"] != sandboxPayerEmail {
			t.Fatalf("expected sandbox fallback email")
		}

		uc.ensurePayerDefaults(map[string]any{"payer": "invalid"})
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		uc := &OrderPaymentUseCase{logger: zap.NewNop(), opts: PaymentOptions{AccessToken: "APP-123", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"}}
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		uc.normalizeSandboxPayerFromUserID(m)
		if _, ok := m["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		uc.opts.AccessToken = "TEST-123"
		mismatch := map[string]any{"payer": map[string]any{"id": "999"}}
		uc.normalizeSandboxPayerFromUserID(mismatch)
		if _, ok := mismatch["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}

		m2 := map[string]any{"payer": map[string]any{"id": "123"}}
		uc.normalizeSandboxPayerFromUserID(m2)
		payer := m2["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email")
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("gateway helper classifiers", func(t *testing.T) {
		if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) || isGatewayInvalidUsers(nil) || isGatewayCustomerNotFound(nil) {
			t.Fatalf("all nil checks should be false")
		}
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) {
			t.Fatalf("expected bad request true")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) {
			t.Fatalf("expected invalid users true")
		}
		if classifyGatewayError(errors.New("boom")).Error() != "boom" {
			t.Fatalf("unknown errors pass through")
		}
	})

	t.Run("mapProviderStatus", func(t *testing.T) {
		if mapProviderStatus("APPROVED") != entities.PaymentStatusAprovado || mapProviderStatus("cancelled") != entities.PaymentStatusNegado || mapProviderStatus("") != entities.PaymentStatusPendente {
			t.Fatalf("unexpected status mapping")
		}
	})
}
