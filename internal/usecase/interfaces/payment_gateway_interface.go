package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges an order total through an external provider
// (Mercado Pago) and returns the raw provider response for audit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
