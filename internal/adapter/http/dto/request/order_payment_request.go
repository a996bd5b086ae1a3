package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload for the "cria e processa pagamento" route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
