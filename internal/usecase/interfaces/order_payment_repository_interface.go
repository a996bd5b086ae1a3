package interfaces

import (
	"context"

	"checkmaster/internal/domain/entities"
)

// IOrderPaymentRepository persists the charges made against service orders.

type IOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}
