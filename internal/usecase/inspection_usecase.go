package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/evaluation"
	"checkmaster/internal/domain/inspection"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRunNotReady     = inspection.ErrRunNotReady
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrMissingTemplate = errors.New("template or template_id is required")
)

var newOrderID = uuid.NewString

// RunInput is the state of a run as held by the caller. Template, when set,
// is the run's own copy; otherwise the stored template TemplateID is used.
type RunInput struct {
	TemplateID string
	Template   *entities.ChecklistTemplate
	ClientName string
	Vehicle    entities.VehicleData
	Values     entities.Values
}

// IInspectionUseCase evaluates runs and turns them into service orders.
type IInspectionUseCase interface {
	Evaluate(ctx context.Context, in RunInput) (evaluation.Result, error)
	ApplyVehicle(ctx context.Context, in RunInput, fieldIDs []string) (entities.Values, evaluation.Result, error)
	FinishInspection(ctx context.Context, in RunInput) (entities.ServiceOrder, error)
	ListOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
}

type InspectionUseCase struct {
	store     interfaces.ITemplateStore
	templates ITemplateUseCase
	policy    evaluation.Policy
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(store interfaces.ITemplateStore, templates ITemplateUseCase, policy evaluation.Policy, log *zap.Logger, m *metrics.Metrics) *InspectionUseCase {
	return &InspectionUseCase{
		store:     store,
		templates: templates,
		policy:    policy,
		logger:    logger.OrNop(log).Named("inspection.usecase"),
		metrics:   m,
		now:       time.Now,
	}
}

func (u *InspectionUseCase) Evaluate(ctx context.Context, in RunInput) (evaluation.Result, error) {
	t, err := u.resolveTemplate(ctx, in)
	if err != nil {
		return evaluation.Result{}, err
	}
	return u.policy.Evaluate(t.Fields, in.ClientName, in.Values), nil
}

// ApplyVehicle fills the AI-assisted fields of a run from in.Vehicle and
// re-evaluates it. An empty fieldIDs touches every AI-assisted field.
func (u *InspectionUseCase) ApplyVehicle(ctx context.Context, in RunInput, fieldIDs []string) (entities.Values, evaluation.Result, error) {
	t, err := u.resolveTemplate(ctx, in)
	if err != nil {
		return nil, evaluation.Result{}, err
	}
	values := inspection.ApplyVehicle(t.Fields, in.Values, in.Vehicle, fieldIDs...)
	return values, u.policy.Evaluate(t.Fields, in.ClientName, values), nil
}

// FinishInspection freezes a ready run into an order and appends it to the
// log. Nothing is stored when the run is not ready or the append fails.
func (u *InspectionUseCase) FinishInspection(ctx context.Context, in RunInput) (entities.ServiceOrder, error) {
	t, err := u.resolveTemplate(ctx, in)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	order, err := inspection.Finalize(t, in.ClientName, in.Vehicle, in.Values, u.policy, newOrderID(), u.now())
	if err != nil {
		res := u.policy.Evaluate(t.Fields, in.ClientName, in.Values)
		u.logger.Info("finish refused, run not ready",
			zap.String("template_id", t.ID),
			zap.Bool("client_missing", res.ClientMissing),
			zap.Strings("missing_required", res.MissingRequired),
			zap.Strings("rejected_prices", res.RejectedPrices),
		)
		return entities.ServiceOrder{}, err
	}

	if err := u.store.AppendOrder(ctx, order); err != nil {
		u.logger.Error("append order failed",
			zap.String("order_id", order.ID),
			zap.String("template_id", order.TemplateID),
			zap.Error(err),
		)
		u.metrics.RecordStoreError("append_order")
		return entities.ServiceOrder{}, err
	}

	u.metrics.RecordOrderFinalized(order.TotalValue)
	u.logger.Info("order finalized",
		zap.String("order_id", order.ID),
		zap.String("template_id", order.TemplateID),
		zap.String("client_name", order.ClientName),
		zap.String("total", order.TotalValue.StringFixed(2)),
	)
	return order, nil
}

func (u *InspectionUseCase) ListOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders, err := u.store.LoadOrders(ctx)
	if err != nil {
		u.logger.Error("load orders failed", zap.Error(err))
		u.metrics.RecordStoreError("load_orders")
		return nil, err
	}
	return orders, nil
}

func (u *InspectionUseCase) GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	orders, err := u.ListOrders(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, ErrOrderNotFound
}

func (u *InspectionUseCase) resolveTemplate(ctx context.Context, in RunInput) (entities.ChecklistTemplate, error) {
	if in.Template != nil {
		return in.Template.Clone(), nil
	}
	if strings.TrimSpace(in.TemplateID) == "" {
		return entities.ChecklistTemplate{}, ErrMissingTemplate
	}
	return u.templates.GetByID(ctx, in.TemplateID)
}
