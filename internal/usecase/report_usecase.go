package usecase

import (
	"context"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/report"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Dashboard is the home screen summary.
type Dashboard struct {
	report.Overview
	Favorites []entities.ChecklistTemplate `json:"favorites"`
}

// IReportUseCase reads the order log for finance views and exports.
type IReportUseCase interface {
	Orders(ctx context.Context, w report.Window) ([]entities.ServiceOrder, error)
	ClientSummaries(ctx context.Context, w report.Window) ([]report.ClientSummary, error)
	DailyTotals(ctx context.Context, w report.Window) ([]report.DailyTotal, error)
	Dashboard(ctx context.Context) (Dashboard, error)
}

type ReportUseCase struct {
	store   interfaces.ITemplateStore
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.ITemplateStore, log *zap.Logger, m *metrics.Metrics) *ReportUseCase {
	return &ReportUseCase{store: store, logger: logger.OrNop(log).Named("report.usecase"), metrics: m, now: time.Now}
}

func (u *ReportUseCase) Orders(ctx context.Context, w report.Window) ([]entities.ServiceOrder, error) {
	orders, err := u.store.LoadOrders(ctx)
	if err != nil {
		u.logger.Error("load orders failed", zap.Error(err))
		u.metrics.RecordStoreError("load_orders")
		return nil, err
	}
	return report.FilterByWindow(orders, w), nil
}

func (u *ReportUseCase) ClientSummaries(ctx context.Context, w report.Window) ([]report.ClientSummary, error) {
	orders, err := u.Orders(ctx, w)
	if err != nil {
		return nil, err
	}
	return report.GroupByClient(orders), nil
}

func (u *ReportUseCase) DailyTotals(ctx context.Context, w report.Window) ([]report.DailyTotal, error) {
	orders, err := u.Orders(ctx, w)
	if err != nil {
		return nil, err
	}
	return report.DailyTotals(orders), nil
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (Dashboard, error) {
	templates, err := u.store.LoadTemplates(ctx)
	if err != nil {
		u.logger.Error("load templates failed", zap.Error(err))
		u.metrics.RecordStoreError("load_templates")
		return Dashboard{}, err
	}
	orders, err := u.Orders(ctx, report.Window{})
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Overview:  report.BuildOverview(orders, u.now()),
		Favorites: report.Favorites(templates),
	}, nil
}
