package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/report"
	"checkmaster/internal/infrastructure/metrics"
	mock_interfaces "checkmaster/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func reportOrders() []entities.ServiceOrder {
	day := func(d, h int) time.Time { return time.Date(2026, 4, d, h, 0, 0, 0, time.UTC) }
	return []entities.ServiceOrder{
		{ID: "o1", ClientName: "Alfa", TotalValue: decimal.NewFromInt(100), Date: day(1, 10)},
		{ID: "o2", ClientName: "Beta", TotalValue: decimal.NewFromInt(50), Date: day(1, 15)},
		{ID: "o3", ClientName: "Alfa", TotalValue: decimal.NewFromInt(30), Date: day(2, 9)},
		{ID: "o4", ClientName: "Gama", TotalValue: decimal.NewFromInt(10), Date: day(3, 8)},
	}
}

func TestReportUseCase(t *testing.T) {
	w := report.Window{From: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)}

	t.Run("orders in window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockITemplateStore(ctrl)
		store.EXPECT().LoadOrders(gomock.Any()).Return(reportOrders(), nil)

		got, err := NewReportUseCase(store, nil, nil).Orders(context.Background(), w)
		if err != nil || len(got) != 3 {
			t.Fatalf("unexpected result err=%v len=%d", err, len(got))
		}
	})

	t.Run("client summaries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockITemplateStore(ctrl)
		store.EXPECT().LoadOrders(gomock.Any()).Return(reportOrders(), nil)

		got, err := NewReportUseCase(store, nil, nil).ClientSummaries(context.Background(), w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ClientName != "Alfa" || got[0].Count != 2 || got[0].Total.String() != "130" {
			t.Fatalf("unexpected summaries: %+v", got)
		}
	})

	t.Run("daily totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockITemplateStore(ctrl)
		store.EXPECT().LoadOrders(gomock.Any()).Return(reportOrders(), nil)

		got, err := NewReportUseCase(store, nil, nil).DailyTotals(context.Background(), report.Window{})
		if err != nil || len(got) != 3 {
			t.Fatalf("unexpected result err=%v got=%+v", err, got)
		}
		if got[0].Total.String() != "150" || got[0].Count != 2 {
			t.Fatalf("unexpected first day: %+v", got[0])
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockITemplateStore(ctrl)
		store.EXPECT().LoadTemplates(gomock.Any()).Return(entities.DefaultTemplates(), nil)
		store.EXPECT().LoadOrders(gomock.Any()).Return(reportOrders(), nil)

		uc := NewReportUseCase(store, nil, nil)
		uc.now = func() time.Time { return time.Date(2026, 4, 3, 18, 0, 0, 0, time.UTC) }
		d, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.OrderCount != 4 || d.TodayCount != 1 || d.DistinctClients != 3 || d.TotalValue.String() != "190" {
			t.Fatalf("unexpected overview: %+v", d.Overview)
		}
		if len(d.Recent) != 4 || d.Recent[0].ID != "o4" {
			t.Fatalf("recent orders must be newest first: %+v", d.Recent)
		}
		if len(d.Favorites) != 2 {
			t.Fatalf("expected preset favorites, got %d", len(d.Favorites))
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockITemplateStore(ctrl)
		store.EXPECT().LoadTemplates(gomock.Any()).Return(nil, errors.New("down"))
		store.EXPECT().LoadOrders(gomock.Any()).Return(nil, errors.New("down"))
		m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
		uc := NewReportUseCase(store, nil, m)

		if _, err := uc.Dashboard(context.Background()); err == nil {
			t.Fatalf("expected dashboard error")
		}
		if _, err := uc.ClientSummaries(context.Background(), w); err == nil {
			t.Fatalf("expected summaries error")
		}
		if got := testutil.ToFloat64(m.StoreErrorsTotal.WithLabelValues("load_templates")); got != 1 {
			t.Fatalf("expected 1 load_templates error, got %v", got)
		}
		if got := testutil.ToFloat64(m.StoreErrorsTotal.WithLabelValues("load_orders")); got != 1 {
			t.Fatalf("expected 1 load_orders error, got %v", got)
		}
	})
}
