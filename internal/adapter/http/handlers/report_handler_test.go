package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"checkmaster/internal/adapter/export"
	"checkmaster/internal/adapter/http/handlers/mocks"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/report"
	"checkmaster/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func reportOrders() []entities.ServiceOrder {
	return []entities.ServiceOrder{
		{
			ID: "o1", ClientName: "Frota Norte",
			Vehicle:    entities.VehicleData{Placa: "ABC1D23", Modelo: "Strada"},
			TotalValue: decimal.RequireFromString("150"),
			Date:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "o2", ClientName: "Frota Norte",
			TotalValue: decimal.RequireFromString("80.5"),
			Date:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		},
	}
}

func newReportRouter(t *testing.T) (*mocks.MockIReportUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc, nil)
	h.now = func() time.Time { return time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC) }

	r := newRouter()
	r.GET("/v1/reports/orders", h.Orders)
	r.GET("/v1/reports/orders/export", h.ExportOrders)
	r.GET("/v1/reports/clients", h.ClientSummaries)
	r.GET("/v1/reports/clients/export", h.ExportFinance)
	r.GET("/v1/reports/daily", h.DailyTotals)
	r.GET("/v1/dashboard", h.Dashboard)
	return uc, r
}

func TestReportHandler_Window(t *testing.T) {
	uc, r := newReportRouter(t)

	t.Run("reversed bounds", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/reports/orders?from=2026-03-05&to=2026-03-01", "")
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_WINDOW" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("date bounds", func(t *testing.T) {
		want := report.Window{
			From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		}
		uc.EXPECT().Orders(gomock.Any(), want).Return(reportOrders()[:1], nil)
		w := perform(r, http.MethodGet, "/v1/reports/orders?from=2026-03-01&to=2026-03-02", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"o1"`) {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReportHandler_Summaries(t *testing.T) {
	uc, r := newReportRouter(t)

	uc.EXPECT().ClientSummaries(gomock.Any(), report.Window{}).Return(report.GroupByClient(reportOrders()), nil)
	w := perform(r, http.MethodGet, "/v1/reports/clients", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total":"230.50"`) {
		t.Fatalf("unexpected clients: %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().DailyTotals(gomock.Any(), report.Window{}).Return([]report.DailyTotal{{Day: "2026-03-01", Total: decimal.NewFromInt(150), Count: 1}}, nil)
	w = perform(r, http.MethodGet, "/v1/reports/daily", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"day":"2026-03-01"`) {
		t.Fatalf("unexpected daily: %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.Dashboard{
		Overview: report.Overview{TotalValue: decimal.RequireFromString("230.5"), OrderCount: 2},
	}, nil)
	w = perform(r, http.MethodGet, "/v1/dashboard", "")
	body := decodeBody(t, w)
	if body["total_value"] != "230.50" || body["order_count"] != float64(2) {
		t.Fatalf("unexpected dashboard: %s", w.Body.String())
	}
}

func TestReportHandler_Export(t *testing.T) {
	uc, r := newReportRouter(t)

	t.Run("orders csv", func(t *testing.T) {
		uc.EXPECT().Orders(gomock.Any(), gomock.Any()).Return(reportOrders(), nil)
		w := perform(r, http.MethodGet, "/v1/reports/orders/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != export.ContentTypeCSV {
			t.Fatalf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "Vistorias_CheckMaster_2026-03-05.csv") {
			t.Fatalf("unexpected disposition %q", got)
		}
		if !strings.Contains(w.Body.String(), "Data,Placa,Checklist,Cliente,Valor") || !strings.Contains(w.Body.String(), "ABC1D23") {
			t.Fatalf("unexpected csv: %s", w.Body.String())
		}
	})

	t.Run("finance xlsx", func(t *testing.T) {
		uc.EXPECT().Orders(gomock.Any(), gomock.Any()).Return(reportOrders(), nil)
		w := perform(r, http.MethodGet, "/v1/reports/clients/export?format=XLSX", "")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != export.ContentTypeXLSX {
			t.Fatalf("unexpected response: %d %q", w.Code, w.Header().Get("Content-Type"))
		}
		if !strings.HasPrefix(w.Body.String(), "PK") {
			t.Fatal("expected a zip container")
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/reports/clients/export?format=pdf", "")
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "UNSUPPORTED_FORMAT" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}
