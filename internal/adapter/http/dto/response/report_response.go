package response

import (
	"time"

	"checkmaster/internal/domain/report"
	"checkmaster/internal/usecase"
)

type ClientSummaryResponse struct {
	ClientName string    `json:"client_name"`
	Total      string    `json:"total"`
	Count      int       `json:"count"`
	LastDate   time.Time `json:"last_date"`
}

type DailyTotalResponse struct {
	Day   string `json:"day"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	TotalValue      string             `json:"total_value"`
	OrderCount      int                `json:"order_count"`
	TodayCount      int                `json:"today_count"`
	DistinctClients int                `json:"distinct_clients"`
	Recent          []OrderResponse    `json:"recent"`
	Favorites       []TemplateResponse `json:"favorites"`
}

func FromClientSummaries(ss []report.ClientSummary) []ClientSummaryResponse {
	out := make([]ClientSummaryResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, ClientSummaryResponse{
			ClientName: s.ClientName,
			Total:      s.Total.StringFixed(2),
			Count:      s.Count,
			LastDate:   s.LastDate,
		})
	}
	return out
}

func FromDailyTotals(ds []report.DailyTotal) []DailyTotalResponse {
	out := make([]DailyTotalResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DailyTotalResponse{Day: d.Day, Total: d.Total.StringFixed(2), Count: d.Count})
	}
	return out
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalValue:      d.TotalValue.StringFixed(2),
		OrderCount:      d.OrderCount,
		TodayCount:      d.TodayCount,
		DistinctClients: d.DistinctClients,
		Recent:          FromOrders(d.Recent),
		Favorites:       FromTemplates(d.Favorites),
	}
}
