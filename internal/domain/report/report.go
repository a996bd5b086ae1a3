// Package report aggregates the order log for the finance and dashboard views.
package report

import (
	"sort"
	"strings"
	"time"

	"checkmaster/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RecentOrdersLimit is how many orders the overview lists.
const RecentOrdersLimit = 5

// ClientSummary is the per-client line of the finance report.
type ClientSummary struct {
	ClientName string          `json:"client_name"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	LastDate   time.Time       `json:"last_date"`
}

// DailyTotal is the revenue of one UTC calendar day.
type DailyTotal struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Overview feeds the dashboard.
type Overview struct {
	TotalValue      decimal.Decimal         `json:"total_value"`
	OrderCount      int                     `json:"order_count"`
	TodayCount      int                     `json:"today_count"`
	DistinctClients int                     `json:"distinct_clients"`
	Recent          []entities.ServiceOrder `json:"recent"`
}

// Window is a half-open [From, To) time range. A zero bound is open.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}

func FilterByWindow(orders []entities.ServiceOrder, w Window) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if w.Contains(o.Date) {
			out = append(out, o)
		}
	}
	return out
}

// GroupByClient sums orders per client name, sorted by total descending and
// then by name.
func GroupByClient(orders []entities.ServiceOrder) []ClientSummary {
	byClient := map[string]*ClientSummary{}
	for _, o := range orders {
		s, ok := byClient[o.ClientName]
		if !ok {
			s = &ClientSummary{ClientName: o.ClientName, Total: decimal.Zero}
			byClient[o.ClientName] = s
		}
		s.Total = s.Total.Add(o.TotalValue)
		s.Count++
		if o.Date.After(s.LastDate) {
			s.LastDate = o.Date
		}
	}

	out := make([]ClientSummary, 0, len(byClient))
	for _, s := range byClient {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].ClientName < out[j].ClientName
	})
	return out
}

// DailyTotals buckets orders per UTC day, oldest first.
func DailyTotals(orders []entities.ServiceOrder) []DailyTotal {
	byDay := map[string]*DailyTotal{}
	for _, o := range orders {
		day := o.Date.UTC().Format(time.DateOnly)
		d, ok := byDay[day]
		if !ok {
			d = &DailyTotal{Day: day, Total: decimal.Zero}
			byDay[day] = d
		}
		d.Total = d.Total.Add(o.TotalValue)
		d.Count++
	}
	out := make([]DailyTotal, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// BuildOverview summarizes the log as of now. Recent lists the latest
// appended orders, newest first.
func BuildOverview(orders []entities.ServiceOrder, now time.Time) Overview {
	today := now.UTC().Format(time.DateOnly)
	ov := Overview{TotalValue: decimal.Zero, OrderCount: len(orders)}
	clients := map[string]struct{}{}
	for _, o := range orders {
		ov.TotalValue = ov.TotalValue.Add(o.TotalValue)
		if o.Date.UTC().Format(time.DateOnly) == today {
			ov.TodayCount++
		}
		if name := strings.TrimSpace(o.ClientName); name != "" {
			clients[name] = struct{}{}
		}
	}
	ov.DistinctClients = len(clients)

	n := RecentOrdersLimit
	if len(orders) < n {
		n = len(orders)
	}
	ov.Recent = make([]entities.ServiceOrder, 0, n)
	for i := len(orders) - 1; i >= len(orders)-n; i-- {
		ov.Recent = append(ov.Recent, orders[i].Clone())
	}
	return ov
}

// Favorites returns the templates marked as shortcuts, in store order.
func Favorites(templates []entities.ChecklistTemplate) []entities.ChecklistTemplate {
	out := make([]entities.ChecklistTemplate, 0, len(templates))
	for _, t := range templates {
		if t.IsFavorite {
			out = append(out, t)
		}
	}
	return out
}
