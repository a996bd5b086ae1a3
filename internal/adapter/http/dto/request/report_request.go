package request

import (
	"errors"
	"strings"
	"time"

	"checkmaster/internal/domain/report"
)

var ErrInvalidWindow = errors.New("invalid report window")

// ReportQuery bounds a report to [from, to). Each bound is RFC 3339 or a
// plain date, read as UTC midnight. An empty bound is open.
type ReportQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q ReportQuery) Window() (report.Window, error) {
	from, err := parseBound(q.From)
	if err != nil {
		return report.Window{}, err
	}
	to, err := parseBound(q.To)
	if err != nil {
		return report.Window{}, err
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return report.Window{}, ErrInvalidWindow
	}
	return report.Window{From: from, To: to}, nil
}

func parseBound(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidWindow
}
