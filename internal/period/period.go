// Package period resolves the statement periods selectable for an account.
package period

import (
	"fmt"
	"time"

	"github.com/reconcile-dev/reconcile/internal/model"
)

// Resolve returns the backend-provided periods when present, otherwise a
// fallback of the current and prior calendar months. The fallback keeps the
// period switcher usable when the backend omits periods for a new account.
func Resolve(backend []model.PeriodOption, now time.Time) []model.PeriodOption {
	if len(backend) > 0 {
		return backend
	}
	current := CalendarMonth(now.Year(), now.Month())
	current.IsCurrent = true
	prior := CalendarMonth(priorMonth(now.Year(), now.Month()))
	return []model.PeriodOption{current, prior}
}

// CalendarMonth builds the period covering one calendar month, with an ID
// like "2026-08" and a label like "August 2026".
func CalendarMonth(year int, month time.Month) model.PeriodOption {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return model.PeriodOption{
		ID:        fmt.Sprintf("%04d-%02d", year, int(month)),
		Label:     fmt.Sprintf("%s %d", month.String(), year),
		StartDate: start,
		EndDate:   end,
	}
}

func priorMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
