package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconcile-dev/reconcile/internal/model"
)

func TestResolve_BackendProvided(t *testing.T) {
	backend := []model.PeriodOption{{ID: "p-1", Label: "Custom"}}
	got := Resolve(backend, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, backend, got, "backend periods pass through untouched")
}

func TestResolve_Fallback(t *testing.T) {
	got := Resolve(nil, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	require.Len(t, got, 2)

	assert.Equal(t, "2026-08", got[0].ID)
	assert.Equal(t, "August 2026", got[0].Label)
	assert.True(t, got[0].IsCurrent)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), got[0].StartDate)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got[0].EndDate)

	assert.Equal(t, "2026-07", got[1].ID)
	assert.False(t, got[1].IsCurrent)
}

func TestResolve_FallbackYearBoundary(t *testing.T) {
	got := Resolve(nil, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01", got[0].ID)
	assert.Equal(t, "2025-12", got[1].ID)
	assert.Equal(t, "December 2025", got[1].Label)
}

func TestCalendarMonth_February(t *testing.T) {
	p := CalendarMonth(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), p.EndDate, "leap year")
}
