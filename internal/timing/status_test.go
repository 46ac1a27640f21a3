package timing

import (
	"testing"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/stretchr/testify/require"
)

func TestEndingThreshold(t *testing.T) {
	require.Equal(t, 24*time.Hour, EndingThreshold(models.TransactionNormal))
	require.Equal(t, 8*time.Hour, EndingThreshold(models.TransactionUrgent))
	require.Equal(t, EndingWindow, EndingThreshold("unknown"))
}

func TestStatusAt(t *testing.T) {
	end := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want models.Status
	}{
		{name: "well_before", now: end.Add(-48 * time.Hour), want: models.StatusActive},
		{name: "just_outside_window", now: end.Add(-24*time.Hour - time.Second), want: models.StatusActive},
		{name: "window_edge", now: end.Add(-24 * time.Hour), want: models.StatusEnding},
		{name: "inside_window", now: end.Add(-time.Minute), want: models.StatusEnding},
		{name: "at_end", now: end, want: models.StatusEnded},
		{name: "after_end", now: end.Add(time.Hour), want: models.StatusEnded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StatusAt(end, tc.now, EndingWindow))
		})
	}

	require.Equal(t, models.StatusEnded, StatusAt(time.Time{}, end, EndingWindow))
}

func TestStatusAt_Monotonic(t *testing.T) {
	order := map[models.Status]int{models.StatusActive: 0, models.StatusEnding: 1, models.StatusEnded: 2}
	end := created.Add(72 * time.Hour)

	last := -1
	for now := created.Add(-time.Hour); now.Before(end.Add(5 * time.Hour)); now = now.Add(13 * time.Minute) {
		s := order[StatusAt(end, now, EndingWindow)]
		require.GreaterOrEqual(t, s, last, "status went backwards at %s", now)
		last = s
	}
	require.Equal(t, 2, last)
}

func TestDeriveStatus_UrgentScenario(t *testing.T) {
	end, err := ComputeEndTime(models.TransactionUrgent, created)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), end)

	a := models.AuctionRecord{
		ID:              "a1",
		TransactionType: models.TransactionUrgent,
		EndTime:         end,
		Status:          models.StatusEnded, // stale snapshot, must be ignored
		Details:         &models.ScrapDetails{},
	}

	midday := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, models.StatusActive, DeriveStatus(a, midday))
	require.Equal(t, "12시간 0분 남음", RemainingTime(end, midday, models.LocaleKO))
	require.Equal(t, "12 hours 0 minutes remaining", RemainingTime(end, midday, models.LocaleEN))

	require.Equal(t, models.StatusEnding, DeriveStatus(a, end.Add(-8*time.Hour)))

	after := time.Date(2025, 1, 2, 0, 0, 1, 0, time.UTC)
	require.Equal(t, models.StatusEnded, DeriveStatus(a, after))
	require.Equal(t, "종료됨", RemainingTime(end, after, models.LocaleKO))
}

func TestDeriveStatus_DemolitionUsesNestedType(t *testing.T) {
	end := created.Add(24 * time.Hour)
	a := models.AuctionRecord{
		TransactionType: models.TransactionNormal,
		EndTime:         end,
		Details:         &models.DemolitionDetails{TransactionType: models.TransactionUrgent},
	}

	// 12h left: ending under the normal window, active under the urgent one.
	require.Equal(t, models.StatusActive, DeriveStatus(a, end.Add(-12*time.Hour)))
}
