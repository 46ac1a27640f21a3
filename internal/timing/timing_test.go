package timing

import (
	"errors"
	"testing"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name    string
		tt      models.TransactionType
		want    int
		wantErr bool
	}{
		{name: "normal", tt: models.TransactionNormal, want: 3},
		{name: "urgent", tt: models.TransactionUrgent, want: 1},
		{name: "empty", tt: "", wantErr: true},
		{name: "unknown", tt: "express", wantErr: true},
		{name: "wrong_case", tt: "Urgent", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DurationDays(tc.tt)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrInvalidTransactionType), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			// constant across calls
			again, _ := DurationDays(tc.tt)
			require.Equal(t, got, again)
		})
	}
}

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime(models.TransactionUrgent, created)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), end)

	end, err = ComputeEndTime(models.TransactionNormal, created)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), end)

	_, err = ComputeEndTime("weekly", created)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidTransactionType)
}

func TestComputeEndTime_AbsoluteAcrossZones(t *testing.T) {
	// 2025-03-08 12:00 in New York is 3 days before a DST switch; the result must still be exactly 72h later.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	start := time.Date(2025, 3, 8, 12, 0, 0, 0, ny)

	end, err := ComputeEndTime(models.TransactionNormal, start)
	require.NoError(t, err)
	require.Equal(t, 72*time.Hour, end.Sub(start))
	require.Equal(t, time.UTC, end.Location())
}

func TestRemainingTime(t *testing.T) {
	end := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		wantKO string
		wantEN string
	}{
		{name: "days_and_hours", now: end.Add(-(49*time.Hour + 30*time.Minute)), wantKO: "2일 1시간 남음", wantEN: "2 days 1 hour remaining"},
		{name: "exactly_one_day", now: end.Add(-24 * time.Hour), wantKO: "1일 0시간 남음", wantEN: "1 day 0 hours remaining"},
		{name: "hours_and_minutes", now: end.Add(-12 * time.Hour), wantKO: "12시간 0분 남음", wantEN: "12 hours 0 minutes remaining"},
		{name: "minutes_only", now: end.Add(-(42*time.Minute + 10*time.Second)), wantKO: "42분 남음", wantEN: "42 minutes remaining"},
		{name: "sub_minute_rounds_up", now: end.Add(-30 * time.Second), wantKO: "1분 남음", wantEN: "1 minute remaining"},
		{name: "exactly_now", now: end, wantKO: "종료됨", wantEN: "ended"},
		{name: "past", now: end.Add(time.Second), wantKO: "종료됨", wantEN: "ended"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantKO, RemainingTime(end, tc.now, models.LocaleKO))
			require.Equal(t, tc.wantEN, RemainingTime(end, tc.now, models.LocaleEN))
		})
	}
}

func TestRemainingTime_ZeroEndTime(t *testing.T) {
	require.Equal(t, "미상", RemainingTime(time.Time{}, created, models.LocaleKO))
	require.Equal(t, "unknown", CompactRemainingTime(time.Time{}, created, models.LocaleEN))
	require.Equal(t, "unknown", FormatDeadline(time.Time{}, models.LocaleEN))
}

func TestRemainingTime_Monotonic(t *testing.T) {
	end := created.Add(3 * 24 * time.Hour)
	prev := time.Duration(1<<63 - 1)
	ended := false

	for now := created; now.Before(end.Add(2 * time.Hour)); now = now.Add(17 * time.Minute) {
		text := RemainingTime(end, now, models.LocaleKO)
		if ended {
			require.Equal(t, "종료됨", text, "must stay ended at %s", now)
			continue
		}
		if text == "종료됨" {
			require.False(t, now.Before(end))
			ended = true
			continue
		}

		r, ok := breakdown(end, now)
		require.True(t, ok)
		implied := time.Duration(r.days)*24*time.Hour + time.Duration(r.hours)*time.Hour + time.Duration(r.minutes)*time.Minute
		require.LessOrEqual(t, implied, prev)
		prev = implied
	}
	require.True(t, ended)
}

func TestCompactRemainingTime(t *testing.T) {
	end := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "2일", CompactRemainingTime(end, end.Add(-50*time.Hour), models.LocaleKO))
	require.Equal(t, "2d", CompactRemainingTime(end, end.Add(-50*time.Hour), models.LocaleEN))
	require.Equal(t, "5시간", CompactRemainingTime(end, end.Add(-5*time.Hour-59*time.Minute), models.LocaleKO))
	require.Equal(t, "5h", CompactRemainingTime(end, end.Add(-5*time.Hour), models.LocaleEN))
	require.Equal(t, "12분", CompactRemainingTime(end, end.Add(-12*time.Minute), models.LocaleKO))
	require.Equal(t, "1m", CompactRemainingTime(end, end.Add(-time.Second), models.LocaleEN))
	require.Equal(t, "종료됨", CompactRemainingTime(end, end, models.LocaleKO))
}

func TestFormatDeadline(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	end := time.Date(2025, 1, 2, 9, 30, 0, 0, kst)

	require.Equal(t, "2025.01.02 00:30 마감", FormatDeadline(end, models.LocaleKO))
	require.Equal(t, "ends 2025-01-02 00:30 UTC", FormatDeadline(end, models.LocaleEN))
}
