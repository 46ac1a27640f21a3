// Package timing computes auction durations, end times, remaining-time text
// and the time-driven bidding status. All arithmetic is done in UTC with fixed
// 24 hour days.
package timing

import (
	"fmt"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/models"
)

const (
	normalDurationDays = 3
	urgentDurationDays = 1

	day = 24 * time.Hour
)

// DurationDays returns how many days an auction of the given type runs.
func DurationDays(tt models.TransactionType) (int, error) {
	switch tt {
	case models.TransactionNormal:
		return normalDurationDays, nil
	case models.TransactionUrgent:
		return urgentDurationDays, nil
	}
	return 0, fmt.Errorf("duration for %q: %w", tt, auctionerrors.ErrInvalidTransactionType)
}

// Duration is DurationDays as an absolute duration.
func Duration(tt models.TransactionType) (time.Duration, error) {
	days, err := DurationDays(tt)
	if err != nil {
		return 0, err
	}
	return time.Duration(days) * day, nil
}

// ComputeEndTime returns createdAt plus the duration of tt, in UTC.
func ComputeEndTime(tt models.TransactionType, createdAt time.Time) (time.Time, error) {
	d, err := Duration(tt)
	if err != nil {
		return time.Time{}, err
	}
	return createdAt.UTC().Add(d), nil
}
