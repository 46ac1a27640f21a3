package timing

import (
	"time"

	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/models"
)

// EndingWindow is the longest window before EndTime during which an auction is "ending".
const EndingWindow = 24 * time.Hour

// EndingThreshold returns the ending window for an auction of the given type:
// EndingWindow, capped at a third of the auction's duration. The cap matters
// for urgent auctions, which run a single day and would otherwise be "ending"
// from the moment they open; they get 8 hours. Unknown types get the full window.
func EndingThreshold(tt models.TransactionType) time.Duration {
	d, err := Duration(tt)
	if err != nil {
		return EndingWindow
	}
	if d/3 < EndingWindow {
		return d / 3
	}
	return EndingWindow
}

// StatusAt derives the bidding status at now. A zero endTime is treated as ended.
func StatusAt(endTime, now time.Time, threshold time.Duration) models.Status {
	if endTime.IsZero() || !endTime.After(now) {
		return models.StatusEnded
	}
	if endTime.Sub(now) <= threshold {
		return models.StatusEnding
	}
	return models.StatusActive
}

// DeriveStatus recomputes the status of a from its end time. The persisted
// Status snapshot is ignored.
func DeriveStatus(a models.AuctionRecord, now time.Time) models.Status {
	return StatusAt(a.EndTime, now, EndingThreshold(classify.EffectiveTransactionType(a)))
}
