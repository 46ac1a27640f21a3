package ranking

import (
	"fmt"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/timing"
)

// AuctionResult is the outcome of an auction that is over.
type AuctionResult struct {
	Result        models.Outcome `json:"result"`
	WinningUserID string         `json:"winning_user_id,omitempty"`
	WinningAmount *int64         `json:"winning_amount,omitempty"`
	WinningBidID  string         `json:"winning_bid_id,omitempty"`
}

// DeriveResult classifies an ended auction from its bids. A cancelled auction
// is reported as cancelled whatever its bids or status.
func DeriveResult(status models.Status, bids []models.BidRecord, cancelled bool) (AuctionResult, error) {
	if cancelled {
		return AuctionResult{Result: models.OutcomeCancelled}, nil
	}
	if status != models.StatusEnded {
		return AuctionResult{}, fmt.Errorf("derive result in status %q: %w", status, auctionerrors.ErrAuctionNotEnded)
	}

	top := TopBid(bids)
	if top == nil {
		return AuctionResult{Result: models.OutcomeFailed}, nil
	}
	amount := top.Amount
	return AuctionResult{
		Result:        models.OutcomeSuccessful,
		WinningUserID: top.UserID,
		WinningAmount: &amount,
		WinningBidID:  top.ID,
	}, nil
}

// Settle derives the result of a at now. It returns nil while the auction is
// still running and has not been cancelled.
func Settle(a models.AuctionRecord, bids []models.BidRecord, now time.Time) (*AuctionResult, error) {
	status := timing.DeriveStatus(a, now)
	if status != models.StatusEnded && !a.Cancelled {
		return nil, nil
	}
	result, err := DeriveResult(status, bids, a.Cancelled)
	if err != nil {
		return nil, fmt.Errorf("settle auction %q: %w", a.ID, err)
	}
	return &result, nil
}
