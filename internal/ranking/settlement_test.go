package ranking

import (
	"testing"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDeriveResult(t *testing.T) {
	bids := []models.BidRecord{
		newBid("b1", "u1", 100, t0),
		newBid("b2", "u2", 300, t0.Add(time.Minute)),
	}

	tests := []struct {
		name       string
		status     models.Status
		bids       []models.BidRecord
		cancelled  bool
		want       models.Outcome
		wantWinner string
		wantAmount int64
		wantErr    error
	}{
		{name: "successful", status: models.StatusEnded, bids: bids, want: models.OutcomeSuccessful, wantWinner: "u2", wantAmount: 300},
		{name: "failed_without_bids", status: models.StatusEnded, bids: nil, want: models.OutcomeFailed},
		{name: "cancelled_with_bids", status: models.StatusEnded, bids: bids, cancelled: true, want: models.OutcomeCancelled},
		{name: "cancelled_while_active", status: models.StatusActive, bids: bids, cancelled: true, want: models.OutcomeCancelled},
		{name: "active", status: models.StatusActive, bids: bids, wantErr: auctionerrors.ErrAuctionNotEnded},
		{name: "ending", status: models.StatusEnding, bids: nil, wantErr: auctionerrors.ErrAuctionNotEnded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DeriveResult(tc.status, tc.bids, tc.cancelled)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Result)

			if tc.want == models.OutcomeSuccessful {
				require.Equal(t, tc.wantWinner, got.WinningUserID)
				require.NotNil(t, got.WinningAmount)
				require.Equal(t, tc.wantAmount, *got.WinningAmount)
			} else {
				require.Empty(t, got.WinningUserID)
				require.Nil(t, got.WinningAmount)
			}
		})
	}
}

func TestSettle(t *testing.T) {
	end := t0.Add(24 * time.Hour)
	auction := models.AuctionRecord{
		ID:              "auction1",
		TransactionType: models.TransactionUrgent,
		EndTime:         end,
		Details:         &models.ScrapDetails{},
	}
	bids := []models.BidRecord{newBid("b1", "u1", 500, t0.Add(time.Hour))}

	result, err := Settle(auction, bids, end.Add(-time.Hour))
	require.NoError(t, err)
	require.Nil(t, result, "running auctions have no result")

	result, err = Settle(auction, bids, end)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, models.OutcomeSuccessful, result.Result)
	require.Equal(t, "b1", result.WinningBidID)

	auction.Cancelled = true
	result, err = Settle(auction, bids, end.Add(-time.Hour))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, models.OutcomeCancelled, result.Result)
}
