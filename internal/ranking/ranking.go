// Package ranking orders the bids of one auction and derives the outcome of an
// auction that is over.
package ranking

import (
	"slices"

	"github.com/she110ff/metalcat-sub002/internal/models"
)

// RankedBid is a bid with its position in the amount ordering.
type RankedBid struct {
	models.BidRecord
	Rank     int  `json:"rank"`
	IsTopBid bool `json:"is_top_bid"`
}

// BidderRanking holds each bidder's highest bid and their rank.
type BidderRanking struct {
	Ranks         map[string]int
	HighestBids   map[string]models.BidRecord
	SortedBidders []string
}

// outranks orders bids by amount descending, then by bid time ascending.
// Amounts should be strictly increasing, so equal amounts are a data anomaly
// and the earlier bid wins.
func outranks(a, b models.BidRecord) int {
	switch {
	case a.Amount > b.Amount:
		return -1
	case a.Amount < b.Amount:
		return 1
	}
	return a.BidTime.Compare(b.BidTime)
}

// SortByAmountDescending returns a sorted copy of bids; bids itself is not modified.
func SortByAmountDescending(bids []models.BidRecord) []models.BidRecord {
	sorted := slices.Clone(bids)
	if sorted == nil {
		sorted = []models.BidRecord{}
	}
	slices.SortStableFunc(sorted, outranks)
	return sorted
}

// TopBid returns the winning bid, or nil when there are no bids.
func TopBid(bids []models.BidRecord) *models.BidRecord {
	if len(bids) == 0 {
		return nil
	}
	top := bids[0]
	for _, b := range bids[1:] {
		if outranks(b, top) < 0 {
			top = b
		}
	}
	return &top
}

// TotalBidAmount sums every bid amount. It is a display aggregate only.
func TotalBidAmount(bids []models.BidRecord) int64 {
	var total int64
	for _, b := range bids {
		total += b.Amount
	}
	return total
}

// CurrentBid is the value the auction's current bid must hold: the top amount,
// or nil when nobody has bid.
func CurrentBid(bids []models.BidRecord) *int64 {
	top := TopBid(bids)
	if top == nil {
		return nil
	}
	amount := top.Amount
	return &amount
}

// MarkTopBid sorts bids and flags exactly one of them as the top bid.
func MarkTopBid(bids []models.BidRecord) []RankedBid {
	sorted := SortByAmountDescending(bids)
	ranked := make([]RankedBid, len(sorted))
	for i, b := range sorted {
		ranked[i] = RankedBid{BidRecord: b, Rank: i + 1, IsTopBid: i == 0}
	}
	return ranked
}

// RankBidders keeps the highest bid of every bidder and ranks the bidders by it.
func RankBidders(bids []models.BidRecord) BidderRanking {
	result := BidderRanking{
		Ranks:         make(map[string]int),
		HighestBids:   make(map[string]models.BidRecord),
		SortedBidders: make([]string, 0),
	}

	for _, b := range bids {
		existing, ok := result.HighestBids[b.UserID]
		if !ok {
			result.SortedBidders = append(result.SortedBidders, b.UserID)
		}
		if !ok || outranks(b, existing) < 0 {
			result.HighestBids[b.UserID] = b
		}
	}

	slices.SortStableFunc(result.SortedBidders, func(a, b string) int {
		return outranks(result.HighestBids[a], result.HighestBids[b])
	})
	for i, userID := range result.SortedBidders {
		result.Ranks[userID] = i + 1
	}
	return result
}
