package repository

import (
	"fmt"
	"slices"
	"sync"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/ranking"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the auction storage interface. It stands in for the hosted backend.
type AuctionDB interface {
	CreateAuction(auction models.AuctionRecord) error
	GetAuction(auctionID string) (models.AuctionRecord, error)
	ListAuctions() ([]models.AuctionRecord, error)
	// RecordBid stores bid only if it beats the starting price and the current top bid.
	RecordBid(bid models.BidRecord) error
	GetBidsByAuction(auctionID string) ([]models.BidRecord, error)
	GetAuctionsByBidder(userID string) ([]models.AuctionRecord, error)
	IncrementViewCount(auctionID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu        sync.RWMutex
	order     []string                        // auction IDs in insertion order
	auctions  map[string]models.AuctionRecord // key: auctionID -> value: auction without bids
	bids      map[string][]models.BidRecord   // key: auctionID -> value: list of bids
	userAucts map[string][]string             // key: userID -> value: auctionIDs the user has bid on
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:  make(map[string]models.AuctionRecord),
		bids:      make(map[string][]models.BidRecord),
		userAucts: make(map[string][]string),
	}
}

// CreateAuction stores a new auction. Its bids are recorded separately through RecordBid.
func (r *MemoryRepo) CreateAuction(auction models.AuctionRecord) error {
	if auction.ID == "" {
		return fmt.Errorf("create auction: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[auction.ID]; exists {
		return fmt.Errorf("create auction %s: %w - duplicate ID", auction.ID, auctionerrors.ErrInvalidAuction)
	}
	auction.Bids = nil
	r.auctions[auction.ID] = auction
	r.order = append(r.order, auction.ID)
	return nil
}

// GetAuction returns an auction with its bids attached
func (r *MemoryRepo) GetAuction(auctionID string) (models.AuctionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return models.AuctionRecord{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return r.withBids(auction), nil
}

// ListAuctions returns every auction in insertion order
func (r *MemoryRepo) ListAuctions() ([]models.AuctionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AuctionRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.withBids(r.auctions[id]))
	}
	return out, nil
}

// RecordBid appends a bid and keeps the auction's current bid and bidder count in step with it.
// The amount is compared against the starting price and the top bid under the write lock,
// so concurrent bidders cannot store a bid that does not beat the one before it.
func (r *MemoryRepo) RecordBid(bid models.BidRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	floor := auction.StartingPrice
	if top := ranking.TopBid(r.bids[bid.AuctionID]); top != nil && top.Amount > floor {
		floor = top.Amount
	}
	if bid.Amount <= floor {
		return fmt.Errorf("record bid for auction %s: %w - must exceed %d", bid.AuctionID, auctionerrors.ErrBidTooLow, floor)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	auction.CurrentBid = ranking.CurrentBid(r.bids[bid.AuctionID])
	auction.BidderCount = len(ranking.RankBidders(r.bids[bid.AuctionID]).SortedBidders)
	auction.UpdatedAt = bid.BidTime
	r.auctions[bid.AuctionID] = auction

	if !slices.Contains(r.userAucts[bid.UserID], bid.AuctionID) {
		r.userAucts[bid.UserID] = append(r.userAucts[bid.UserID], bid.AuctionID)
	}
	return nil
}

// GetBidsByAuction returns all bids for an auction in the order they were placed
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]models.BidRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]models.BidRecord(nil), bids...), nil
}

// GetAuctionsByBidder returns all auctions a user has bid on
func (r *MemoryRepo) GetAuctionsByBidder(userID string) ([]models.AuctionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.userAucts[userID]
	if !ok || len(ids) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, auctionerrors.ErrUserNoBids)
	}

	out := make([]models.AuctionRecord, 0, len(ids))
	for _, id := range ids {
		if auction, exists := r.auctions[id]; exists {
			out = append(out, r.withBids(auction))
		}
	}
	return out, nil
}

// IncrementViewCount bumps the view counter of an auction
func (r *MemoryRepo) IncrementViewCount(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("increment views for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	auction.ViewCount++
	r.auctions[auctionID] = auction
	return nil
}

// withBids must be called with r.mu held.
func (r *MemoryRepo) withBids(auction models.AuctionRecord) models.AuctionRecord {
	auction.Bids = append([]models.BidRecord{}, r.bids[auction.ID]...)
	return auction
}
