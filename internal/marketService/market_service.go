package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/listing"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/ranking"
	"github.com/she110ff/metalcat-sub002/internal/repository"
	"github.com/she110ff/metalcat-sub002/internal/timing"
	"github.com/she110ff/metalcat-sub002/utils"
)

// MarketService defines the business logic of the auction marketplace
type MarketService struct {
	repo   repository.AuctionDB
	now    func() time.Time
	locale models.Locale
}

// Option configures a MarketService
type Option func(*MarketService)

// WithClock replaces the wall clock used for every status derivation.
func WithClock(now func() time.Time) Option {
	return func(s *MarketService) { s.now = now }
}

// WithLocale sets the language of derived display strings.
func WithLocale(locale models.Locale) Option {
	return func(s *MarketService) { s.locale = locale }
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.AuctionDB, opts ...Option) *MarketService {
	s := &MarketService{
		repo:   repo,
		now:    time.Now,
		locale: models.LocaleKO,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAuctionInput carries the seller-supplied fields of a new auction
type CreateAuctionInput struct {
	Title           string
	UserID          string
	SellerName      string
	TransactionType models.TransactionType
	ProductTypeID   string
	StartingPrice   int64
	PricePerUnit    *int64
	Address         models.Address
	Details         models.Details
}

// ListQuery selects, orders and pages the auction list
type ListQuery struct {
	Filter listing.Filter
	Sort   listing.Sort
	Page   listing.Page
}

// CreateAuction registers a new auction. Its end time is fixed here from the transaction type.
func (s *MarketService) CreateAuction(in CreateAuctionInput) (models.AuctionRecord, error) {
	if in.Title == "" || in.UserID == "" {
		return models.AuctionRecord{}, fmt.Errorf("service: %w - missing title or userID", auctionerrors.ErrInvalidAuction)
	}
	if in.StartingPrice < 0 {
		return models.AuctionRecord{}, fmt.Errorf("service: %w - negative starting price", auctionerrors.ErrInvalidAuction)
	}

	auction := models.AuctionRecord{
		ID:              utils.GenerateID(),
		Title:           in.Title,
		TransactionType: in.TransactionType,
		ProductTypeID:   in.ProductTypeID,
		StartingPrice:   in.StartingPrice,
		PricePerUnit:    in.PricePerUnit,
		ApprovalStatus:  models.ApprovalPending,
		UserID:          in.UserID,
		SellerName:      in.SellerName,
		Address:         in.Address,
		Details:         in.Details,
		Bids:            []models.BidRecord{},
		Photos:          []models.PhotoRecord{},
	}
	if _, err := classify.Classify(auction); err != nil {
		return models.AuctionRecord{}, fmt.Errorf("service: %w", err)
	}

	createdAt := s.now().UTC()
	endTime, err := timing.ComputeEndTime(classify.EffectiveTransactionType(auction), createdAt)
	if err != nil {
		return models.AuctionRecord{}, fmt.Errorf("service: %w", err)
	}
	auction.CreatedAt = createdAt
	auction.UpdatedAt = createdAt
	auction.EndTime = endTime
	auction.Status = timing.DeriveStatus(auction, createdAt)

	if err := s.repo.CreateAuction(auction); err != nil {
		return models.AuctionRecord{}, fmt.Errorf("service: failed to create auction %s: %w", auction.ID, err)
	}
	return auction, nil
}

// ListAuctions returns one page of auctions matching q, and the number of matches before paging
func (s *MarketService) ListAuctions(q ListQuery) ([]AuctionSummary, int, error) {
	records, err := s.repo.ListAuctions()
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	now := s.now()
	matched, err := listing.Apply(records, q.Filter, q.Sort, now)
	if err != nil {
		return nil, 0, fmt.Errorf("service: %w", err)
	}

	page := listing.Paginate(matched, q.Page)
	out := make([]AuctionSummary, 0, len(page))
	for _, a := range page {
		out = append(out, summarize(a, now, s.locale))
	}
	return out, len(matched), nil
}

// GetAuction returns the detail view of an auction and counts the view
func (s *MarketService) GetAuction(auctionID string) (AuctionDetail, error) {
	if auctionID == "" {
		return AuctionDetail{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	if err := s.repo.IncrementViewCount(auctionID); err != nil {
		return AuctionDetail{}, fmt.Errorf("service: failed to count view of auction %s: %w", auctionID, err)
	}
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	now := s.now()
	result, err := ranking.Settle(auction, auction.Bids, now)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: %w", err)
	}

	return AuctionDetail{
		AuctionSummary: summarize(auction, now, s.locale),
		Details:        auction.Details,
		Bids:           ranking.MarkTopBid(auction.Bids),
		TotalBidAmount: ranking.TotalBidAmount(auction.Bids),
		Result:         result,
		Photos:         auction.Photos,
	}, nil
}

// GetBidsForAuction returns the bids of an auction ordered by amount, with the top bid flagged
func (s *MarketService) GetBidsForAuction(auctionID string) ([]ranking.RankedBid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return ranking.MarkTopBid(bids), nil
}

// GetResult returns the outcome of an auction together with its current status.
// The result is nil while the auction is still running.
func (s *MarketService) GetResult(auctionID string) (*ranking.AuctionResult, models.Status, error) {
	if auctionID == "" {
		return nil, "", fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return nil, "", fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	now := s.now()
	result, err := ranking.Settle(auction, auction.Bids, now)
	if err != nil {
		return nil, "", fmt.Errorf("service: %w", err)
	}
	return result, timing.DeriveStatus(auction, now), nil
}

// PlaceBid validates and records a user's bid on an auction
func (s *MarketService) PlaceBid(auctionID, userID, userName string, amount int64) (models.BidRecord, error) {
	auction, err := s.validateBid(auctionID, userID, amount)
	if err != nil {
		return models.BidRecord{}, err
	}

	bid := models.BidRecord{
		ID:        utils.GenerateID(),
		AuctionID: auction.ID,
		UserID:    userID,
		UserName:  userName,
		Amount:    amount,
		BidTime:   s.now().UTC(),
	}
	if auction.PricePerUnit != nil {
		if d, ok := classify.AsScrap(auction); ok && d.Quantity.IsPositive() {
			ppu := decimal.NewFromInt(amount).Div(d.Quantity).Round(0).IntPart()
			bid.PricePerUnit = &ppu
		}
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return models.BidRecord{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}
	return bid, nil
}

// validateBid checks input validity and business rules for bidding
func (s *MarketService) validateBid(auctionID, userID string, amount int64) (models.AuctionRecord, error) {
	if auctionID == "" || userID == "" {
		return models.AuctionRecord{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.AuctionRecord{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.AuctionRecord{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	switch {
	case auction.Cancelled:
		return models.AuctionRecord{}, fmt.Errorf("service: %w - auction cancelled", auctionerrors.ErrAuctionClosed)
	case auction.ApprovalStatus != models.ApprovalApproved:
		return models.AuctionRecord{}, fmt.Errorf("service: %w - approval status %s", auctionerrors.ErrAuctionClosed, auction.ApprovalStatus)
	case timing.DeriveStatus(auction, s.now()) == models.StatusEnded:
		return models.AuctionRecord{}, fmt.Errorf("service: %w - auction ended", auctionerrors.ErrAuctionClosed)
	}

	if amount <= auction.StartingPrice {
		return models.AuctionRecord{}, fmt.Errorf("service: %w - starting price is %d", auctionerrors.ErrBidTooLow, auction.StartingPrice)
	}
	if top := ranking.TopBid(auction.Bids); top != nil && amount <= top.Amount {
		return models.AuctionRecord{}, fmt.Errorf("service: %w - current highest bid is %d", auctionerrors.ErrBidTooLow, top.Amount)
	}
	return auction, nil
}

// GetAuctionsByBidder returns every auction a user has bid on, with the user's standing in each
func (s *MarketService) GetAuctionsByBidder(userID string) ([]BidderAuction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	auctions, err := s.repo.GetAuctionsByBidder(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for user %s: %w", userID, err)
	}

	now := s.now()
	out := make([]BidderAuction, 0, len(auctions))
	for _, a := range auctions {
		standing := ranking.RankBidders(a.Bids)
		out = append(out, BidderAuction{
			AuctionSummary: summarize(a, now, s.locale),
			MyHighestBid:   standing.HighestBids[userID].Amount,
			MyRank:         standing.Ranks[userID],
			IsLeading:      standing.Ranks[userID] == 1,
		})
	}
	return out, nil
}
