package market

import (
	"time"

	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/pricing"
	"github.com/she110ff/metalcat-sub002/internal/ranking"
	"github.com/she110ff/metalcat-sub002/internal/timing"
)

// AuctionSummary is the list-row projection of an auction, with every derived field computed at read time.
type AuctionSummary struct {
	ID                   string                 `json:"id"`
	Title                string                 `json:"title"`
	Category             models.Category        `json:"auction_category"`
	CategoryLabel        string                 `json:"category_label"`
	Description          string                 `json:"description"`
	TransactionType      models.TransactionType `json:"transaction_type"`
	ProductTypeID        string                 `json:"product_type_id"`
	Status               models.Status          `json:"status"`
	ApprovalStatus       models.ApprovalStatus  `json:"approval_status"`
	Cancelled            bool                   `json:"cancelled"`
	StartingPrice        int64                  `json:"starting_price"`
	CurrentBid           *int64                 `json:"current_bid"`
	CurrentPriceText     string                 `json:"current_price_text"`
	PricePerUnit         *int64                 `json:"price_per_unit,omitempty"`
	EstimatedValue       *int64                 `json:"estimated_value,omitempty"`
	BidderCount          int                    `json:"bidder_count"`
	ViewCount            int                    `json:"view_count"`
	CreatedAt            time.Time              `json:"created_at"`
	EndTime              time.Time              `json:"end_time"`
	RemainingTime        string                 `json:"remaining_time"`
	CompactRemainingTime string                 `json:"compact_remaining_time"`
	Deadline             string                 `json:"deadline"`
	Address              models.Address         `json:"address"`
	SellerName           string                 `json:"seller_name"`
}

// AuctionDetail is the detail-page projection of an auction
type AuctionDetail struct {
	AuctionSummary
	Details        models.Details         `json:"details"`
	Bids           []ranking.RankedBid    `json:"bids"`
	TotalBidAmount int64                  `json:"total_bid_amount"`
	Result         *ranking.AuctionResult `json:"result"`
	Photos         []models.PhotoRecord   `json:"photos"`
}

// BidderAuction is an auction seen from one bidder's side
type BidderAuction struct {
	AuctionSummary
	MyHighestBid int64 `json:"my_highest_bid"`
	MyRank       int   `json:"my_rank"`
	IsLeading    bool  `json:"is_leading"`
}

func summarize(a models.AuctionRecord, now time.Time, locale models.Locale) AuctionSummary {
	category, err := classify.Classify(a)
	label := locale.Unknown()
	if err == nil {
		label = classify.Label(category, locale)
	}

	seller := a.SellerName
	if seller == "" {
		seller = locale.Unknown()
	}

	s := AuctionSummary{
		ID:                   a.ID,
		Title:                a.Title,
		Category:             category,
		CategoryLabel:        label,
		Description:          classify.Describe(a, locale),
		TransactionType:      classify.EffectiveTransactionType(a),
		ProductTypeID:        a.ProductTypeID,
		Status:               timing.DeriveStatus(a, now),
		ApprovalStatus:       a.ApprovalStatus,
		Cancelled:            a.Cancelled,
		StartingPrice:        a.StartingPrice,
		CurrentBid:           a.CurrentBid,
		CurrentPriceText:     pricing.FormatCurrency(pricing.CurrentPrice(a)),
		PricePerUnit:         a.PricePerUnit,
		BidderCount:          a.BidderCount,
		ViewCount:            a.ViewCount,
		CreatedAt:            a.CreatedAt,
		EndTime:              a.EndTime,
		RemainingTime:        timing.RemainingTime(a.EndTime, now, locale),
		CompactRemainingTime: timing.CompactRemainingTime(a.EndTime, now, locale),
		Deadline:             timing.FormatDeadline(a.EndTime, locale),
		Address:              a.Address,
		SellerName:           seller,
	}
	if v, ok := pricing.EstimatedValue(a); ok {
		s.EstimatedValue = &v
	}
	return s
}
