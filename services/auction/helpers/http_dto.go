package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/listing"
	market "github.com/she110ff/metalcat-sub002/internal/marketService"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/pricing"
	"github.com/she110ff/metalcat-sub002/internal/ranking"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	UserName  string `json:"user_name"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	Title           string                    `json:"title" binding:"required"`
	UserID          string                    `json:"user_id" binding:"required"`
	SellerName      string                    `json:"seller_name"`
	AuctionCategory string                    `json:"auction_category" binding:"required"`
	TransactionType string                    `json:"transaction_type"`
	ProductTypeID   string                    `json:"product_type_id"`
	StartingPrice   int64                     `json:"starting_price" binding:"gte=0"`
	PricePerUnit    *int64                    `json:"price_per_unit"`
	Address         models.Address            `json:"address"`
	ScrapInfo       *models.ScrapDetails      `json:"scrap_info"`
	MachineryInfo   *models.MachineryDetails  `json:"machinery_info"`
	MaterialsInfo   *models.MaterialsDetails  `json:"materials_info"`
	DemolitionInfo  *models.DemolitionDetails `json:"demolition_info"`
}

// ListAuctionsQuery is bound from the query string of GET /auctions
type ListAuctionsQuery struct {
	Status          string `form:"status"`
	ProductTypeID   string `form:"product_type_id"`
	TransactionType string `form:"transaction_type"`
	Category        string `form:"category"`
	Address         string `form:"address"`
	Approval        string `form:"approval"`
	Sort            string `form:"sort"`
	Order           string `form:"order"`
	Offset          int    `form:"offset" binding:"gte=0"`
	Limit           int    `form:"limit" binding:"gte=0,lte=100"`
}

type BidResponse struct {
	BidID      string `json:"bid_id"`
	AuctionID  string `json:"auction_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Amount     int64  `json:"amount"`
	AmountText string `json:"amount_text"`
	BidTime    string `json:"bid_time"`
	Rank       int    `json:"rank,omitempty"`
	IsTopBid   bool   `json:"is_top_bid"`
}

type ResultResponse struct {
	AuctionID string                 `json:"auction_id"`
	Status    models.Status          `json:"status"`
	Result    *ranking.AuctionResult `json:"result"`
}

// ToInput converts the request into service input, resolving the category payload
func (r CreateAuctionRequest) ToInput() (market.CreateAuctionInput, error) {
	category, err := classify.ParseCategory(r.AuctionCategory)
	if err != nil {
		return market.CreateAuctionInput{}, err
	}
	details, _ := models.NewDetails(category)
	switch category {
	case models.CategoryScrap:
		if r.ScrapInfo != nil {
			details = r.ScrapInfo
		}
	case models.CategoryMachinery:
		if r.MachineryInfo != nil {
			details = r.MachineryInfo
		}
	case models.CategoryMaterials:
		if r.MaterialsInfo != nil {
			details = r.MaterialsInfo
		}
	case models.CategoryDemolition:
		if r.DemolitionInfo != nil {
			details = r.DemolitionInfo
		}
	}

	raw := r.TransactionType
	if d, ok := details.(*models.DemolitionDetails); ok && d.TransactionType != "" {
		raw = string(d.TransactionType)
	}
	tt, err := classify.ParseTransactionType(raw)
	if err != nil {
		return market.CreateAuctionInput{}, err
	}
	if d, ok := details.(*models.DemolitionDetails); ok {
		d.TransactionType = tt
	}

	return market.CreateAuctionInput{
		Title:           r.Title,
		UserID:          r.UserID,
		SellerName:      r.SellerName,
		TransactionType: tt,
		ProductTypeID:   r.ProductTypeID,
		StartingPrice:   r.StartingPrice,
		PricePerUnit:    r.PricePerUnit,
		Address:         r.Address,
		Details:         details,
	}, nil
}

// ToQuery validates the query string and converts it into a list query
func (q ListAuctionsQuery) ToQuery() (market.ListQuery, error) {
	var out market.ListQuery

	if q.Status != "" {
		s := models.Status(strings.ToLower(q.Status))
		if !s.Valid() {
			return out, fmt.Errorf("status %q: %w", q.Status, auctionerrors.ErrInvalidAuction)
		}
		out.Filter.Status = s
	}
	if q.Approval != "" {
		a := models.ApprovalStatus(strings.ToLower(q.Approval))
		if !a.Valid() {
			return out, fmt.Errorf("approval status %q: %w", q.Approval, auctionerrors.ErrInvalidAuction)
		}
		out.Filter.ApprovalStatus = a
	}
	if q.Category != "" {
		c, err := classify.ParseCategory(q.Category)
		if err != nil {
			return out, err
		}
		out.Filter.Category = c
	}
	if q.TransactionType != "" {
		tt, err := classify.ParseTransactionType(q.TransactionType)
		if err != nil {
			return out, err
		}
		out.Filter.TransactionType = tt
	}
	out.Filter.ProductTypeID = q.ProductTypeID
	out.Filter.Address = q.Address

	key, err := listing.ParseSortKey(q.Sort)
	if err != nil {
		return out, err
	}
	out.Sort.Key = key
	switch strings.ToLower(q.Order) {
	case "", "asc":
	case "desc":
		out.Sort.Descending = true
	default:
		return out, fmt.Errorf("order %q: %w", q.Order, auctionerrors.ErrInvalidSortKey)
	}

	out.Page = listing.Page{Offset: q.Offset, Limit: q.Limit}
	return out, nil
}

// NewBidResponse renders a stored bid
func NewBidResponse(b models.BidRecord) BidResponse {
	return BidResponse{
		BidID:      b.ID,
		AuctionID:  b.AuctionID,
		UserID:     b.UserID,
		UserName:   b.UserName,
		Amount:     b.Amount,
		AmountText: pricing.FormatCurrency(b.Amount),
		BidTime:    b.BidTime.UTC().Format(time.RFC3339),
	}
}

// NewRankedBidResponses renders bids in rank order
func NewRankedBidResponses(bids []ranking.RankedBid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp := NewBidResponse(b.BidRecord)
		resp.Rank = b.Rank
		resp.IsTopBid = b.IsTopBid
		out = append(out, resp)
	}
	return out
}
