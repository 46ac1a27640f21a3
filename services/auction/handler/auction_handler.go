package handler

import (
	"errors"
	"net/http"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	market "github.com/she110ff/metalcat-sub002/internal/marketService"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/ranking"
	"github.com/she110ff/metalcat-sub002/services/auction/helpers"
	"github.com/she110ff/metalcat-sub002/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

type MarketServiceInterface interface {
	CreateAuction(in market.CreateAuctionInput) (models.AuctionRecord, error)
	ListAuctions(q market.ListQuery) ([]market.AuctionSummary, int, error)
	GetAuction(auctionID string) (market.AuctionDetail, error)
	GetBidsForAuction(auctionID string) ([]ranking.RankedBid, error)
	GetResult(auctionID string) (*ranking.AuctionResult, models.Status, error)
	PlaceBid(auctionID, userID, userName string, amount int64) (models.BidRecord, error)
	GetAuctionsByBidder(userID string) ([]market.BidderAuction, error)
}

type AuctionHandler struct {
	service MarketServiceInterface
}

func NewAuctionHandler(service MarketServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"user_id": req.UserID})
		return
	}

	auction, err := h.service.CreateAuction(in)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":       auction.ID,
		"user_id":          auction.UserID,
		"transaction_type": auction.TransactionType,
		"end_time":         auction.EndTime,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	var req helpers.ListAuctionsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	q, err := req.ToQuery()
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	auctions, total, err := h.service.ListAuctions(q)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}
	if auctions == nil {
		auctions = []market.AuctionSummary{}
	}

	utils.JSONPage(c, http.StatusOK, auctions, total, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
		"total": total,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	detail, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"status":     detail.Status,
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.RespondError(c, "GetBidsByAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.NewRankedBidResponses(bids)
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetResultHandler handles GET /auctions/:auction_id/result
func (h *AuctionHandler) GetResultHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	result, status, err := h.service.GetResult(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetResultHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ResultResponse{
		AuctionID: auctionID,
		Status:    status,
		Result:    result,
	}, "result retrieved successfully")

	fields := map[string]any{"auction_id": auctionID, "status": status}
	if result != nil {
		fields["result"] = result.Result
	}
	helpers.LogSuccess("GetResultHandler", "result retrieved successfully", fields)
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.AuctionID, req.UserID, req.UserName, req.Amount)
	if err != nil {
		helpers.RespondError(c, "RecordBidHandler", err, map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount,
	})
}

// GetAuctionsByUserHandler handles GET /users/:user_id/auctions
func (h *AuctionHandler) GetAuctionsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.service.GetAuctionsByBidder(userID)
	if err != nil && !errors.Is(err, auctionerrors.ErrUserNoBids) {
		helpers.RespondError(c, "GetAuctionsByUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	if auctions == nil {
		auctions = []market.BidderAuction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsByUserHandler", "auctions retrieved successfully", map[string]any{
		"user_id":        userID,
		"auctions_count": len(auctions),
	})
}
