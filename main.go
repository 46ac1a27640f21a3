package main

import (
	"time"

	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/config"
	market "github.com/she110ff/metalcat-sub002/internal/marketService"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/repository"
	"github.com/she110ff/metalcat-sub002/internal/server"
	"github.com/she110ff/metalcat-sub002/internal/timing"
	"github.com/she110ff/metalcat-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Warn("invalid LOG_LEVEL, keeping info", map[string]any{"log_level": cfg.LogLevel})
	}
	gin.SetMode(cfg.GinMode)

	repo := repository.NewMemoryRepo()
	if cfg.SeedDemoData {
		prepopulateAuctions(repo, time.Now().UTC())
	}

	marketSvc := market.NewMarketService(repo, market.WithLocale(cfg.Locale))

	router := server.SetupRouter(marketSvc)

	utils.Info("starting auction server", map[string]any{"addr": cfg.Addr(), "locale": cfg.Locale})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// prepopulateAuctions adds sample auctions and bids to the in-memory repo
func prepopulateAuctions(repo *repository.MemoryRepo, now time.Time) {
	price := func(v int64) *int64 { return &v }
	weight := decimal.NewFromInt(1500)

	auctions := []models.AuctionRecord{
		{
			ID: "auction-scrap-1", Title: "구리 스크랩 1.5톤", TransactionType: models.TransactionNormal,
			ProductTypeID: "copper", StartingPrice: 9_000_000, PricePerUnit: price(6_500),
			ApprovalStatus: models.ApprovalApproved, UserID: "seller1", SellerName: "대성금속",
			Address:   models.Address{City: "인천광역시", District: "서구"},
			Details:   &models.ScrapDetails{Quantity: decimal.NewFromFloat(1.5), Unit: "ton", Weight: &weight},
			CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID: "auction-machinery-1", Title: "굴삭기 DX225", TransactionType: models.TransactionUrgent,
			ProductTypeID: "excavator", StartingPrice: 45_000_000,
			ApprovalStatus: models.ApprovalApproved, UserID: "seller2", SellerName: "한빛중기",
			Address:   models.Address{City: "경기도", District: "화성시"},
			Details:   &models.MachineryDetails{Manufacturer: "Doosan", ModelName: "DX225LCA", ManufacturingDate: "2019-04-01", Quantity: 1},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "auction-demolition-1", Title: "상가 건물 철거", TransactionType: models.TransactionNormal,
			ProductTypeID: "building", StartingPrice: 30_000_000,
			ApprovalStatus: models.ApprovalApproved, UserID: "seller3", SellerName: "",
			Address: models.Address{City: "서울특별시", District: "강서구"},
			Details: &models.DemolitionDetails{
				TransactionType: models.TransactionUrgent, Area: decimal.NewFromInt(330), AreaUnit: "m²",
				BuildingPurpose: "상가", StructureType: "철근콘크리트", FloorCount: 3,
			},
			CreatedAt: now.Add(-30 * time.Hour),
		},
	}

	for _, a := range auctions {
		end, err := timing.ComputeEndTime(classify.EffectiveTransactionType(a), a.CreatedAt)
		if err != nil {
			utils.Fatal("seed: invalid auction", map[string]any{"auction_id": a.ID, "error": err.Error()})
		}
		a.EndTime = end
		a.UpdatedAt = a.CreatedAt
		if err := repo.CreateAuction(a); err != nil {
			utils.Fatal("seed: failed to create auction", map[string]any{"auction_id": a.ID, "error": err.Error()})
		}
	}

	bids := []models.BidRecord{
		{ID: utils.GenerateID(), AuctionID: "auction-scrap-1", UserID: "buyer1", UserName: "김철수", Amount: 9_500_000, BidTime: now.Add(-10 * time.Hour)},
		{ID: utils.GenerateID(), AuctionID: "auction-scrap-1", UserID: "buyer2", UserName: "이영희", Amount: 9_800_000, BidTime: now.Add(-6 * time.Hour)},
		{ID: utils.GenerateID(), AuctionID: "auction-demolition-1", UserID: "buyer3", UserName: "박건설", Amount: 31_000_000, BidTime: now.Add(-26 * time.Hour)},
	}
	for _, b := range bids {
		if err := repo.RecordBid(b); err != nil {
			utils.Fatal("seed: failed to record bid", map[string]any{"bid_id": b.ID, "error": err.Error()})
		}
	}
}
