package server

import (
	handler "github.com/she110ff/metalcat-sub002/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService handler.MarketServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(marketService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/result", auctionHandler.GetResultHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", auctionHandler.GetAuctionsByUserHandler)
	}

	return router
}
