package controllers

import (
	"time"

	"stockanalysis/types"

	"github.com/gin-gonic/gin"
)

type StockControllerI interface {
	GetPopularStocks(ctx *gin.Context)
}

type stockController struct{}

var StockController StockControllerI = &stockController{}

// GetPopularStocks handles GET /api/stocks/popular, a static reference list
// of frequently requested NSE tickers for upstream agents that need symbol
// discovery.
func (s *stockController) GetPopularStocks(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"success":   true,
		"count":     len(types.PopularIndianStocks),
		"data":      types.PopularIndianStocks,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
