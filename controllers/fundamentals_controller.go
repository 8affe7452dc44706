package controllers

import (
	"time"

	"stockanalysis/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FundamentalsControllerI interface {
	GetFundamentals(ctx *gin.Context)
}

type fundamentalsController struct{}

var FundamentalsController FundamentalsControllerI = &fundamentalsController{}

// GetFundamentals handles GET /api/fundamentals?ticker=INFY.NS. Callers are
// expected to supply the exchange suffix; a bare ticker is defaulted to NSE.
func (f *fundamentalsController) GetFundamentals(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	if ticker == "" {
		ctx.JSON(400, gin.H{"success": false, "error": "ticker is required"})
		return
	}

	fundamentals, err := services.FundamentalsService.FetchFundamentals(ctx.Request.Context(), ticker)
	if err != nil {
		zap.L().Error("error fetching fundamentals", zap.String("ticker", ticker), zap.Error(err))
		ctx.JSON(200, gin.H{
			"success":   false,
			"error":     err.Error(),
			"ticker":    ticker,
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(200, gin.H{
		"success":   true,
		"ticker":    ticker,
		"data":      fundamentals,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
