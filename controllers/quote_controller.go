package controllers

import (
	"time"

	"stockanalysis/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuoteControllerI interface {
	GetQuote(ctx *gin.Context)
}

type quoteController struct{}

var QuoteController QuoteControllerI = &quoteController{}

// GetQuote handles GET /api/quote?symbol=RELIANCE. The exchange suffix is
// optional; each provider in the fallback chain normalizes it. Provider
// failures come back as success=false in the envelope, never as transport
// errors.
func (q *quoteController) GetQuote(ctx *gin.Context) {
	symbol := ctx.Query("symbol")
	if symbol == "" {
		ctx.JSON(400, gin.H{"success": false, "error": "symbol is required"})
		return
	}

	quote, err := services.QuoteService.FetchQuote(ctx.Request.Context(), symbol)
	if err != nil {
		zap.L().Error("error fetching stock quote", zap.String("symbol", symbol), zap.Error(err))
		ctx.JSON(200, gin.H{
			"success":   false,
			"error":     err.Error(),
			"symbol":    symbol,
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(200, gin.H{
		"success":   true,
		"data":      quote,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
