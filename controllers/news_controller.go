package controllers

import (
	"strconv"
	"time"

	"stockanalysis/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NewsControllerI interface {
	GetNews(ctx *gin.Context)
}

type newsController struct{}

var NewsController NewsControllerI = &newsController{}

// GetNews handles GET /api/news?ticker=INFY.NS&stockName=Infosys with
// optional query and maxItems (default 10). maxItems is deliberately not
// clamped to the documented 1-50 range; out-of-range values just change how
// much of the merged list survives truncation.
func (n *newsController) GetNews(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	stockName := ctx.Query("stockName")
	if ticker == "" || stockName == "" {
		ctx.JSON(400, gin.H{"success": false, "error": "ticker and stockName are required"})
		return
	}

	maxItemsStr := ctx.DefaultQuery("maxItems", "10")
	maxItems, err := strconv.Atoi(maxItemsStr)
	if err != nil {
		ctx.JSON(400, gin.H{"success": false, "error": "invalid maxItems"})
		return
	}
	query := ctx.Query("query")

	news, err := services.NewsService.FetchNews(ctx.Request.Context(), ticker, stockName, query, maxItems)
	if err != nil {
		zap.L().Error("error fetching news",
			zap.String("ticker", ticker), zap.String("stockName", stockName), zap.Error(err))
		ctx.JSON(200, gin.H{
			"success":    false,
			"error":      err.Error(),
			"ticker":     ticker,
			"stock_name": stockName,
			"timestamp":  time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(200, gin.H{
		"success":    true,
		"ticker":     ticker,
		"stock_name": stockName,
		"news_count": len(news),
		"data":       news,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
