package controllers

import (
	"time"

	"stockanalysis/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArticleControllerI interface {
	GetArticle(ctx *gin.Context)
}

type articleController struct{}

var ArticleController ArticleControllerI = &articleController{}

// GetArticle handles GET /api/article?url=... and returns the readable text
// of a news article, typically one of the links returned by /api/news.
func (a *articleController) GetArticle(ctx *gin.Context) {
	rawURL := ctx.Query("url")
	if rawURL == "" {
		ctx.JSON(400, gin.H{"success": false, "error": "url is required"})
		return
	}

	article, err := services.ArticleService.Scrape(ctx.Request.Context(), rawURL)
	if err != nil {
		zap.L().Error("error scraping article", zap.String("url", rawURL), zap.Error(err))
		ctx.JSON(200, gin.H{
			"success":   false,
			"error":     err.Error(),
			"url":       rawURL,
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(200, gin.H{
		"success":   true,
		"data":      article,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
