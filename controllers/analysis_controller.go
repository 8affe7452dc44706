package controllers

import (
	"strconv"

	"stockanalysis/services"

	"github.com/gin-gonic/gin"
)

type AnalysisControllerI interface {
	GetAnalysis(ctx *gin.Context)
}

type analysisController struct{}

var AnalysisController AnalysisControllerI = &analysisController{}

// GetAnalysis handles GET /api/analysis?ticker=TCS.NS&stockName=Tata+Consultancy+Services
// with optional includeNews (default true) and maxNews (default 5). The
// orchestrator itself never fails; partial failures are reported through the
// report's success flag and failed_components list.
func (a *analysisController) GetAnalysis(ctx *gin.Context) {
	ticker := ctx.Query("ticker")
	stockName := ctx.Query("stockName")
	if ticker == "" || stockName == "" {
		ctx.JSON(400, gin.H{"success": false, "error": "ticker and stockName are required"})
		return
	}

	includeNews, err := strconv.ParseBool(ctx.DefaultQuery("includeNews", "true"))
	if err != nil {
		ctx.JSON(400, gin.H{"success": false, "error": "invalid includeNews"})
		return
	}
	maxNews, err := strconv.Atoi(ctx.DefaultQuery("maxNews", "5"))
	if err != nil {
		ctx.JSON(400, gin.H{"success": false, "error": "invalid maxNews"})
		return
	}

	report := services.AnalysisService.Analyze(ctx.Request.Context(), ticker, stockName, includeNews, maxNews)
	ctx.JSON(200, report)
}
