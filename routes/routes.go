package routes

import (
	"stockanalysis/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	v1 := r.Group("/api")

	{
		v1.GET("/quote", controllers.QuoteController.GetQuote)
		v1.GET("/fundamentals", controllers.FundamentalsController.GetFundamentals)
		v1.GET("/news", controllers.NewsController.GetNews)
		v1.GET("/analysis", controllers.AnalysisController.GetAnalysis)
		v1.GET("/article", controllers.ArticleController.GetArticle)
		v1.GET("/stocks/popular", controllers.StockController.GetPopularStocks)
		v1.GET("/keepServerRunning", controllers.HealthController.IsRunning)
	}
}
