package services

import (
	"context"
	"time"

	"stockanalysis/types"
	"stockanalysis/utils/helpers"

	"go.uber.org/zap"
)

type AnalysisServiceI interface {
	Analyze(ctx context.Context, ticker, stockName string, includeNews bool, maxNews int) *types.AnalysisReport
}

type analysisService struct {
	quotes       QuoteServiceI
	fundamentals FundamentalsServiceI
	news         NewsServiceI
}

func NewAnalysisService(quotes QuoteServiceI, fundamentals FundamentalsServiceI, news NewsServiceI) AnalysisServiceI {
	return &analysisService{quotes: quotes, fundamentals: fundamentals, news: news}
}

var AnalysisService AnalysisServiceI = NewAnalysisService(QuoteService, FundamentalsService, NewsService)

// componentOrder fixes the ordering of FailedComponents in the report.
var componentOrder = []string{"quote", "fundamentals", "news"}

// Analyze composes the quote chain, the fundamentals collector and, when
// requested, the news aggregator into one report. Every component is always
// attempted; a failing component is stored as a failed sub-result and never
// aborts its siblings. There is no error return: partial and total failures
// are reported inside the report itself.
func (s *analysisService) Analyze(ctx context.Context, ticker, stockName string, includeNews bool, maxNews int) *types.AnalysisReport {
	report := &types.AnalysisReport{
		Success:    true,
		Ticker:     ticker,
		StockName:  stockName,
		Timestamp:  time.Now().Format(time.RFC3339),
		Components: make(map[string]types.ComponentResult),
	}

	// The quote chain does its own suffix normalization per provider.
	quote, err := s.quotes.FetchQuote(ctx, helpers.StripExchangeSuffix(ticker))
	if err != nil {
		zap.L().Error("analysis: quote failed", zap.String("ticker", ticker), zap.Error(err))
		report.Components["quote"] = types.ComponentResult{Success: false, Error: err.Error()}
	} else {
		report.Components["quote"] = types.ComponentResult{Success: true, Data: quote}
	}

	fundamentals, err := s.fundamentals.FetchFundamentals(ctx, ticker)
	if err != nil {
		zap.L().Error("analysis: fundamentals failed", zap.String("ticker", ticker), zap.Error(err))
		report.Components["fundamentals"] = types.ComponentResult{Success: false, Error: err.Error()}
	} else {
		report.Components["fundamentals"] = types.ComponentResult{Success: true, Data: fundamentals}
	}

	if includeNews {
		news, err := s.news.FetchNews(ctx, ticker, stockName, "", maxNews)
		if err != nil {
			zap.L().Error("analysis: news failed", zap.String("ticker", ticker), zap.Error(err))
			report.Components["news"] = types.ComponentResult{Success: false, Error: err.Error()}
		} else {
			report.Components["news"] = types.ComponentResult{Success: true, Data: news}
		}
	}

	for _, name := range componentOrder {
		if result, ok := report.Components[name]; ok && !result.Success {
			report.Success = false
			report.FailedComponents = append(report.FailedComponents, name)
		}
	}
	if !report.Success {
		zap.L().Warn("analysis completed with failures",
			zap.String("ticker", ticker),
			zap.Strings("failed_components", report.FailedComponents))
	}
	return report
}
