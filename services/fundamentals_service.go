package services

import (
	"context"
	"fmt"

	"stockanalysis/clients/yahoo"
	"stockanalysis/types"
	"stockanalysis/utils/helpers"

	"go.uber.org/zap"
)

// FundamentalsSource exposes the five independent fundamentals accessors of
// one ticker. Accessors fail independently; a failure in one must never
// suppress the others.
type FundamentalsSource interface {
	Info(ctx context.Context) (map[string]interface{}, error)
	Financials(ctx context.Context) (map[string]interface{}, error)
	BalanceSheet(ctx context.Context) (map[string]interface{}, error)
	Cashflow(ctx context.Context) (map[string]interface{}, error)
	Sustainability(ctx context.Context) (map[string]interface{}, error)
}

// FundamentalsFactory builds a FundamentalsSource for a normalized ticker.
type FundamentalsFactory func(ticker string) (FundamentalsSource, error)

type FundamentalsServiceI interface {
	FetchFundamentals(ctx context.Context, ticker string) (types.Fundamentals, error)
}

type fundamentalsService struct {
	newSource FundamentalsFactory
}

func NewFundamentalsService(factory FundamentalsFactory) FundamentalsServiceI {
	return &fundamentalsService{newSource: factory}
}

var FundamentalsService FundamentalsServiceI = NewFundamentalsService(func(ticker string) (FundamentalsSource, error) {
	return yahoo.NewClient().NewTicker(ticker)
})

// FetchFundamentals collects the five sub-sections for the ticker. Each
// sub-section that errors or comes back empty is stored as an empty map and
// the rest are still fetched; emptiness is not a failure. The only error path
// is a ticker handle that cannot be constructed at all.
func (s *fundamentalsService) FetchFundamentals(ctx context.Context, ticker string) (types.Fundamentals, error) {
	ticker = helpers.NormalizeSymbol(ticker, helpers.YahooSuffixes, helpers.YahooDefaultSuffix)

	source, err := s.newSource(ticker)
	if err != nil {
		return nil, fmt.Errorf("unexpected error fetching fundamentals for %s: %v", ticker, err)
	}

	sections := []struct {
		key   string
		fetch func(context.Context) (map[string]interface{}, error)
	}{
		{"info", source.Info},
		{"financials", source.Financials},
		{"balance_sheet", source.BalanceSheet},
		{"cashflow", source.Cashflow},
		{"sustainability", source.Sustainability},
	}

	data := types.Fundamentals{}
	for _, section := range sections {
		payload, err := section.fetch(ctx)
		if err != nil {
			zap.L().Warn("failed to fetch fundamentals section",
				zap.String("ticker", ticker),
				zap.String("section", section.key),
				zap.Error(err))
			data[section.key] = map[string]interface{}{}
			continue
		}
		if len(payload) == 0 {
			zap.L().Warn("fundamentals section is empty",
				zap.String("ticker", ticker),
				zap.String("section", section.key))
			data[section.key] = map[string]interface{}{}
			continue
		}
		data[section.key] = payload
	}
	return data, nil
}
