package services

import (
	"context"
	"fmt"
	"strings"

	"stockanalysis/clients/alphavantage"
	"stockanalysis/clients/yahoo"
	"stockanalysis/types"

	"go.uber.org/zap"
)

// QuoteSource is one provider capable of fetching a quote by symbol. Each
// source applies its own symbol normalization.
type QuoteSource interface {
	Name() string
	FetchQuote(ctx context.Context, symbol string) (*types.Quote, error)
}

type QuoteServiceI interface {
	FetchQuote(ctx context.Context, symbol string) (*types.Quote, error)
}

type quoteService struct {
	sources []QuoteSource
}

// NewQuoteService builds a fallback chain over the given sources, tried
// strictly in order. No parallel race: the secondary source is rate limited
// and must not be consulted when the primary succeeds.
func NewQuoteService(sources ...QuoteSource) QuoteServiceI {
	return &quoteService{sources: sources}
}

var QuoteService QuoteServiceI = NewQuoteService(yahoo.NewClient(), alphavantage.NewClient())

// FetchQuote returns the first source's quote that succeeds, tagged with that
// source's name. When every source fails the combined error carries each
// source's failure reason so callers can tell them apart.
func (s *quoteService) FetchQuote(ctx context.Context, symbol string) (*types.Quote, error) {
	var failures []string
	for _, source := range s.sources {
		quote, err := source.FetchQuote(ctx, symbol)
		if err != nil {
			zap.L().Warn("quote source failed",
				zap.String("source", source.Name()),
				zap.String("symbol", symbol),
				zap.Error(err))
			failures = append(failures, fmt.Sprintf("%s: %v", source.Name(), err))
			continue
		}
		quote.DataSource = source.Name()
		zap.L().Info("fetched quote",
			zap.String("source", source.Name()),
			zap.String("symbol", quote.Symbol))
		return quote, nil
	}
	return nil, fmt.Errorf("all quote sources failed - %s", strings.Join(failures, ", "))
}
