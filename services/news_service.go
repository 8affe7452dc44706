package services

import (
	"context"
	"fmt"
	"sort"

	"stockanalysis/clients/googlenews"
	"stockanalysis/clients/yahoo"
	"stockanalysis/types"

	"go.uber.org/zap"
)

// nativeNewsSource is the ticker-keyed news list (Yahoo Finance).
type nativeNewsSource interface {
	News(ctx context.Context, ticker string) ([]types.NewsItem, error)
}

// searchFeedSource is the query-keyed syndication feed (Google News RSS).
type searchFeedSource interface {
	Search(ctx context.Context, query string) ([]types.NewsItem, error)
}

type NewsServiceI interface {
	FetchNews(ctx context.Context, ticker, stockName, query string, maxItems int) ([]types.NewsItem, error)
}

type newsService struct {
	native nativeNewsSource
	feed   searchFeedSource
}

func NewNewsService(native nativeNewsSource, feed searchFeedSource) NewsServiceI {
	return &newsService{native: native, feed: feed}
}

var NewsService NewsServiceI = NewNewsService(yahoo.NewClient(), googlenews.NewClient())

// FetchNews merges both sources' items, sorted by publication date
// descending, truncated to maxItems. Each source's success is tracked
// independently of how many items survived: an empty result with at least one
// source reporting success means "no news today" and is not an error, while
// an empty result with both sources down fails outright.
func (s *newsService) FetchNews(ctx context.Context, ticker, stockName, query string, maxItems int) ([]types.NewsItem, error) {
	combined := []types.NewsItem{}
	nativeOK := false
	feedOK := false

	items, err := s.native.News(ctx, ticker)
	if err != nil {
		zap.L().Error("failed to fetch Yahoo Finance news",
			zap.String("ticker", ticker), zap.Error(err))
	} else {
		combined = append(combined, items...)
		nativeOK = true
	}

	if query == "" {
		query = fmt.Sprintf("%s stock India", stockName)
	}
	entries, err := s.feed.Search(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch Google News",
			zap.String("query", query), zap.Error(err))
	} else {
		combined = append(combined, entries...)
		feedOK = true
	}

	if len(combined) == 0 && !nativeOK && !feedOK {
		return nil, fmt.Errorf("failed to retrieve news from both Yahoo Finance and Google News for %s", ticker)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Published.After(combined[j].Published)
	})

	// maxItems is passed through unclamped; values outside the useful range
	// simply yield the whole list.
	if maxItems > 0 && maxItems < len(combined) {
		combined = combined[:maxItems]
	}

	zap.L().Info("combined news items",
		zap.String("ticker", ticker), zap.Int("count", len(combined)))
	return combined, nil
}
