package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stockanalysis/clients/http_client"
	"stockanalysis/types"
	"stockanalysis/utils/helpers"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	requestTimeout = 30 * time.Second

	// pubDateLayout is the timestamp format carried by Yahoo news payloads.
	pubDateLayout = "2006-01-02T15:04:05Z"
)

// Client talks to the Yahoo Finance public endpoints: the chart API for
// quotes, the search API for news and the quoteSummary API for fundamentals.
type Client struct {
	httpClient *http_client.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: http_client.New(requestTimeout),
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL points the client at an alternate host. Used by tests.
func NewClientWithBaseURL(baseURL string) *Client {
	client := NewClient()
	client.baseURL = baseURL
	return client
}

func (c *Client) Name() string {
	return "Yahoo Finance"
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice   float64 `json:"regularMarketPrice"`
				PreviousClose        float64 `json:"previousClose"`
				RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
				RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
				RegularMarketVolume  int64   `json:"regularMarketVolume"`
				RegularMarketTime    int64   `json:"regularMarketTime"`
			} `json:"meta"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

// FetchQuote fetches a real-time quote from the chart API. The symbol is
// normalized to an NSE/BSE suffix first; a payload-level chart.error is a
// failure even when the transport status is 200.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*types.Quote, error) {
	symbol = helpers.NormalizeSymbol(symbol, helpers.YahooSuffixes, helpers.YahooDefaultSuffix)

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))
	resp, err := c.httpClient.Get(ctx, endpoint, http_client.BrowserHeaders())
	if err != nil {
		return nil, fmt.Errorf("error fetching stock data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding chart response: %v", err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("API Error: %v", payload.Chart.Error)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data returned for %s", symbol)
	}

	meta := payload.Chart.Result[0].Meta
	change := helpers.Round2(meta.RegularMarketPrice - meta.PreviousClose)

	return &types.Quote{
		Symbol:        symbol,
		CurrentPrice:  meta.RegularMarketPrice,
		PreviousClose: meta.PreviousClose,
		Change:        change,
		ChangePercent: helpers.ChangePercent(change, meta.PreviousClose),
		DayHigh:       meta.RegularMarketDayHigh,
		DayLow:        meta.RegularMarketDayLow,
		Volume:        meta.RegularMarketVolume,
		Timestamp:     meta.RegularMarketTime,
	}, nil
}

type newsResponse struct {
	News []struct {
		Content struct {
			Title        string `json:"title"`
			PubDate      string `json:"pubDate"`
			CanonicalURL struct {
				URL string `json:"url"`
			} `json:"canonicalUrl"`
			ClickThroughURL struct {
				URL string `json:"url"`
			} `json:"clickThroughUrl"`
			Provider struct {
				DisplayName string `json:"displayName"`
			} `json:"provider"`
		} `json:"content"`
	} `json:"news"`
}

// News fetches the provider-native news list for a ticker. Items without a
// title or without a resolvable URL are skipped; the canonical URL is
// preferred over the click-through URL. An unparsable pubDate degrades to the
// zero time so the item sorts last by recency.
func (c *Client) News(ctx context.Context, ticker string) ([]types.NewsItem, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search?q=%s", c.baseURL, url.QueryEscape(ticker))
	resp, err := c.httpClient.Get(ctx, endpoint, http_client.BrowserHeaders())
	if err != nil {
		return nil, fmt.Errorf("error fetching news: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}

	var payload newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding news response: %v", err)
	}

	items := make([]types.NewsItem, 0, len(payload.News))
	for i, raw := range payload.News {
		content := raw.Content
		if content.Title == "" {
			zap.L().Warn("Yahoo Finance news item missing title, skipping", zap.Int("index", i))
			continue
		}

		link := content.CanonicalURL.URL
		if link == "" {
			link = content.ClickThroughURL.URL
		}
		if link == "" {
			zap.L().Warn("Yahoo Finance news item missing url, skipping",
				zap.Int("index", i), zap.String("title", content.Title))
			continue
		}

		publisher := content.Provider.DisplayName
		if publisher == "" {
			publisher = types.UnknownPublisher
		}

		var published time.Time
		if content.PubDate != "" {
			parsed, err := time.Parse(pubDateLayout, content.PubDate)
			if err != nil {
				zap.L().Warn("invalid timestamp in Yahoo Finance news item",
					zap.Int("index", i), zap.String("pubDate", content.PubDate), zap.Error(err))
			} else {
				published = parsed
			}
		}

		items = append(items, types.NewsItem{
			Title:     content.Title,
			Link:      link,
			Publisher: publisher,
			Published: published,
			Source:    types.NewsSourceYahoo,
		})
	}
	return items, nil
}
