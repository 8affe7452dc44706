package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"stockanalysis/clients/http_client"
	"stockanalysis/types"
	"stockanalysis/utils/helpers"
)

const (
	defaultBaseURL = "https://www.alphavantage.co"
	requestTimeout = 30 * time.Second
)

// Client talks to the Alpha Vantage GLOBAL_QUOTE endpoint. It is the
// secondary quote source: rate-limited, keyed and only consulted when Yahoo
// Finance fails. The API key is read from ALPHAVANTAGE_API_KEY at call time.
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
	return "Alpha Vantage"
}

// FetchQuote fetches a quote for the symbol, normalized to Alpha Vantage's
// .BSE suffix. A response without the "Global Quote" envelope (no API key, or
// the rate limit was hit) is a failure.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*types.Quote, error) {
	symbol = helpers.NormalizeSymbol(symbol, helpers.AlphaVantageSuffixes, helpers.AlphaVantageDefaultSuffix)

	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", os.Getenv("ALPHAVANTAGE_API_KEY"))

	endpoint := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())
	resp, err := c.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching stock data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("error decoding quote response: %v", err)
	}

	raw, ok := body["Global Quote"]
	if !ok {
		return nil, fmt.Errorf("invalid response or API limit reached")
	}

	var quote map[string]string
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, fmt.Errorf("error decoding quote fields: %v", err)
	}
	if len(quote) == 0 {
		return nil, fmt.Errorf("empty quote returned for %s", symbol)
	}

	resolved := quote["01. symbol"]
	if resolved == "" {
		resolved = symbol
	}

	return &types.Quote{
		Symbol:           resolved,
		CurrentPrice:     parseFloat(quote["05. price"]),
		PreviousClose:    parseFloat(quote["08. previous close"]),
		Change:           helpers.Round2(parseFloat(quote["09. change"])),
		ChangePercent:    helpers.Round2(parseFloat(strings.TrimSuffix(quote["10. change percent"], "%"))),
		DayHigh:          parseFloat(quote["03. high"]),
		DayLow:           parseFloat(quote["04. low"]),
		Volume:           parseInt(quote["06. volume"]),
		LatestTradingDay: quote["07. latest trading day"],
	}, nil
}

// Alpha Vantage reports every numeric field as a string.
func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(value string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
