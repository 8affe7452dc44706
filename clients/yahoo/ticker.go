package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stockanalysis/clients/http_client"
)

// quoteSummary modules backing each fundamentals sub-section.
const (
	moduleInfo           = "assetProfile"
	moduleFinancials     = "incomeStatementHistory"
	moduleBalanceSheet   = "balanceSheetHistory"
	moduleCashflow       = "cashflowStatementHistory"
	moduleSustainability = "esgScores"
)

// Ticker is a handle for fundamentals lookups on a single symbol. Each
// accessor issues an independent quoteSummary request; accessors fail
// independently of one another.
type Ticker struct {
	symbol string
	client *Client
}

// NewTicker validates the symbol and returns a handle for it. This is the
// only place the fundamentals path can fail before any sub-section fetch.
func (c *Client) NewTicker(symbol string) (*Ticker, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, fmt.Errorf("symbol must not be empty")
	}
	return &Ticker{symbol: symbol, client: c}, nil
}

func (t *Ticker) Symbol() string {
	return t.symbol
}

func (t *Ticker) Info(ctx context.Context) (map[string]interface{}, error) {
	return t.module(ctx, moduleInfo)
}

func (t *Ticker) Financials(ctx context.Context) (map[string]interface{}, error) {
	return t.module(ctx, moduleFinancials)
}

func (t *Ticker) BalanceSheet(ctx context.Context) (map[string]interface{}, error) {
	return t.module(ctx, moduleBalanceSheet)
}

func (t *Ticker) Cashflow(ctx context.Context) (map[string]interface{}, error) {
	return t.module(ctx, moduleCashflow)
}

func (t *Ticker) Sustainability(ctx context.Context) (map[string]interface{}, error) {
	return t.module(ctx, moduleSustainability)
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]map[string]interface{} `json:"result"`
		Error  interface{}                         `json:"error"`
	} `json:"quoteSummary"`
}

func (t *Ticker) module(ctx context.Context, module string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		t.client.baseURL, url.PathEscape(t.symbol), url.QueryEscape(module))

	resp, err := t.client.httpClient.Get(ctx, endpoint, http_client.BrowserHeaders())
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %v", module, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}

	var payload quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding %s response: %v", module, err)
	}
	if payload.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("API Error: %v", payload.QuoteSummary.Error)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return nil, nil
	}
	return payload.QuoteSummary.Result[0][module], nil
}
