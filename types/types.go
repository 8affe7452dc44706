package types

import "time"

// Quote is the unified shape returned by every quote source. Change and
// ChangePercent are derived from CurrentPrice and PreviousClose, rounded to
// two decimals; ChangePercent is 0 when PreviousClose is 0.
//
// Exactly one freshness marker is set depending on the source: Yahoo Finance
// reports a unix timestamp of the last market update, Alpha Vantage only
// reports the trading day. The two are kept separate rather than coerced into
// one format so callers can judge freshness per source.
type Quote struct {
	Symbol           string  `json:"symbol"`
	CurrentPrice     float64 `json:"current_price"`
	PreviousClose    float64 `json:"previous_close"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
	DayHigh          float64 `json:"day_high"`
	DayLow           float64 `json:"day_low"`
	Volume           int64   `json:"volume"`
	Timestamp        int64   `json:"timestamp,omitempty"`
	LatestTradingDay string  `json:"latest_trading_day,omitempty"`
	DataSource       string  `json:"data_source"`
}

// UnknownPublisher is the sentinel used when a news item carries no
// publisher information.
const UnknownPublisher = "Unknown"

// News source tags.
const (
	NewsSourceYahoo  = "Yahoo Finance"
	NewsSourceGoogle = "Google News"
)

// NewsItem is a single normalized news entry. Items without a title or a
// resolvable link are dropped at the client layer before they ever reach this
// shape. A zero Published means the source's date could not be parsed, which
// sorts the item last when ordering by recency.
type NewsItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Publisher string    `json:"publisher"`
	Published time.Time `json:"published"`
	Source    string    `json:"source"`
}

// Fundamentals maps the five fixed sub-sections (info, financials,
// balance_sheet, cashflow, sustainability) to their raw payloads. An empty
// map for a key means that sub-section was unavailable, not that the call
// failed.
type Fundamentals map[string]map[string]interface{}

// FundamentalsKeys lists the sub-sections every Fundamentals result carries.
var FundamentalsKeys = []string{"info", "financials", "balance_sheet", "cashflow", "sustainability"}

// ComponentResult holds the outcome of one sub-component of an analysis.
type ComponentResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AnalysisReport is the combined output of the analysis orchestrator.
// Success is true only when every present component succeeded; when it is
// false FailedComponents names exactly the components that failed.
type AnalysisReport struct {
	Success          bool                       `json:"success"`
	Ticker           string                     `json:"ticker"`
	StockName        string                     `json:"stock_name"`
	Timestamp        string                     `json:"timestamp"`
	Components       map[string]ComponentResult `json:"data"`
	FailedComponents []string                   `json:"failed_components,omitempty"`
}

// Article is the readable content extracted from a news article page.
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PopularIndianStocks maps frequently requested NSE tickers to company names.
// Served as a discovery aid for upstream agents.
var PopularIndianStocks = map[string]string{
	"RELIANCE.NS":   "Reliance Industries",
	"TCS.NS":        "Tata Consultancy Services",
	"INFY.NS":       "Infosys",
	"HDFCBANK.NS":   "HDFC Bank",
	"ICICIBANK.NS":  "ICICI Bank",
	"HINDUNILVR.NS": "Hindustan Unilever",
	"ITC.NS":        "ITC Limited",
	"SBIN.NS":       "State Bank of India",
	"BHARTIARTL.NS": "Bharti Airtel",
	"KOTAKBANK.NS":  "Kotak Mahindra Bank",
}
