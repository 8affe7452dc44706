package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockanalysis/types"

	"github.com/stretchr/testify/require"
)

func chartBody(price, previousClose, high, low float64, volume, marketTime int64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{
		"regularMarketPrice":%v,"previousClose":%v,
		"regularMarketDayHigh":%v,"regularMarketDayLow":%v,
		"regularMarketVolume":%d,"regularMarketTime":%d}}],"error":null}}`,
		price, previousClose, high, low, volume, marketTime)
}

func TestFetchQuote(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, chartBody(2500, 2450, 2520, 2440, 1000000, 1717200000))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	quote, err := client.FetchQuote(context.Background(), "RELIANCE")
	require.NoError(t, err)

	require.Equal(t, "/v8/finance/chart/RELIANCE.NS", gotPath)
	require.NotEmpty(t, gotUserAgent, "chart endpoint rejects unheaded requests")

	require.Equal(t, "RELIANCE.NS", quote.Symbol)
	require.Equal(t, 2500.0, quote.CurrentPrice)
	require.Equal(t, 2450.0, quote.PreviousClose)
	require.Equal(t, 50.0, quote.Change)
	require.Equal(t, 2.04, quote.ChangePercent)
	require.Equal(t, int64(1717200000), quote.Timestamp)
	require.Empty(t, quote.LatestTradingDay)
}

func TestFetchQuote_ZeroPreviousClose(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartBody(100, 0, 101, 99, 10, 0))
	}))
	defer server.Close()

	quote, err := NewClientWithBaseURL(server.URL).FetchQuote(context.Background(), "NEWIPO")
	require.NoError(t, err)
	require.Equal(t, 0.0, quote.ChangePercent, "previous_close of 0 must not divide by zero")
	require.Equal(t, 100.0, quote.Change)
}

func TestFetchQuote_PayloadError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A 200 transport status can still carry an embedded error object.
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	}))
	defer server.Close()

	_, err := NewClientWithBaseURL(server.URL).FetchQuote(context.Background(), "BOGUS")
	require.Error(t, err)
	require.Contains(t, err.Error(), "API Error")
}

func TestFetchQuote_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewClientWithBaseURL(server.URL).FetchQuote(context.Background(), "RELIANCE")
	require.Error(t, err)
	require.Contains(t, err.Error(), "HTTP Error: 429")
}

func TestFetchQuote_KeepsRecognizedSuffix(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, chartBody(1, 1, 1, 1, 1, 1))
	}))
	defer server.Close()

	_, err := NewClientWithBaseURL(server.URL).FetchQuote(context.Background(), "HDFCBANK.BO")
	require.NoError(t, err)
	require.Equal(t, "/v8/finance/chart/HDFCBANK.BO", gotPath)
}

func TestNews(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"news":[
			{"content":{"title":"Quarterly results beat estimates","pubDate":"2024-05-31T06:00:00Z",
				"canonicalUrl":{"url":"https://example.com/canonical"},
				"clickThroughUrl":{"url":"https://example.com/click"},
				"provider":{"displayName":"Mint"}}},
			{"content":{"title":"","pubDate":"2024-05-30T06:00:00Z",
				"canonicalUrl":{"url":"https://example.com/untitled"}}},
			{"content":{"title":"No link at all","pubDate":"2024-05-30T06:00:00Z"}},
			{"content":{"title":"Click-through only","pubDate":"not-a-date",
				"clickThroughUrl":{"url":"https://example.com/fallback"}}}
		]}`)
	}))
	defer server.Close()

	items, err := NewClientWithBaseURL(server.URL).News(context.Background(), "INFY.NS")
	require.NoError(t, err)
	require.Len(t, items, 2, "untitled and link-less items are dropped")

	first := items[0]
	require.Equal(t, "Quarterly results beat estimates", first.Title)
	require.Equal(t, "https://example.com/canonical", first.Link, "canonical URL preferred over click-through")
	require.Equal(t, "Mint", first.Publisher)
	require.Equal(t, time.Date(2024, 5, 31, 6, 0, 0, 0, time.UTC), first.Published)
	require.Equal(t, types.NewsSourceYahoo, first.Source)

	second := items[1]
	require.Equal(t, "https://example.com/fallback", second.Link)
	require.Equal(t, types.UnknownPublisher, second.Publisher)
	require.True(t, second.Published.IsZero(), "unparsable pubDate degrades to the zero time")
}

func TestNews_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClientWithBaseURL(server.URL).News(context.Background(), "INFY.NS")
	require.Error(t, err)
}
