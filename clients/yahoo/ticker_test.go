package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTicker_EmptySymbol(t *testing.T) {
	t.Parallel()

	_, err := NewClient().NewTicker("   ")
	require.Error(t, err)
}

func TestTickerModules(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		module := r.URL.Query().Get("modules")
		switch module {
		case "assetProfile":
			fmt.Fprintf(w, `{"quoteSummary":{"result":[{"assetProfile":{"sector":"Technology","country":"India"}}],"error":null}}`)
		case "esgScores":
			// Sustainability data is missing for most Indian listings.
			fmt.Fprintf(w, `{"quoteSummary":{"result":[],"error":null}}`)
		case "incomeStatementHistory":
			w.WriteHeader(http.StatusNotFound)
		default:
			fmt.Fprintf(w, `{"quoteSummary":{"result":[{"%s":{"maxAge":1}}],"error":null}}`, module)
		}
	}))
	defer server.Close()

	ticker, err := NewClientWithBaseURL(server.URL).NewTicker("INFY.NS")
	require.NoError(t, err)
	require.Equal(t, "INFY.NS", ticker.Symbol())

	info, err := ticker.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Technology", info["sector"])

	sustainability, err := ticker.Sustainability(context.Background())
	require.NoError(t, err)
	require.Empty(t, sustainability, "missing module comes back empty, not as an error")

	_, err = ticker.Financials(context.Background())
	require.Error(t, err)

	balanceSheet, err := ticker.BalanceSheet(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, balanceSheet)

	cashflow, err := ticker.Cashflow(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cashflow)
}
