package helpers

import (
	"math"
	"strings"
)

// Suffix conventions per provider. Yahoo Finance style endpoints accept NSE
// and BSE suffixes and default to NSE; Alpha Vantage uses its own BSE suffix
// for Indian listings.
var (
	YahooSuffixes             = []string{".NS", ".BO"}
	YahooDefaultSuffix        = ".NS"
	AlphaVantageSuffixes      = []string{".BSE"}
	AlphaVantageDefaultSuffix = ".BSE"
)

// NormalizeSymbol returns the symbol unchanged when it already carries one of
// the recognized exchange suffixes, otherwise appends the provider's default
// suffix. Total over string input; no error path.
func NormalizeSymbol(symbol string, recognized []string, defaultSuffix string) string {
	for _, suffix := range recognized {
		if strings.HasSuffix(symbol, suffix) {
			return symbol
		}
	}
	return symbol + defaultSuffix
}

// StripExchangeSuffix removes a trailing NSE/BSE suffix so a downstream
// consumer can apply its own normalization.
func StripExchangeSuffix(ticker string) string {
	for _, suffix := range []string{".NS", ".BO"} {
		if strings.HasSuffix(ticker, suffix) {
			return strings.TrimSuffix(ticker, suffix)
		}
	}
	return ticker
}

// Round2 rounds to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// ChangePercent computes the percentage change from previousClose to the
// current change, rounded to two decimals. Returns 0 when previousClose is 0
// instead of dividing by zero.
func ChangePercent(change, previousClose float64) float64 {
	if previousClose == 0 {
		return 0
	}
	return Round2(change / previousClose * 100)
}
