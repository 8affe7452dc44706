package helpers

import "testing"

func TestNormalizeSymbol_AlreadySuffixedNSE(t *testing.T) {
	result := NormalizeSymbol("INFY.NS", YahooSuffixes, YahooDefaultSuffix)
	if result != "INFY.NS" {
		t.Errorf("Expected INFY.NS, got %v", result)
	}
}

func TestNormalizeSymbol_AlreadySuffixedBSE(t *testing.T) {
	result := NormalizeSymbol("HDFCBANK.BO", YahooSuffixes, YahooDefaultSuffix)
	if result != "HDFCBANK.BO" {
		t.Errorf("Expected HDFCBANK.BO, got %v", result)
	}
}

func TestNormalizeSymbol_AppendsDefault(t *testing.T) {
	result := NormalizeSymbol("RELIANCE", YahooSuffixes, YahooDefaultSuffix)
	if result != "RELIANCE.NS" {
		t.Errorf("Expected RELIANCE.NS, got %v", result)
	}
}

func TestNormalizeSymbol_AppendsDefaultOnce(t *testing.T) {
	result := NormalizeSymbol(NormalizeSymbol("TCS", YahooSuffixes, YahooDefaultSuffix), YahooSuffixes, YahooDefaultSuffix)
	if result != "TCS.NS" {
		t.Errorf("Expected TCS.NS, got %v", result)
	}
}

func TestNormalizeSymbol_AlphaVantage(t *testing.T) {
	result := NormalizeSymbol("TCS", AlphaVantageSuffixes, AlphaVantageDefaultSuffix)
	if result != "TCS.BSE" {
		t.Errorf("Expected TCS.BSE, got %v", result)
	}
	result = NormalizeSymbol("TCS.BSE", AlphaVantageSuffixes, AlphaVantageDefaultSuffix)
	if result != "TCS.BSE" {
		t.Errorf("Expected TCS.BSE, got %v", result)
	}
}

func TestStripExchangeSuffix(t *testing.T) {
	if result := StripExchangeSuffix("INFY.NS"); result != "INFY" {
		t.Errorf("Expected INFY, got %v", result)
	}
	if result := StripExchangeSuffix("INFY.BO"); result != "INFY" {
		t.Errorf("Expected INFY, got %v", result)
	}
	if result := StripExchangeSuffix("INFY"); result != "INFY" {
		t.Errorf("Expected INFY, got %v", result)
	}
}

func TestRound2(t *testing.T) {
	if result := Round2(2.0408163); result != 2.04 {
		t.Errorf("Expected 2.04, got %v", result)
	}
	if result := Round2(-1.005); result != -1.0 {
		t.Errorf("Expected -1.0, got %v", result)
	}
}

func TestChangePercent_ZeroPreviousClose(t *testing.T) {
	if result := ChangePercent(50, 0); result != 0 {
		t.Errorf("Expected 0, got %v", result)
	}
}

func TestChangePercent(t *testing.T) {
	if result := ChangePercent(50, 2450); result != 2.04 {
		t.Errorf("Expected 2.04, got %v", result)
	}
}
