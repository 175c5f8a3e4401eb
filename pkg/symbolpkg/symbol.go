// Package symbolpkg provides common crypto asset symbol functionality for apps.
package symbolpkg

// Constants for all supported crypto asset symbols.
const (
	BTC  = "BTC"
	ETH  = "ETH"
	USDT = "USDT"
	SOL  = "SOL"
	TON  = "TON"
)

// SupportedSymbols holds all the supported crypto asset symbols.
var SupportedSymbols = []string{
	BTC,
	ETH,
	USDT,
	SOL,
	TON,
}

// IsSupportedSymbol returns true if the symbol is supported.
func IsSupportedSymbol(symbol string) bool {
	for _, s := range SupportedSymbols {
		if s == symbol {
			return true
		}
	}

	return false
}
