// Package format renders raw chain values as display strings.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ShortenAddress truncates an address to its first and last n characters
// joined by an ellipsis. Addresses at or below 2n characters are returned
// unchanged.
func ShortenAddress(address string, n int) string {
	if n <= 0 || len(address) <= 2*n {
		return address
	}
	return address[:n] + "..." + address[len(address)-n:]
}

// FormatNumber renders a value with a magnitude suffix and the given
// number of decimals: FormatNumber(1500, 2) -> "1.50K",
// FormatNumber(2500000, 2) -> "2.50M". Values under a thousand keep the
// decimals without a suffix: FormatNumber(999, 2) -> "999.00".
func FormatNumber(v float64, decimals int) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.*fB", decimals, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.*fM", decimals, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.*fK", decimals, v/1e3)
	default:
		return fmt.Sprintf("%.*f", decimals, v)
	}
}

// FormatCurrency renders an amount in the given ISO 4217 currency with
// locale-aware symbol and digit grouping. Unknown codes fall back to USD.
func FormatCurrency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// FormatPercent renders a signed percentage with two decimals. Zero and
// positive values carry an explicit plus sign.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatTimeAgo renders the elapsed time since a millisecond timestamp as
// a coarse relative string ("42s ago", "3m ago", "5h ago", "12d ago").
func FormatTimeAgo(timestampMillis int64) string {
	elapsed := time.Since(time.UnixMilli(timestampMillis))
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%ds ago", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}
