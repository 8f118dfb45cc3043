package shopstore

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatPrice renders value with exactly two decimals, prefixed by the
// currency code: FormatPrice(19.9, "USD") == "USD 19.90".
func FormatPrice(value float64, currency string) string {
	// decimal panics on non-finite input.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return currency + " " + strconv.FormatFloat(value, 'f', 2, 64)
	}
	return currency + " " + decimal.NewFromFloat(value).StringFixed(2)
}
