// Package currency converts catalog prices between KRW (the canonical stored
// unit) and USD for display. KRW amounts are integers and never lose
// precision; USD amounts are rounded to the nearest dollar.
package currency

import "math"

// FallbackRate is used when neither the environment override nor the
// settings table provides a usable KRW/USD rate.
const FallbackRate = 1400.0

// KrwToUsd returns round(priceKrw / rate). A non-positive rate falls back to
// FallbackRate so a misconfigured settings row can never divide by zero.
func KrwToUsd(priceKrw int64, rate float64) int {
	if rate <= 0 {
		rate = FallbackRate
	}
	return int(math.Round(float64(priceKrw) / rate))
}
