// Package domain contains the core business entities and pricing rules for
// the flight price insight service. All lookup tables are static, read-only,
// and safe for concurrent use; every function in this package is pure.
package domain

// DefaultBasePrice is the reference round-trip fare in THB for routes that
// have no entry in the base-price table.
const DefaultBasePrice = 2500

// referenceTripDays is the trip length the base-price table is calibrated
// against. Longer trips scale up, shorter trips scale down.
const referenceTripDays = 5

// durationAdjustmentRate is the per-day linear fare adjustment around the
// reference trip length.
const durationAdjustmentRate = 0.05

// routeBasePrices holds reference round-trip base prices in THB between
// Thai provinces. Lookups are treated as symmetric, so each pair is stored
// once. Prices reflect distance and route popularity.
var routeBasePrices = map[string]map[string]float64{
	"bangkok": {
		"chiang-mai":         3500,
		"phuket":             3200,
		"krabi":              3000,
		"samui":              2800,
		"pattaya":            1500,
		"hat-yai":            2500,
		"udon-thani":         2800,
		"khon-kaen":          2600,
		"nakhon-ratchasima":  2000,
		"surat-thani":        2700,
		"trang":              2900,
		"surin":              2400,
		"ubon-ratchathani":   3000,
		"nakhon-sawan":       1800,
		"lampang":            3200,
		"mae-hong-son":       3800,
		"nan":                3400,
		"phitsanulok":        2500,
		"sukhothai":          2700,
	},
}

// BasePrice returns the reference round-trip base price in THB for a route,
// scaled linearly by the average trip duration in days.
//
// The lookup tries the direct ordering first, then the reverse ordering.
// Unknown pairs fall back to DefaultBasePrice; an identical origin and
// destination yields zero. No floor is applied to the duration adjustment,
// so very short trips price below the table value.
func BasePrice(origin, destination string, avgDurationDays float64) float64 {
	base, ok := lookupRoute(routeBasePrices, origin, destination)
	if !ok {
		if origin == destination {
			base = 0
		} else {
			base = DefaultBasePrice
		}
	}

	return base * (1 + (avgDurationDays-referenceTripDays)*durationAdjustmentRate)
}

// lookupRoute looks up a value for an unordered (origin, destination) pair,
// trying both orderings before reporting a miss.
func lookupRoute(table map[string]map[string]float64, origin, destination string) (float64, bool) {
	if inner, ok := table[origin]; ok {
		if v, ok := inner[destination]; ok {
			return v, true
		}
	}
	if inner, ok := table[destination]; ok {
		if v, ok := inner[origin]; ok {
			return v, true
		}
	}
	return 0, false
}
