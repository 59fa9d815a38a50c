package domain

// DefaultAirlineName is the display name returned when no airlines are
// selected and the engine needs a fallback carrier for a price quote.
const DefaultAirlineName = "Thai Airways"

// DefaultAirlineFare is the base fare anchor in THB for airlines without a
// dedicated entry in the fare table.
const DefaultAirlineFare = 3000

// airlineNames maps internal airline identifiers to display labels.
var airlineNames = map[string]string{
	"thai-airways":    "Thai Airways",
	"thai-airasia":    "Thai AirAsia",
	"thai-lion-air":   "Thai Lion Air",
	"thai-vietjet":    "Thai Vietjet Air",
	"bangkok-airways": "Bangkok Airways",
	"nok-air":         "Nok Air",
}

// airlineBaseFares holds each airline's flat base-price anchor in THB.
// Full-service carriers anchor higher than budget carriers.
var airlineBaseFares = map[string]float64{
	"thai-airways":    4000,
	"bangkok-airways": 3800,
	"thai-airasia":    2500,
	"thai-lion-air":   2300,
	"thai-vietjet":    2400,
	"nok-air":         2200,
}

// airlineRouteMultipliers scales an airline's fare anchor by route distance.
// Routes without an entry use a multiplier of 1.0; lookups are symmetric.
var airlineRouteMultipliers = map[string]map[string]float64{
	"bangkok": {
		"chiang-mai": 1.0,
		"phuket":     0.95,
		"hat-yai":    0.9,
		"udon-thani": 0.85,
	},
}

// airlineOrder fixes the enumeration order of the known carriers. Season
// summaries iterate this list, so the order is part of the deterministic
// output contract.
var airlineOrder = []string{
	"thai-airways",
	"thai-airasia",
	"thai-lion-air",
	"thai-vietjet",
	"bangkok-airways",
	"nok-air",
}

// AirlineFare returns the base fare in THB for a route flown by the given
// airline: the airline's anchor price scaled by the route multiplier.
func AirlineFare(origin, destination, airlineID string) float64 {
	base, ok := airlineBaseFares[airlineID]
	if !ok {
		base = DefaultAirlineFare
	}

	multiplier, ok := lookupRoute(airlineRouteMultipliers, origin, destination)
	if !ok {
		multiplier = 1.0
	}

	return base * multiplier
}

// AirlineDisplayName returns the display label for an airline identifier.
// Unknown identifiers pass through unchanged.
func AirlineDisplayName(airlineID string) string {
	if name, ok := airlineNames[airlineID]; ok {
		return name
	}
	return airlineID
}

// AllAirlineIDs returns the identifiers of all known carriers in their
// fixed enumeration order. The caller owns the returned slice.
func AllAirlineIDs() []string {
	ids := make([]string, len(airlineOrder))
	copy(ids, airlineOrder)
	return ids
}

// KnownAirline reports whether the identifier belongs to a known carrier.
func KnownAirline(airlineID string) bool {
	_, ok := airlineNames[airlineID]
	return ok
}
