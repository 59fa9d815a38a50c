package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirlineFare(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		airline     string
		want        float64
	}{
		{"full service on reference route", "bangkok", "chiang-mai", "thai-airways", 4000},
		{"budget carrier on reference route", "bangkok", "chiang-mai", "nok-air", 2200},
		{"route multiplier applies", "bangkok", "phuket", "thai-airways", 4000 * 0.95},
		{"reverse route uses same multiplier", "phuket", "bangkok", "thai-airways", 4000 * 0.95},
		{"unknown route keeps anchor fare", "chiang-mai", "krabi", "thai-airways", 4000},
		{"unknown airline uses default anchor", "bangkok", "chiang-mai", "some-charter", DefaultAirlineFare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AirlineFare(tt.origin, tt.destination, tt.airline)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestAirlineDisplayName(t *testing.T) {
	assert.Equal(t, "Thai Airways", AirlineDisplayName("thai-airways"))
	assert.Equal(t, "Nok Air", AirlineDisplayName("nok-air"))

	// Unknown identifiers pass through
	assert.Equal(t, "some-charter", AirlineDisplayName("some-charter"))
}

func TestAllAirlineIDs(t *testing.T) {
	ids := AllAirlineIDs()

	assert.Len(t, ids, 6)
	assert.Equal(t, "thai-airways", ids[0])

	// Caller owns the slice; mutation must not leak into later calls
	ids[0] = "mutated"
	assert.Equal(t, "thai-airways", AllAirlineIDs()[0])
}

func TestKnownAirline(t *testing.T) {
	assert.True(t, KnownAirline("thai-vietjet"))
	assert.False(t, KnownAirline("some-charter"))
}
