package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonConfigs_AllValid(t *testing.T) {
	require.NoError(t, defaultSeasonConfig.Validate(), "default config")

	for dest, cfg := range destinationSeasonConfigs {
		assert.NoError(t, cfg.Validate(), "config for %s", dest)
	}
}

func TestSeasonConfigFor_Normalization(t *testing.T) {
	curated := SeasonConfigFor("chiang-mai")

	// Case and space variants resolve to the same curated config
	assert.Equal(t, curated, SeasonConfigFor("Chiang Mai"))
	assert.Equal(t, curated, SeasonConfigFor("CHIANG-MAI"))
}

func TestSeasonConfigFor_UnknownUsesDefault(t *testing.T) {
	assert.Equal(t, defaultSeasonConfig, SeasonConfigFor("atlantis"))
}

func TestSeasonConfigFor_PhuketLowSeasonMonths(t *testing.T) {
	cfg := SeasonConfigFor("phuket")

	// Rainy months are the cheap tier for the Andaman coast
	assert.Contains(t, cfg.Low.Months, "พฤษภาคม")
	assert.Contains(t, cfg.Low.Months, "มิถุนายน")
	assert.Contains(t, cfg.Low.Months, "กันยายน")
	assert.InDelta(t, 0.65, cfg.Low.PriceMultiplier.Min, 0.001)
}

func TestSeasonForMonth_Total(t *testing.T) {
	// Every month classifies into some band for every destination
	configs := append([]SeasonConfig{defaultSeasonConfig}, SeasonConfigFor("japan"), SeasonConfigFor("korea"))
	for _, cfg := range configs {
		for m := time.January; m <= time.December; m++ {
			band := cfg.SeasonForMonth(m)
			assert.Contains(t, []SeasonBand{SeasonLow, SeasonNormal, SeasonHigh}, band)
		}
	}
}

func TestCalendarSeason(t *testing.T) {
	tests := []struct {
		month time.Month
		want  SeasonBand
	}{
		{time.January, SeasonHigh},
		{time.February, SeasonHigh},
		{time.March, SeasonNormal},
		{time.April, SeasonNormal},
		{time.May, SeasonLow},
		{time.June, SeasonLow},
		{time.July, SeasonLow},
		{time.August, SeasonLow},
		{time.September, SeasonLow},
		{time.October, SeasonLow},
		{time.November, SeasonHigh},
		{time.December, SeasonHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalendarSeason(tt.month), "month %s", tt.month)
	}
}

func TestChartSeasonMultiplier(t *testing.T) {
	assert.InDelta(t, 0.75, ChartSeasonMultiplier(SeasonLow), 0.001)
	assert.InDelta(t, 1.0, ChartSeasonMultiplier(SeasonNormal), 0.001)
	assert.InDelta(t, 1.3, ChartSeasonMultiplier(SeasonHigh), 0.001)
}

func TestMultiplierRange_Mid(t *testing.T) {
	r := MultiplierRange{Min: 0.7, Max: 0.9}
	assert.InDelta(t, 0.8, r.Mid(), 0.001)
}

func TestSeasonConfig_ValidateRejectsGaps(t *testing.T) {
	cfg := SeasonConfig{
		Low:    BandConfig{Months: []string{"พฤษภาคม"}},
		Normal: BandConfig{Months: []string{"มีนาคม"}},
		High:   BandConfig{Months: []string{"มกราคม"}},
	}
	assert.Error(t, cfg.Validate())
}

func TestSeasonConfig_ValidateRejectsOverlap(t *testing.T) {
	cfg := defaultSeasonConfig
	cfg.Normal.Months = append([]string{"พฤษภาคม"}, cfg.Normal.Months...)
	assert.Error(t, cfg.Validate())
}

func TestSeasonDescription(t *testing.T) {
	for _, band := range SeasonBands {
		assert.NotEmpty(t, SeasonDescription(band))
	}
}
