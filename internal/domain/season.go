package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

// SeasonBand is one of the three demand/price tiers assigned to calendar
// months for a destination.
type SeasonBand string

// The three season bands, in canonical enumeration order.
const (
	SeasonLow    SeasonBand = "low"
	SeasonNormal SeasonBand = "normal"
	SeasonHigh   SeasonBand = "high"
)

// SeasonBands lists the bands in canonical order (cheapest tier first).
// Tie-breaks in best-deal selection follow this order.
var SeasonBands = [3]SeasonBand{SeasonLow, SeasonNormal, SeasonHigh}

// MultiplierRange is a price-multiplier range applied to a route base price.
type MultiplierRange struct {
	Min float64
	Max float64
}

// Mid returns the midpoint of the range, used for normal-season pricing.
func (r MultiplierRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// BandConfig describes one season band for a destination: the Thai month
// names it covers, its price-multiplier range, and the canonical best-deal
// date range string for that band.
type BandConfig struct {
	Months          []string
	PriceMultiplier MultiplierRange
	BestDealDates   string
}

// SeasonConfig is the full three-band season taxonomy for a destination.
// The three bands partition the twelve months with no gaps or overlaps;
// Validate enforces this when configurations are authored.
type SeasonConfig struct {
	Low    BandConfig
	Normal BandConfig
	High   BandConfig
}

// Band returns the configuration for the given season band.
func (c SeasonConfig) Band(b SeasonBand) BandConfig {
	switch b {
	case SeasonLow:
		return c.Low
	case SeasonHigh:
		return c.High
	default:
		return c.Normal
	}
}

// SeasonForMonth derives the season band for a calendar month from this
// destination's configuration. Months partition across the bands, so the
// lookup is total; Normal is returned for a month missing from an invalid
// configuration.
func (c SeasonConfig) SeasonForMonth(m time.Month) SeasonBand {
	name := timeutil.ThaiMonthFull(m)
	for _, band := range SeasonBands {
		for _, bm := range c.Band(band).Months {
			if bm == name {
				return band
			}
		}
	}
	return SeasonNormal
}

// Validate checks that the three bands cover all twelve months exactly once.
func (c SeasonConfig) Validate() error {
	seen := make(map[string]SeasonBand, 12)
	for _, band := range SeasonBands {
		for _, name := range c.Band(band).Months {
			if _, ok := timeutil.MonthFromThaiName(name); !ok {
				return fmt.Errorf("band %s: unknown month name %q", band, name)
			}
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("month %q assigned to both %s and %s", name, prev, band)
			}
			seen[name] = band
		}
	}
	if len(seen) != 12 {
		return fmt.Errorf("bands cover %d of 12 months", len(seen))
	}
	return nil
}

// defaultSeasonConfig applies to destinations without a curated taxonomy.
var defaultSeasonConfig = SeasonConfig{
	Low: BandConfig{
		Months:          []string{"พฤษภาคม", "มิถุนายน", "กันยายน"},
		PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
		BestDealDates:   "15-22 พฤษภาคม 2025",
	},
	Normal: BandConfig{
		Months:          []string{"กุมภาพันธ์", "มีนาคม", "ตุลาคม", "พฤศจิกายน"},
		PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.1},
		BestDealDates:   "5-12 มีนาคม 2025",
	},
	High: BandConfig{
		Months:          []string{"มกราคม", "เมษายน", "กรกฎาคม", "สิงหาคม", "ธันวาคม"},
		PriceMultiplier: MultiplierRange{Min: 1.1, Max: 1.5},
		BestDealDates:   "10-17 กรกฎาคม 2025",
	},
}

// destinationSeasonConfigs holds curated taxonomies keyed by normalized
// destination identifier. Thai provinces follow domestic tourist seasons
// (rainy season low, cool season high); international destinations follow
// their own climate and festival calendars.
var destinationSeasonConfigs = map[string]SeasonConfig{
	"chiang-mai": {
		Low: BandConfig{
			Months:          []string{"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "กันยายน"},
			PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
			BestDealDates:   "1-8 มิถุนายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "สิงหาคม", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.1},
			BestDealDates:   "10-17 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "พฤศจิกายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.2, Max: 1.7},
			BestDealDates:   "20-27 ธันวาคม 2025",
		},
	},
	"phuket": {
		Low: BandConfig{
			Months:          []string{"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "กันยายน"},
			PriceMultiplier: MultiplierRange{Min: 0.65, Max: 0.8},
			BestDealDates:   "1-8 มิถุนายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "สิงหาคม", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.8, Max: 1.1},
			BestDealDates:   "10-17 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "พฤศจิกายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.2, Max: 1.7},
			BestDealDates:   "20-27 ธันวาคม 2025",
		},
	},
	"singapore": {
		Low: BandConfig{
			Months:          []string{"กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน"},
			PriceMultiplier: MultiplierRange{Min: 0.8, Max: 0.95},
			BestDealDates:   "15-22 พฤษภาคม 2025",
		},
		Normal: BandConfig{
			Months:          []string{"ตุลาคม", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 0.95, Max: 1.1},
			BestDealDates:   "5-12 ตุลาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.2, Max: 1.6},
			BestDealDates:   "1-7 มกราคม 2025",
		},
	},
	"vietnam": {
		Low: BandConfig{
			Months:          []string{"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
			BestDealDates:   "15-22 พฤษภาคม 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "กันยายน", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.1},
			BestDealDates:   "5-12 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "พฤศจิกายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.1, Max: 1.5},
			BestDealDates:   "1-7 มกราคม 2025",
		},
	},
	"malaysia": {
		Low: BandConfig{
			Months:          []string{"กุมภาพันธ์", "พฤษภาคม", "มิถุนายน", "กันยายน", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.75, Max: 0.9},
			BestDealDates:   "10-17 กุมภาพันธ์ 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "กรกฎาคม", "สิงหาคม", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 0.9, Max: 1.1},
			BestDealDates:   "5-12 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.1, Max: 1.5},
			BestDealDates:   "20-27 ธันวาคม 2025",
		},
	},
	"japan": {
		Low: BandConfig{
			Months:          []string{"มิถุนายน", "กรกฎาคม", "สิงหาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.75, Max: 0.9},
			BestDealDates:   "15-22 มิถุนายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"กุมภาพันธ์", "กันยายน"},
			PriceMultiplier: MultiplierRange{Min: 0.9, Max: 1.15},
			BestDealDates:   "5-12 กันยายน 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "มีนาคม", "เมษายน", "พฤษภาคม", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.2, Max: 1.8},
			BestDealDates:   "25 มีนาคม - 5 เมษายน 2025",
		},
	},
	"korea": {
		Low: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "กรกฎาคม", "สิงหาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
			BestDealDates:   "15-22 มกราคม 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "มิถุนายน", "กันยายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.1},
			BestDealDates:   "5-12 กันยายน 2025",
		},
		High: BandConfig{
			Months:          []string{"เมษายน", "พฤษภาคม", "ตุลาคม", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 1.15, Max: 1.6},
			BestDealDates:   "5-15 เมษายน 2025",
		},
	},
	"taiwan": {
		Low: BandConfig{
			Months:          []string{"กรกฎาคม", "สิงหาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
			BestDealDates:   "15-22 กรกฎาคม 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "มีนาคม", "มิถุนายน", "กันยายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.1},
			BestDealDates:   "5-12 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"เมษายน", "พฤษภาคม", "ตุลาคม", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 1.1, Max: 1.6},
			BestDealDates:   "1-8 พฤศจิกายน 2025",
		},
	},
	"hong-kong": {
		Low: BandConfig{
			Months:          []string{"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
			BestDealDates:   "15-22 มิถุนายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "กันยายน", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.1},
			BestDealDates:   "5-12 เมษายน 2025",
		},
		High: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "พฤศจิกายน", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.1, Max: 1.5},
			BestDealDates:   "1-7 ธันวาคม 2025",
		},
	},
	"france": {
		Low: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 0.75, Max: 0.9},
			BestDealDates:   "10-17 พฤศจิกายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "กันยายน", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.9, Max: 1.2},
			BestDealDates:   "1-8 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.3, Max: 1.9},
			BestDealDates:   "1-15 กรกฎาคม 2025",
		},
	},
	"italy": {
		Low: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 0.7, Max: 0.85},
			BestDealDates:   "10-17 พฤศจิกายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "กันยายน", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.85, Max: 1.15},
			BestDealDates:   "1-8 มีนาคม 2025",
		},
		High: BandConfig{
			Months:          []string{"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.25, Max: 2.0},
			BestDealDates:   "1-15 กรกฎาคม 2025",
		},
	},
	"usa": {
		Low: BandConfig{
			Months:          []string{"มกราคม", "กุมภาพันธ์", "กันยายน", "ตุลาคม"},
			PriceMultiplier: MultiplierRange{Min: 0.75, Max: 0.95},
			BestDealDates:   "15-22 กันยายน 2025",
		},
		Normal: BandConfig{
			Months:          []string{"มีนาคม", "เมษายน", "พฤษภาคม", "พฤศจิกายน"},
			PriceMultiplier: MultiplierRange{Min: 0.95, Max: 1.2},
			BestDealDates:   "5-12 พฤศจิกายน 2025",
		},
		High: BandConfig{
			Months:          []string{"มิถุนายน", "กรกฎาคม", "สิงหาคม", "ธันวาคม"},
			PriceMultiplier: MultiplierRange{Min: 1.2, Max: 1.8},
			BestDealDates:   "1-15 กรกฎาคม 2025",
		},
	},
}

// NormalizeDestination converts a destination string to its lookup key:
// lowercase with spaces replaced by hyphens.
func NormalizeDestination(destination string) string {
	return strings.ReplaceAll(strings.ToLower(destination), " ", "-")
}

// SeasonConfigFor returns the season taxonomy for a destination. The
// destination is matched case-insensitively with spaces converted to
// hyphens; unmatched destinations receive the default taxonomy.
func SeasonConfigFor(destination string) SeasonConfig {
	if cfg, ok := destinationSeasonConfigs[NormalizeDestination(destination)]; ok {
		return cfg
	}
	return defaultSeasonConfig
}

// calendarSeasons is the fixed month-to-season table shared by all
// destinations. It drives chart colouring and the actual-date season
// re-derivation, and intentionally differs from the per-destination
// taxonomies above; the two classification tables must not be unified.
var calendarSeasons = [12]SeasonBand{
	SeasonHigh,   // January
	SeasonHigh,   // February
	SeasonNormal, // March
	SeasonNormal, // April
	SeasonLow,    // May
	SeasonLow,    // June
	SeasonLow,    // July
	SeasonLow,    // August
	SeasonLow,    // September
	SeasonLow,    // October
	SeasonHigh,   // November
	SeasonHigh,   // December
}

// CalendarSeason returns the season band for a month from the fixed
// calendar table, independent of destination.
func CalendarSeason(m time.Month) SeasonBand {
	return calendarSeasons[m-1]
}

// ChartSeasonMultiplier returns the fixed representative price multiplier
// used for chart series generation. Values are fixed rather than sampled
// from the band's range so chart output is deterministic.
func ChartSeasonMultiplier(b SeasonBand) float64 {
	switch b {
	case SeasonLow:
		return 0.75
	case SeasonHigh:
		return 1.3
	default:
		return 1.0
	}
}

// SeasonDescription returns the Thai marketing description for a band.
func SeasonDescription(b SeasonBand) string {
	switch b {
	case SeasonLow:
		return "ราคาถูกที่สุดของปี เหมาะสำหรับผู้ที่มีความยืดหยุ่นในการเดินทาง"
	case SeasonHigh:
		return "ช่วงเทศกาลและปิดเทอม ราคาสูงสุด แนะนำจองล่วงหน้า"
	default:
		return "ราคาปานกลาง อากาศดี เหมาะสำหรับการท่องเที่ยว"
	}
}
