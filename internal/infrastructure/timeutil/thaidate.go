package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Bangkok is the IANA timezone for all Thai domestic schedules.
const Bangkok = "Asia/Bangkok"

// thaiMonthsShort holds abbreviated Thai month names, January first.
var thaiMonthsShort = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// thaiMonthsFull holds full Thai month names, January first.
var thaiMonthsFull = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// monthByThaiName maps both full and abbreviated Thai month names to months.
var monthByThaiName = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	for i := range thaiMonthsFull {
		m[thaiMonthsFull[i]] = time.Month(i + 1)
		m[thaiMonthsShort[i]] = time.Month(i + 1)
	}
	return m
}()

// ThaiMonthShort returns the abbreviated Thai name for a month.
func ThaiMonthShort(m time.Month) string {
	return thaiMonthsShort[m-1]
}

// ThaiMonthFull returns the full Thai name for a month.
func ThaiMonthFull(m time.Month) string {
	return thaiMonthsFull[m-1]
}

// MonthFromThaiName resolves a Thai month name (full or abbreviated) to a
// time.Month. The second return value reports whether the name is known.
func MonthFromThaiName(name string) (time.Month, bool) {
	m, ok := monthByThaiName[strings.TrimSpace(name)]
	return m, ok
}

// FormatThaiShortDate formats a date as "15 พ.ค." (day + short month).
// Used for chart axis labels.
func FormatThaiShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), ThaiMonthShort(t.Month()))
}

// FormatThaiFullDate formats a date as "15 พฤษภาคม 2025". Year values in
// the season tables are Gregorian, so no Buddhist-era conversion is applied.
func FormatThaiFullDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), ThaiMonthFull(t.Month()), t.Year())
}

// FormatThaiDateRange formats a travel window for display. One-way trips
// render only the departure date; round trips render "start - end year".
func FormatThaiDateRange(start, end time.Time, oneWay bool) string {
	if oneWay {
		return FormatThaiFullDate(start)
	}
	return fmt.Sprintf("%d %s - %d %s %d",
		start.Day(), ThaiMonthFull(start.Month()),
		end.Day(), ThaiMonthFull(end.Month()), end.Year())
}

// bestDealRangePattern matches the common "15-22 พฤษภาคม 2025" form where
// both days share one month and year.
var bestDealRangePattern = regexp.MustCompile(`^(\d+)-(\d+)\s+(.+)$`)

// ParseBestDealDate parses the start date out of a canonical best-deal date
// range string. Two forms appear in the season tables:
//
//	"15-22 พฤษภาคม 2025"           (shared month and year)
//	"25 มีนาคม - 5 เมษายน 2025"    (month boundary crossing)
//
// The second return value is false when the string cannot be parsed; the
// caller decides the fallback (typically the current date).
func ParseBestDealDate(s string, fallbackYear int) (time.Time, bool) {
	s = strings.TrimSpace(s)

	if m := bestDealRangePattern.FindStringSubmatch(s); m != nil {
		return parseThaiDayMonthYear(m[1]+" "+m[3], fallbackYear)
	}

	if start, _, ok := strings.Cut(s, " - "); ok {
		// Year usually appears only on the end part; borrow it if present.
		if t, ok := parseThaiDayMonthYear(start, yearHint(s, fallbackYear)); ok {
			return t, true
		}
	}

	return parseThaiDayMonthYear(s, fallbackYear)
}

// SplitBestDealRange splits a canonical best-deal range string into start
// and end display labels (e.g. "15 พฤษภาคม 2025", "22 พฤษภาคม 2025").
func SplitBestDealRange(s string) (string, string) {
	if m := bestDealRangePattern.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[3], m[2] + " " + m[3]
	}

	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return strings.TrimSpace(s), strings.TrimSpace(s)
	}
	return strings.TrimSpace(start), strings.TrimSpace(end)
}

// ParseThaiDateLabel parses a "15 พฤษภาคม" or "15 พฤษภาคม 2025" label.
func ParseThaiDateLabel(s string, fallbackYear int) (time.Time, bool) {
	return parseThaiDayMonthYear(s, fallbackYear)
}

// parseThaiDayMonthYear parses "day month [year]" with a Thai month name.
func parseThaiDayMonthYear(s string, fallbackYear int) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 2 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	month, ok := MonthFromThaiName(fields[1])
	if !ok {
		return time.Time{}, false
	}

	year := fallbackYear
	if len(fields) >= 3 {
		if y, err := strconv.Atoi(fields[2]); err == nil {
			year = y
		}
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// yearHint extracts a trailing 4-digit year from a range string, falling
// back to the given year.
func yearHint(s string, fallback int) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallback
	}
	if y, err := strconv.Atoi(fields[len(fields)-1]); err == nil && y >= 1000 {
		return y
	}
	return fallback
}

// DateOnly truncates a time to midnight UTC of the same calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from one date to
// another. The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
