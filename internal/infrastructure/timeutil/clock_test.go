package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	// The clock time should be between before and after
	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	// Should always return the fixed time
	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	initialTime := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	newTime := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	clock := NewMockClock(initialTime)
	assert.Equal(t, initialTime, clock.Now())

	clock.Set(newTime)
	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))

	clock.Advance(30 * time.Minute)

	expected := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_AdvanceDays(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC))

	clock.AdvanceDays(3)

	// Crosses the month boundary
	expected := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-05-01T00:00:00Z")
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("not-a-time")
	})
}
