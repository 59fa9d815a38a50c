package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

// flightSlot is one fixed departure slot used when fabricating a flight
// list. Slots differ in departure time, leg length and a small price
// adjustment so the list reads like a real schedule.
type flightSlot struct {
	departHour   int
	departMinute int
	legMinutes   int
	adjustment   float64
}

var flightSlots = [4]flightSlot{
	{6, 30, 75, 1.00},
	{9, 15, 90, 0.95},
	{13, 45, 80, 1.05},
	{18, 20, 85, 0.90},
}

// FlightPrices implements DataSource. It fabricates the fixed four-leg
// flight list for one airline on a route: each leg takes a departure slot,
// a synthetic flight number and a fare built from the airline's route fare,
// the slot adjustment and the dynamic pricing factors for its travel date.
// Legs come back sorted by fare, cheapest first.
func (e *Engine) FlightPrices(_ context.Context, req domain.FlightListRequest) ([]domain.Flight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	today := timeutil.DateOnly(e.clock.Now())
	fare := domain.AirlineFare(req.Origin, req.Destination, req.AirlineID)
	name := domain.AirlineDisplayName(req.AirlineID)
	prefix := flightNumberPrefix(req.AirlineID)

	flights := make([]domain.Flight, 0, len(flightSlots))
	for i, slot := range flightSlots {
		travelDate := e.flightDate(req.StartDate, today, i)
		factors := PricingFactors(today, travelDate)

		depart := time.Date(travelDate.Year(), travelDate.Month(), travelDate.Day(),
			slot.departHour, slot.departMinute, 0, 0, time.UTC)
		arrive := depart.Add(time.Duration(slot.legMinutes) * time.Minute)

		flights = append(flights, domain.Flight{
			Airline:       name,
			FlightNumber:  fmt.Sprintf("%s%d", prefix, 101+i),
			DepartureTime: depart.Format("15:04"),
			ArrivalTime:   arrive.Format("15:04"),
			Duration:      fmt.Sprintf("%dh %dm", slot.legMinutes/60, slot.legMinutes%60),
			Price:         roundTHB(fare * slot.adjustment * factors.Total),
			Date:          timeutil.FormatThaiFullDate(travelDate),
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})
	return flights, nil
}

// flightDate picks the travel date for the i-th leg: the user's start date
// when given, otherwise one of three fixed fallback dates in the clock's
// current year, cycled across legs.
func (e *Engine) flightDate(userStart *time.Time, today time.Time, i int) time.Time {
	if userStart != nil {
		return timeutil.DateOnly(*userStart)
	}
	year := today.Year()
	fallback := [3]time.Time{
		time.Date(year, time.May, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.May, 20, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	return fallback[i%len(fallback)]
}

// flightNumberPrefix derives the two-letter carrier code from an airline
// identifier.
func flightNumberPrefix(airlineID string) string {
	id := strings.ToUpper(airlineID)
	if len(id) < 2 {
		return "XX"
	}
	return id[:2]
}
