package usecase

import (
	"testing"

	"farecast-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func decoratedFlight(airline, class string) entity.EnrichedFlight {
	f := entity.EnrichedFlight{
		Airline:         airline,
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		DepartureTime:   "06:30",
		ArrivalTime:     "08:40",
		Class:           class,
	}
	NewDisplayEnricher().Decorate(&f)
	return f
}

func TestDecorate_IsDeterministic(t *testing.T) {
	first := decoratedFlight("Indigo", "Economy")
	second := decoratedFlight("Indigo", "Economy")

	assert.Equal(t, first, second)
	assert.Contains(t, aircraftTypes, first.Aircraft)
	assert.Contains(t, terminals, first.DepartTerminal)
	assert.Contains(t, terminals, first.ArrivalTerminal)
}

func TestDecorate_LogoFallsBackToDefault(t *testing.T) {
	known := decoratedFlight("Vistara", "Economy")
	unknown := decoratedFlight("Unlisted Air", "Economy")

	assert.Equal(t, "/static/logos/vistara.png", known.AirlineLogo)
	assert.Equal(t, defaultLogo, unknown.AirlineLogo)
}

func TestDecorate_AmenitiesByCarrier(t *testing.T) {
	fullService := decoratedFlight("Air India", "Economy")
	lowCost := decoratedFlight("SpiceJet", "Economy")

	assert.Equal(t, "Complimentary Meals", fullService.Meals)
	assert.Equal(t, "Complimentary Beverages", fullService.Beverages)
	assert.Equal(t, "Yes", fullService.USB)

	assert.Equal(t, "Buy Meals", lowCost.Meals)
	assert.Equal(t, "Buy Beverages", lowCost.Beverages)
	assert.Equal(t, "No", lowCost.USB)
}

func TestDecorate_BaggageByClass(t *testing.T) {
	economy := decoratedFlight("Indigo", "Economy")
	business := decoratedFlight("Indigo", "Business")

	assert.Equal(t, "20kg Check-in + 7kg Cabin", economy.Baggage)
	assert.Equal(t, "30kg Check-in + 10kg Cabin", business.Baggage)
}

func TestDecorate_KeepsExistingFlightNumberAndDuration(t *testing.T) {
	f := entity.EnrichedFlight{
		Airline:       "Indigo",
		FlightNumber:  "6E-203",
		DepartureTime: "06:30",
		ArrivalTime:   "08:40",
		Duration:      "2h 10m",
		Class:         "Economy",
	}
	NewDisplayEnricher().Decorate(&f)

	assert.Equal(t, "6E-203", f.FlightNumber)
	assert.Equal(t, "2h 10m", f.Duration)
}

func TestDecorate_SynthesizesMissingDisplayFields(t *testing.T) {
	f := decoratedFlight("GO FIRST", "Economy")

	assert.NotEmpty(t, f.FlightNumber)
	assert.Equal(t, "GO", f.FlightNumber[:2])
	assert.Equal(t, "2h 10m", f.Duration)
}

func TestFormatDuration_Overnight(t *testing.T) {
	assert.Equal(t, "3h 30m", formatDuration("22:45", "02:15"))
	assert.Equal(t, "0h 0m", formatDuration("10:00", "10:00"))
	assert.Equal(t, "", formatDuration("10:00", "bad"))
}
