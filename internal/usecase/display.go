package usecase

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"farecast-service/internal/domain/entity"
)

// airlineLogos maps carrier names to their static logo paths.
var airlineLogos = map[string]string{
	"Air India": "/static/logos/air-india.png",
	"Indigo":    "/static/logos/indigo.png",
	"SpiceJet":  "/static/logos/spicejet.png",
	"Vistara":   "/static/logos/vistara.png",
	"GO FIRST":  "/static/logos/goair.png",
	"AirAsia":   "/static/logos/airasia.png",
	"Trujet":    "/static/logos/truejet.png",
}

const defaultLogo = "/static/logos/default.png"

// fullServiceCarriers get complimentary meals and beverages.
var fullServiceCarriers = map[string]bool{
	"Air India": true,
	"Vistara":   true,
}

// usbCarriers offer in-seat USB power.
var usbCarriers = map[string]bool{
	"Indigo":    true,
	"Air India": true,
	"Vistara":   true,
}

var aircraftTypes = []string{"A320", "A321", "B737"}

var terminals = []string{"T1", "T2"}

// DisplayEnricher fills the presentation-only fields of a result record.
// Aircraft and terminal assignments are derived from a hash of the record's
// stable fields, so the same flight always renders the same way.
type DisplayEnricher struct{}

// NewDisplayEnricher creates a new display enricher
func NewDisplayEnricher() *DisplayEnricher {
	return &DisplayEnricher{}
}

// Decorate fills the display fields of an enriched flight in place. Pricing
// fields must already be set; Decorate never touches them.
func (e *DisplayEnricher) Decorate(f *entity.EnrichedFlight) {
	logo, ok := airlineLogos[f.Airline]
	if !ok {
		logo = defaultLogo
	}
	f.AirlineLogo = logo

	h := recordHash(f)
	f.Aircraft = aircraftTypes[h%uint32(len(aircraftTypes))]
	f.DepartTerminal = terminals[(h>>4)%uint32(len(terminals))]
	f.ArrivalTerminal = terminals[(h>>8)%uint32(len(terminals))]

	if f.FlightNumber == "" {
		f.FlightNumber = syntheticFlightNumber(f.Airline, h)
	}
	if f.Duration == "" {
		f.Duration = formatDuration(f.DepartureTime, f.ArrivalTime)
	}

	if strings.EqualFold(f.Class, "Economy") {
		f.Baggage = "20kg Check-in + 7kg Cabin"
	} else {
		f.Baggage = "30kg Check-in + 10kg Cabin"
	}

	if fullServiceCarriers[f.Airline] {
		f.Meals = "Complimentary Meals"
		f.Beverages = "Complimentary Beverages"
	} else {
		f.Meals = "Buy Meals"
		f.Beverages = "Buy Beverages"
	}

	if usbCarriers[f.Airline] {
		f.USB = "Yes"
	} else {
		f.USB = "No"
	}
}

// recordHash distills the record identity into a hash used for deterministic
// display assignments.
func recordHash(f *entity.EnrichedFlight) uint32 {
	h := fnv.New32a()
	h.Write([]byte(f.Airline))
	h.Write([]byte(f.SourceCity))
	h.Write([]byte(f.DestinationCity))
	h.Write([]byte(f.DepartureTime))
	h.Write([]byte(f.ArrivalTime))
	h.Write([]byte(strconv.Itoa(f.Stops)))
	return h.Sum32()
}

func syntheticFlightNumber(airline string, h uint32) string {
	prefix := strings.ToUpper(strings.ReplaceAll(airline, " ", ""))
	if len(prefix) >= 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("%s-%d", prefix, 100+h%900)
}

// formatDuration renders the wall-clock difference between two "HH:MM"
// strings, assuming arrival on the next day when it precedes departure.
func formatDuration(depart, arrive string) string {
	dep, okDep := parseMinutes(depart)
	arr, okArr := parseMinutes(arrive)
	if !okDep || !okArr {
		return ""
	}
	span := (arr - dep + 24*60) % (24 * 60)
	return fmt.Sprintf("%dh %dm", span/60, span%60)
}

func parseMinutes(timeStr string) (int, bool) {
	hourStr, minStr, found := strings.Cut(timeStr, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}
