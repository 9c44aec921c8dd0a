// internal/domain/entity/flight.go
package entity

// FlightRecord is one row of the historical fare dataset. Records are loaded
// once at startup and never mutated afterwards.
type FlightRecord struct {
	Airline         string
	FlightNumber    string
	SourceCity      string
	DestinationCity string
	DepartureTime   string // "HH:MM", 24-hour
	ArrivalTime     string // "HH:MM", 24-hour
	Stops           int
	Class           string // "Economy" or "Business", capitalized at load time
	Duration        string
	DaysLeft        int
	Price           float64 // historical observed fare, used for training only
}

// FeatureVector is the input schema the regression models were trained on.
type FeatureVector struct {
	SourceCity      string  `json:"source_city"`
	DestinationCity string  `json:"destination_city"`
	Airline         string  `json:"airline"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Stops           int     `json:"stops"`
	Class           string  `json:"class"`
	DaysLeft        int     `json:"days_left"`
	DayOfWeek       int     `json:"day_of_week"` // ISO weekday, Monday=0
	IsHoliday       int     `json:"is_holiday"`  // 1 when the travel date is a known holiday
}

// EnrichedFlight is a FlightRecord with a predicted price and the display
// metadata the result pages render. Built fresh per request, never persisted.
type EnrichedFlight struct {
	Airline         string  `json:"airline"`
	AirlineLogo     string  `json:"airline_logo"`
	FlightNumber    string  `json:"flight"`
	Aircraft        string  `json:"aircraft"`
	SourceCity      string  `json:"source_city"`
	DestinationCity string  `json:"destination_city"`
	SourceCode      string  `json:"source_code"`
	DestinationCode string  `json:"destination_code"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Duration        string  `json:"duration"`
	Stops           int     `json:"stops"`
	Class           string  `json:"class"`
	DaysLeft        int     `json:"days_left"`
	PredictedPrice  float64 `json:"predicted_price"`
	IsHoliday       bool    `json:"is_holiday"`
	Holiday         string  `json:"holiday"`
	DayOfWeek       int     `json:"day_of_week"`
	TravelDate      string  `json:"travel_date"`
	DepartTerminal  string  `json:"depart_terminal"`
	ArrivalTerminal string  `json:"arrival_terminal"`
	Baggage         string  `json:"baggage"`
	Meals           string  `json:"meals"`
	Beverages       string  `json:"beverages"`
	USB             string  `json:"usb"`
}
