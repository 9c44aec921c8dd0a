// internal/domain/entity/query.go
package entity

// FilterSpec carries the optional post-filters of a lookup. Each field is a
// comma-separated allow-list except MaxPrice, which is a numeric upper bound.
type FilterSpec struct {
	Airline       string
	Stops         string
	MaxPrice      string
	DepartureTime string
	ArrivalTime   string
}

// QuerySpec is one lookup request. Source and destination are city names with
// any "(XXX)" airport code already stripped by the caller.
type QuerySpec struct {
	Source      string
	Destination string
	FlightClass string
	TravelDate  string // "YYYY-MM-DD"
	SortBy      string // "best" or "cheap"; anything else means "cheap"
	Filters     FilterSpec
}

// StopFacet is one stop-count option with the cheapest fare observed for it.
type StopFacet struct {
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	MinPrice float64 `json:"min_price"`
}

// TimeSlotOption is one departure/arrival time-slot filter option.
type TimeSlotOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FacetSummary lists the filter options present in an unfiltered result set,
// used to drive the filter sidebar.
type FacetSummary struct {
	Airlines       []string         `json:"airlines"`
	MinPrice       float64          `json:"min_price"`
	MaxPrice       float64          `json:"max_price"`
	Stops          []StopFacet      `json:"stops"`
	DepartureTimes []TimeSlotOption `json:"departure_times"`
	ArrivalTimes   []TimeSlotOption `json:"arrival_times"`
}

// EmptyFacetSummary is what invalid or matchless queries produce: zero bounds
// and no options, never nil slices.
func EmptyFacetSummary() *FacetSummary {
	return &FacetSummary{
		Airlines:       []string{},
		Stops:          []StopFacet{},
		DepartureTimes: []TimeSlotOption{},
		ArrivalTimes:   []TimeSlotOption{},
	}
}
