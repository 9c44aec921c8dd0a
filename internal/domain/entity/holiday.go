// internal/domain/entity/holiday.go
package entity

// Holiday is one public holiday from the calendar feed.
type Holiday struct {
	Name string
	Date string // "YYYY-MM-DD"
}

// HolidayMap maps ISO dates to holiday names. It is built once at startup and
// treated as immutable afterwards; an empty map is the fetch-failure fallback.
type HolidayMap map[string]string

// NameFor returns the holiday name for an ISO date and whether one exists.
func (m HolidayMap) NameFor(date string) (string, bool) {
	name, ok := m[date]
	return name, ok
}
