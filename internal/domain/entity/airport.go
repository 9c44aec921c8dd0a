// internal/domain/entity/airport.go
package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Airport represents one row of the airport metadata table.
type Airport struct {
	ID          uint
	IataCode    string
	AirportName string
	CityName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}

// Label renders the autocomplete form, e.g. "Chennai (MAA)".
func (a *Airport) Label() string {
	return fmt.Sprintf("%s (%s)", a.CityName, a.IataCode)
}
