// internal/domain/entity/query_log.go
package entity

import (
	"time"
)

// QueryLog is one recorded lookup, kept for demand analysis and model
// retraining. Mirrors what the pipeline actually computed, not the raw HTTP
// parameters.
type QueryLog struct {
	ID          string    `bson:"_id,omitempty"`
	Source      string    `bson:"source"`
	Destination string    `bson:"destination"`
	Class       string    `bson:"class"`
	TravelDate  string    `bson:"travelDate"`
	DaysLeft    int       `bson:"daysLeft"`
	SortBy      string    `bson:"sortBy"`
	Matches     int       `bson:"matches"`
	MinPrice    float64   `bson:"minPrice"`
	MaxPrice    float64   `bson:"maxPrice"`
	IsHoliday   bool      `bson:"isHoliday"`
	CreatedAt   time.Time `bson:"createdAt"`
}
