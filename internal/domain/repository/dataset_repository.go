package repository

import (
	"farecast-service/internal/domain/entity"
)

// DatasetRepository provides read access to the historical fare dataset.
// The dataset is loaded once at startup and is immutable, so implementations
// are safe for concurrent use without locking.
type DatasetRepository interface {
	// Match returns the records for one (source, destination, class, daysLeft)
	// tuple. City and class comparison is case-insensitive. An empty result is
	// a normal outcome, not an error.
	Match(source, destination, class string, daysLeft int) []entity.FlightRecord

	// Len reports the number of records loaded.
	Len() int
}
