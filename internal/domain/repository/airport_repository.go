package repository

import (
	"context"

	"farecast-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport metadata lookups.
type AirportRepository interface {
	// GetByCityName finds an airport by its city name, case-insensitive.
	GetByCityName(ctx context.Context, city string) (*entity.Airport, error)

	// Search returns airports whose city, airport name or IATA code contains
	// the query substring, case-insensitive, up to limit entries.
	Search(ctx context.Context, query string, limit int) ([]entity.Airport, error)
}
