package repository

import (
	"context"
	"time"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	gorm.Model
	ID          uint           `gorm:"primaryKey"`
	IataCode    string         `gorm:"column:iata_code;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityName    string         `gorm:"column:city_name"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// GetByCityName finds an airport by city name
func (r *GormAirportRepository) GetByCityName(ctx context.Context, city string) (*entity.Airport, error) {
	var airport Airports
	result := r.db.WithContext(ctx).Unscoped().Where("LOWER(city_name) = LOWER(?)", city).First(&airport)

	if result.Error != nil {
		return nil, result.Error
	}

	return toEntity(&airport), nil
}

// Search finds airports matching a substring of the city, airport name or code
func (r *GormAirportRepository) Search(ctx context.Context, query string, limit int) ([]entity.Airport, error) {
	var airports []Airports
	pattern := "%" + query + "%"
	result := r.db.WithContext(ctx).
		Where("city_name ILIKE ? OR airport_name ILIKE ? OR iata_code ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Order("city_name").
		Find(&airports)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Airport, 0, len(airports))
	for i := range airports {
		entities = append(entities, *toEntity(&airports[i]))
	}
	return entities, nil
}

// toEntity converts the GORM model to the domain entity
func toEntity(a *Airports) *entity.Airport {
	return &entity.Airport{
		ID:          a.ID,
		IataCode:    a.IataCode,
		AirportName: a.AirportName,
		CityName:    a.CityName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		DeletedAt:   a.DeletedAt,
	}
}
