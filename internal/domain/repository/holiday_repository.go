package repository

import (
	"context"

	"farecast-service/internal/domain/entity"
)

// HolidayRepository fetches the upcoming public holidays used for the
// holiday-demand price adjustment.
type HolidayRepository interface {
	// UpcomingHolidays returns holidays within the next windowDays days.
	UpcomingHolidays(ctx context.Context, windowDays int) ([]entity.Holiday, error)
}
