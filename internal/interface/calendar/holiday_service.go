package calendar

import (
	"context"
	"fmt"
	"time"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"
	"farecast-service/pkg/logger"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// HolidayService reads public holidays from a Google Calendar holiday feed,
// e.g. "en.indian#holiday@group.v.calendar.google.com".
type HolidayService struct {
	calendarService *gcal.Service
	calendarID      string
	logger          logger.Logger
}

// NewHolidayService creates a new holiday service
func NewHolidayService(ctx context.Context, tokenSource oauth2.TokenSource, calendarID string, logger logger.Logger) (*HolidayService, error) {
	service, err := gcal.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &HolidayService{
		calendarService: service,
		calendarID:      calendarID,
		logger:          logger,
	}, nil
}

// UpcomingHolidays fetches holidays within the next windowDays days.
func (s *HolidayService) UpcomingHolidays(ctx context.Context, windowDays int) ([]entity.Holiday, error) {
	now := time.Now()
	timeMin := now.Format(time.RFC3339)
	timeMax := now.AddDate(0, 0, windowDays).Format(time.RFC3339)

	events, err := s.calendarService.Events.List(s.calendarID).
		TimeMin(timeMin).
		TimeMax(timeMax).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(250).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday events: %w", err)
	}

	holidays := make([]entity.Holiday, 0, len(events.Items))
	for _, event := range events.Items {
		if event.Start == nil || event.Start.Date == "" {
			// Holiday feeds publish all-day events; anything else is noise.
			continue
		}
		holidays = append(holidays, entity.Holiday{
			Name: event.Summary,
			Date: event.Start.Date,
		})
	}

	s.logger.Info("Fetched holidays", "calendarID", s.calendarID, "count", len(holidays))
	return holidays, nil
}

// BuildHolidayMap fetches the upcoming holidays once and folds them into the
// date-keyed map the pricing pipeline consumes. Best-effort: any failure is
// logged and an empty map is returned so the service still starts.
func BuildHolidayMap(ctx context.Context, repo repository.HolidayRepository, windowDays int, log logger.Logger) entity.HolidayMap {
	holidayMap := entity.HolidayMap{}

	holidays, err := repo.UpcomingHolidays(ctx, windowDays)
	if err != nil {
		log.Warn("Holiday fetch failed, continuing without holiday pricing", "error", err)
		return holidayMap
	}

	for _, h := range holidays {
		holidayMap[h.Date] = h.Name
	}
	return holidayMap
}

var _ repository.HolidayRepository = (*HolidayService)(nil)
