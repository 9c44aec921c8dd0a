package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"
	"farecast-service/pkg/logger"
)

// CSVDatasetRepository holds the historical fare table in memory. The slice is
// never mutated after LoadDataset returns, so concurrent reads need no lock.
type CSVDatasetRepository struct {
	records []entity.FlightRecord
	logger  logger.Logger
}

// Required dataset columns. FlightNumber and Duration are optional extras
// carried through for display.
var requiredColumns = []string{
	"airline", "source_city", "destination_city",
	"departure_time", "arrival_time", "stops", "class", "days_left", "price",
}

// LoadDataset reads the historical fare table from a CSV file. A missing or
// malformed file is a startup failure; the service cannot serve without it.
func LoadDataset(path string, log logger.Logger) (repository.DatasetRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", name)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset rows: %w", err)
	}

	records := make([]entity.FlightRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dataset row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}

	log.Info("Dataset loaded", "path", path, "records", len(records))

	return &CSVDatasetRepository{records: records, logger: log}, nil
}

func parseRecord(row []string, cols map[string]int) (entity.FlightRecord, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	stops, err := strconv.Atoi(field("stops"))
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("bad stops value %q", field("stops"))
	}

	// days_left arrives as "5" or "5.0" depending on the export; coerce to int.
	daysLeft, err := parseIntLoose(field("days_left"))
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("bad days_left value %q", field("days_left"))
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("bad price value %q", field("price"))
	}

	return entity.FlightRecord{
		Airline:         field("airline"),
		FlightNumber:    field("flight"),
		SourceCity:      field("source_city"),
		DestinationCity: field("destination_city"),
		DepartureTime:   field("departure_time"),
		ArrivalTime:     field("arrival_time"),
		Stops:           stops,
		Class:           capitalize(field("class")),
		Duration:        field("duration"),
		DaysLeft:        daysLeft,
		Price:           price,
	}, nil
}

func parseIntLoose(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// capitalize normalizes class labels the way the models were trained:
// "economy" and "ECONOMY" both become "Economy".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Match returns the records for one route/class/lead-time tuple.
func (r *CSVDatasetRepository) Match(source, destination, class string, daysLeft int) []entity.FlightRecord {
	matched := make([]entity.FlightRecord, 0)
	for _, rec := range r.records {
		if rec.DaysLeft != daysLeft {
			continue
		}
		if !strings.EqualFold(rec.SourceCity, source) {
			continue
		}
		if !strings.EqualFold(rec.DestinationCity, destination) {
			continue
		}
		if !strings.EqualFold(rec.Class, class) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// Len reports the number of records loaded.
func (r *CSVDatasetRepository) Len() int {
	return len(r.records)
}

var _ repository.DatasetRepository = (*CSVDatasetRepository)(nil)
