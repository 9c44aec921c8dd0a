package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"
	"farecast-service/pkg/logger"
	"farecast-service/pkg/metrics"
	"farecast-service/pkg/utils"
)

const travelDateLayout = "2006-01-02"

// holidayBlendWeight shifts the estimate 75% of the way toward the
// holiday-model price. Full substitution would let holiday-model noise
// through; no shift would ignore holiday demand entirely.
const holidayBlendWeight = 0.75

// FareRecommender runs the lookup pipeline: match the historical dataset,
// price each record with the regression models, decorate for display, then
// sort and filter. The dataset, predictors and holiday map are wired once at
// startup and shared read-only across requests.
type FareRecommender struct {
	dataset          repository.DatasetRepository
	basePredictor    repository.Predictor
	holidayPredictor repository.Predictor
	holidays         entity.HolidayMap
	airportRepo      repository.AirportRepository
	queryLogRepo     repository.QueryLogRepository
	facetCache       repository.FacetCache
	enricher         *DisplayEnricher
	metrics          *metrics.Metrics
	logger           logger.Logger
	now              func() time.Time
}

// Option configures optional collaborators of the recommender.
type Option func(*FareRecommender)

// WithAirportRepository wires the airport metadata lookups for display codes.
func WithAirportRepository(repo repository.AirportRepository) Option {
	return func(r *FareRecommender) { r.airportRepo = repo }
}

// WithQueryLog wires best-effort lookup recording.
func WithQueryLog(repo repository.QueryLogRepository) Option {
	return func(r *FareRecommender) { r.queryLogRepo = repo }
}

// WithFacetCache wires the facet summary cache.
func WithFacetCache(cache repository.FacetCache) Option {
	return func(r *FareRecommender) { r.facetCache = cache }
}

// WithMetrics wires prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *FareRecommender) { r.metrics = m }
}

// WithClock overrides the wall clock, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(r *FareRecommender) { r.now = now }
}

// NewFareRecommender creates a new fare recommender
func NewFareRecommender(
	dataset repository.DatasetRepository,
	basePredictor repository.Predictor,
	holidayPredictor repository.Predictor,
	holidays entity.HolidayMap,
	logger logger.Logger,
	opts ...Option,
) *FareRecommender {
	r := &FareRecommender{
		dataset:          dataset,
		basePredictor:    basePredictor,
		holidayPredictor: holidayPredictor,
		holidays:         holidays,
		enricher:         NewDisplayEnricher(),
		logger:           logger,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// requestMeta carries the per-request derivations shared by every matched
// record: all records in a batch have the same travel date.
type requestMeta struct {
	daysLeft    int
	dayOfWeek   int // Monday=0
	isHoliday   bool
	holidayName string
}

// Lookup returns the priced, sorted and filtered flights for a query.
// Malformed queries degrade to an empty result, never an error; a predictor
// failure is a configuration defect and surfaces as an error.
func (r *FareRecommender) Lookup(ctx context.Context, q entity.QuerySpec) ([]entity.EnrichedFlight, error) {
	flights, meta, err := r.matchAndPrice(ctx, q)
	if err != nil {
		return nil, err
	}
	if r.metrics != nil {
		r.metrics.LookupsProcessed.Inc()
	}
	if meta != nil {
		r.recordQuery(ctx, q, meta, flights)
	}

	sortFlights(flights, q.SortBy)
	return applyFilters(flights, q.Filters), nil
}

// Facets returns the filter options for a query, computed over the unfiltered
// matched-and-priced set. Valid queries are served from cache when possible.
func (r *FareRecommender) Facets(ctx context.Context, q entity.QuerySpec) (*entity.FacetSummary, error) {
	meta, ok := r.validate(q)
	if !ok {
		return entity.EmptyFacetSummary(), nil
	}

	key := facetCacheKey(q, meta.daysLeft)
	if r.facetCache != nil {
		cached, err := r.facetCache.GetFacets(ctx, key)
		if err != nil {
			r.logger.Warn("Facet cache read failed", "key", key, "error", err)
		} else if cached != nil {
			if r.metrics != nil {
				r.metrics.FacetCacheHits.Inc()
			}
			return cached, nil
		}
	}

	flights, _, err := r.matchAndPrice(ctx, q)
	if err != nil {
		return nil, err
	}

	facets := computeFacets(flights)
	if r.facetCache != nil {
		if err := r.facetCache.SetFacets(ctx, key, facets); err != nil {
			r.logger.Warn("Facet cache write failed", "key", key, "error", err)
		}
	}
	return facets, nil
}

// validate checks the four required query fields and derives the per-request
// date features. A failure here is the fail-soft path: empty results, no error.
func (r *FareRecommender) validate(q entity.QuerySpec) (*requestMeta, bool) {
	if strings.TrimSpace(q.Source) == "" ||
		strings.TrimSpace(q.Destination) == "" ||
		strings.TrimSpace(q.FlightClass) == "" ||
		strings.TrimSpace(q.TravelDate) == "" {
		return nil, false
	}

	travel, err := time.Parse(travelDateLayout, q.TravelDate)
	if err != nil {
		return nil, false
	}

	// Calendar-date subtraction from the date parts only; no timezone math.
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(travel.Sub(today).Hours() / 24)

	meta := &requestMeta{
		daysLeft:  daysLeft,
		dayOfWeek: (int(travel.Weekday()) + 6) % 7,
	}
	if name, ok := r.holidays.NameFor(q.TravelDate); ok {
		meta.isHoliday = true
		meta.holidayName = name
	}
	return meta, true
}

// matchAndPrice runs stages 1-3 of the pipeline and returns the unfiltered,
// unsorted result set. meta is nil when the query failed validation.
func (r *FareRecommender) matchAndPrice(ctx context.Context, q entity.QuerySpec) ([]entity.EnrichedFlight, *requestMeta, error) {
	meta, ok := r.validate(q)
	if !ok {
		r.logger.Info("Lookup query failed validation, returning empty result",
			"source", q.Source, "destination", q.Destination, "class", q.FlightClass, "date", q.TravelDate)
		return []entity.EnrichedFlight{}, nil, nil
	}

	records := r.dataset.Match(q.Source, q.Destination, q.FlightClass, meta.daysLeft)
	if r.metrics != nil {
		r.metrics.FlightsMatched.Add(float64(len(records)))
	}
	if len(records) == 0 {
		return []entity.EnrichedFlight{}, meta, nil
	}

	prices, err := r.predictPrices(ctx, records, meta)
	if err != nil {
		if r.metrics != nil {
			r.metrics.ErrorsCount.WithLabelValues("predict").Inc()
		}
		return nil, nil, err
	}

	sourceCode, destinationCode := r.resolveCodes(ctx, q.Source, q.Destination)

	flights := make([]entity.EnrichedFlight, 0, len(records))
	for i, rec := range records {
		f := entity.EnrichedFlight{
			Airline:         rec.Airline,
			FlightNumber:    rec.FlightNumber,
			SourceCity:      rec.SourceCity,
			DestinationCity: rec.DestinationCity,
			SourceCode:      sourceCode,
			DestinationCode: destinationCode,
			DepartureTime:   rec.DepartureTime,
			ArrivalTime:     rec.ArrivalTime,
			Duration:        rec.Duration,
			Stops:           rec.Stops,
			Class:           rec.Class,
			DaysLeft:        rec.DaysLeft,
			PredictedPrice:  prices[i],
			IsHoliday:       meta.isHoliday,
			DayOfWeek:       meta.dayOfWeek,
			TravelDate:      q.TravelDate,
		}
		if meta.isHoliday {
			f.Holiday = meta.holidayName
		} else {
			f.Holiday = "Standard Pricing"
		}
		r.enricher.Decorate(&f)
		flights = append(flights, f)
	}

	return flights, meta, nil
}

// predictPrices applies the base model and, on holiday dates, blends in the
// holiday-specialized model's estimate. Prices come back rounded to 2 decimals.
func (r *FareRecommender) predictPrices(ctx context.Context, records []entity.FlightRecord, meta *requestMeta) ([]float64, error) {
	features := make([]entity.FeatureVector, 0, len(records))
	isHoliday := 0
	if meta.isHoliday {
		isHoliday = 1
	}
	for _, rec := range records {
		features = append(features, entity.FeatureVector{
			SourceCity:      rec.SourceCity,
			DestinationCity: rec.DestinationCity,
			Airline:         rec.Airline,
			DepartureTime:   rec.DepartureTime,
			ArrivalTime:     rec.ArrivalTime,
			Stops:           rec.Stops,
			Class:           rec.Class,
			DaysLeft:        rec.DaysLeft,
			DayOfWeek:       meta.dayOfWeek,
			IsHoliday:       isHoliday,
		})
	}

	start := time.Now()
	basePrices, err := r.basePredictor.Predict(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("failed to predict base fares: %w", err)
	}

	prices := basePrices
	if meta.isHoliday {
		holidayPrices, err := r.holidayPredictor.Predict(ctx, features)
		if err != nil {
			return nil, fmt.Errorf("failed to predict holiday fares: %w", err)
		}
		prices = make([]float64, len(basePrices))
		for i := range basePrices {
			prices[i] = basePrices[i] + (holidayPrices[i]-basePrices[i])*holidayBlendWeight
		}
	}
	if r.metrics != nil {
		r.metrics.PredictionTime.Observe(time.Since(start).Seconds())
	}

	rounded := make([]float64, len(prices))
	for i, p := range prices {
		rounded[i] = roundPrice(p)
	}
	return rounded, nil
}

// resolveCodes looks up the IATA codes for the queried cities. Missing
// metadata degrades to empty codes; the result list renders without them.
func (r *FareRecommender) resolveCodes(ctx context.Context, source, destination string) (string, string) {
	if r.airportRepo == nil {
		return "", ""
	}
	var sourceCode, destinationCode string
	if airport, err := r.airportRepo.GetByCityName(ctx, source); err == nil {
		sourceCode = airport.IataCode
	}
	if airport, err := r.airportRepo.GetByCityName(ctx, destination); err == nil {
		destinationCode = airport.IataCode
	}
	return sourceCode, destinationCode
}

// recordQuery writes the lookup to the query log, best-effort.
func (r *FareRecommender) recordQuery(ctx context.Context, q entity.QuerySpec, meta *requestMeta, flights []entity.EnrichedFlight) {
	if r.queryLogRepo == nil {
		return
	}

	minPrice, maxPrice := priceBounds(flights)
	log := &entity.QueryLog{
		Source:      q.Source,
		Destination: q.Destination,
		Class:       q.FlightClass,
		TravelDate:  q.TravelDate,
		DaysLeft:    meta.daysLeft,
		SortBy:      q.SortBy,
		Matches:     len(flights),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		IsHoliday:   meta.isHoliday,
	}
	if err := r.queryLogRepo.Insert(ctx, log); err != nil {
		r.logger.Warn("Failed to record query log", "error", err)
	}
}

// sortFlights orders the result set in place. "best" prefers fewer stops,
// then earlier departure, then price; everything else is cheapest-first with
// lead time as the tie breaker.
func sortFlights(flights []entity.EnrichedFlight, sortBy string) {
	if sortBy == "best" {
		sort.SliceStable(flights, func(i, j int) bool {
			if flights[i].Stops != flights[j].Stops {
				return flights[i].Stops < flights[j].Stops
			}
			if flights[i].DepartureTime != flights[j].DepartureTime {
				return flights[i].DepartureTime < flights[j].DepartureTime
			}
			return flights[i].PredictedPrice < flights[j].PredictedPrice
		})
		return
	}

	sort.SliceStable(flights, func(i, j int) bool {
		if flights[i].PredictedPrice != flights[j].PredictedPrice {
			return flights[i].PredictedPrice < flights[j].PredictedPrice
		}
		return flights[i].DaysLeft < flights[j].DaysLeft
	})
}

// applyFilters applies the active post-filters, combined with logical AND.
// An unparseable max_price deactivates that filter rather than failing.
func applyFilters(flights []entity.EnrichedFlight, filters entity.FilterSpec) []entity.EnrichedFlight {
	airlines := utils.SplitList(filters.Airline)
	stops := utils.SplitList(filters.Stops)
	departureSlots := utils.SplitList(filters.DepartureTime)
	arrivalSlots := utils.SplitList(filters.ArrivalTime)

	maxPrice, hasMaxPrice := 0.0, false
	if trimmed := strings.TrimSpace(filters.MaxPrice); trimmed != "" {
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			maxPrice, hasMaxPrice = v, true
		}
	}

	kept := make([]entity.EnrichedFlight, 0, len(flights))
	for _, f := range flights {
		if airlines != nil && !utils.ContainsFold(airlines, f.Airline) {
			continue
		}
		if stops != nil && !utils.ContainsFold(stops, strconv.Itoa(f.Stops)) {
			continue
		}
		if hasMaxPrice && f.PredictedPrice > maxPrice {
			continue
		}
		if departureSlots != nil && !utils.ContainsFold(departureSlots, GetTimeSlot(f.DepartureTime)) {
			continue
		}
		if arrivalSlots != nil && !utils.ContainsFold(arrivalSlots, GetTimeSlot(f.ArrivalTime)) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// computeFacets derives the filter options present in an unfiltered result set.
func computeFacets(flights []entity.EnrichedFlight) *entity.FacetSummary {
	facets := entity.EmptyFacetSummary()
	if len(flights) == 0 {
		return facets
	}

	airlineSet := make(map[string]struct{})
	stopMin := make(map[int]float64)
	departureSlots := make(map[string]struct{})
	arrivalSlots := make(map[string]struct{})

	facets.MinPrice, facets.MaxPrice = priceBounds(flights)
	for _, f := range flights {
		airlineSet[f.Airline] = struct{}{}

		if current, ok := stopMin[f.Stops]; !ok || f.PredictedPrice < current {
			stopMin[f.Stops] = f.PredictedPrice
		}

		if slot := GetTimeSlot(f.DepartureTime); slot != SlotUnknown {
			departureSlots[slot] = struct{}{}
		}
		if slot := GetTimeSlot(f.ArrivalTime); slot != SlotUnknown {
			arrivalSlots[slot] = struct{}{}
		}
	}

	for airline := range airlineSet {
		facets.Airlines = append(facets.Airlines, airline)
	}
	sort.Strings(facets.Airlines)

	stopCounts := make([]int, 0, len(stopMin))
	for n := range stopMin {
		stopCounts = append(stopCounts, n)
	}
	sort.Ints(stopCounts)
	for _, n := range stopCounts {
		label := "Direct"
		if n > 0 {
			label = fmt.Sprintf("%d Stop", n)
		}
		facets.Stops = append(facets.Stops, entity.StopFacet{
			Label:    label,
			Value:    strconv.Itoa(n),
			MinPrice: stopMin[n],
		})
	}

	facets.DepartureTimes = slotOptions(departureSlots)
	facets.ArrivalTimes = slotOptions(arrivalSlots)
	return facets
}

// slotOptions renders a slot set as labeled options sorted by slot key.
func slotOptions(slots map[string]struct{}) []entity.TimeSlotOption {
	keys := make([]string, 0, len(slots))
	for slot := range slots {
		keys = append(keys, slot)
	}
	sort.Strings(keys)

	options := make([]entity.TimeSlotOption, 0, len(keys))
	for _, slot := range keys {
		options = append(options, entity.TimeSlotOption{
			Label: TimeSlotLabel(slot),
			Value: slot,
		})
	}
	return options
}

func priceBounds(flights []entity.EnrichedFlight) (float64, float64) {
	if len(flights) == 0 {
		return 0, 0
	}
	minPrice, maxPrice := flights[0].PredictedPrice, flights[0].PredictedPrice
	for _, f := range flights[1:] {
		if f.PredictedPrice < minPrice {
			minPrice = f.PredictedPrice
		}
		if f.PredictedPrice > maxPrice {
			maxPrice = f.PredictedPrice
		}
	}
	return minPrice, maxPrice
}

func facetCacheKey(q entity.QuerySpec, daysLeft int) string {
	return strings.ToLower(fmt.Sprintf("%s|%s|%s|%s|%d",
		q.Source, q.Destination, q.FlightClass, q.TravelDate, daysLeft))
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
