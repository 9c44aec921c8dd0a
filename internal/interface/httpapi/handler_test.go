package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"
	"farecast-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFareService struct {
	flights []entity.EnrichedFlight
	facets  *entity.FacetSummary
	err     error
	lastQ   entity.QuerySpec
}

func (s *stubFareService) Lookup(_ context.Context, q entity.QuerySpec) ([]entity.EnrichedFlight, error) {
	s.lastQ = q
	return s.flights, s.err
}

func (s *stubFareService) Facets(_ context.Context, q entity.QuerySpec) (*entity.FacetSummary, error) {
	s.lastQ = q
	return s.facets, s.err
}

type stubAirportRepo struct {
	airports []entity.Airport
	err      error
}

func (s *stubAirportRepo) GetByCityName(_ context.Context, _ string) (*entity.Airport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.airports[0], nil
}

func (s *stubAirportRepo) Search(_ context.Context, _ string, _ int) ([]entity.Airport, error) {
	return s.airports, s.err
}

func newTestRouter(service FareUseCase, airports repository.AirportRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewFareHandler(service, airports, logger.NewNop()).Register(router)
	return router
}

func TestFlightDetails_ReturnsFlights(t *testing.T) {
	service := &stubFareService{flights: []entity.EnrichedFlight{
		{Airline: "Indigo", PredictedPrice: 3900},
	}}
	router := newTestRouter(service, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/flight-details?source=Delhi+(DEL)&destination=Mumbai+(BOM)&class=Economy&date=2026-09-06&sort_by=best&airline=Indigo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Flights []entity.EnrichedFlight `json:"flights"`
		Count   int                     `json:"count"`
		SortBy  string                  `json:"sort_by"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "best", body.SortBy)

	// Airport codes are stripped before the pipeline sees the cities
	assert.Equal(t, "Delhi", service.lastQ.Source)
	assert.Equal(t, "Mumbai", service.lastQ.Destination)
	assert.Equal(t, "Indigo", service.lastQ.Filters.Airline)
}

func TestFlightDetails_PipelineErrorIs500(t *testing.T) {
	service := &stubFareService{err: errors.New("model server down")}
	router := newTestRouter(service, nil)

	req := httptest.NewRequest(http.MethodGet, "/flight-details?source=Delhi&destination=Mumbai&class=Economy&date=2026-09-06", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetFilters_ReturnsFacets(t *testing.T) {
	service := &stubFareService{facets: &entity.FacetSummary{
		Airlines: []string{"Indigo"},
		MinPrice: 3500,
		MaxPrice: 6100,
	}}
	router := newTestRouter(service, nil)

	req := httptest.NewRequest(http.MethodGet, "/get-filters?source=Delhi&destination=Mumbai&class=Economy&date=2026-09-06", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var facets entity.FacetSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &facets))
	assert.Equal(t, []string{"Indigo"}, facets.Airlines)
	assert.Equal(t, 6100.0, facets.MaxPrice)
}

func TestSuggestAirport_ReturnsLabels(t *testing.T) {
	airports := &stubAirportRepo{airports: []entity.Airport{
		{IataCode: "MAA", CityName: "Chennai"},
		{IataCode: "BOM", CityName: "Mumbai"},
	}}
	router := newTestRouter(&stubFareService{}, airports)

	req := httptest.NewRequest(http.MethodGet, "/suggest-airport?q=ma", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var suggestions []struct {
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Chennai (MAA)", suggestions[0].Label)
}

func TestSuggestAirport_DegradesToEmptyList(t *testing.T) {
	airports := &stubAirportRepo{err: errors.New("postgres down")}
	router := newTestRouter(&stubFareService{}, airports)

	req := httptest.NewRequest(http.MethodGet, "/suggest-airport?q=ma", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubFareService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
