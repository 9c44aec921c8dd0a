package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"
	"farecast-service/pkg/logger"
	"farecast-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FareUseCase is the pipeline contract the HTTP layer depends on.
type FareUseCase interface {
	Lookup(ctx context.Context, q entity.QuerySpec) ([]entity.EnrichedFlight, error)
	Facets(ctx context.Context, q entity.QuerySpec) (*entity.FacetSummary, error)
}

// FareHandler exposes the lookup pipeline over HTTP.
type FareHandler struct {
	service     FareUseCase
	airportRepo repository.AirportRepository
	logger      logger.Logger
}

// NewFareHandler creates a new fare handler
func NewFareHandler(service FareUseCase, airportRepo repository.AirportRepository, logger logger.Logger) *FareHandler {
	return &FareHandler{
		service:     service,
		airportRepo: airportRepo,
		logger:      logger,
	}
}

// Register mounts the API routes on the router.
func (h *FareHandler) Register(router *gin.Engine) {
	router.GET("/flight-details", h.flightDetails)
	router.GET("/get-filters", h.getFilters)
	router.GET("/suggest-airport", h.suggestAirport)
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// querySpec builds the pipeline query from the request parameters. Airport
// code suffixes like "Chennai (MAA)" are stripped here; the matcher works on
// bare city names.
func querySpec(c *gin.Context) entity.QuerySpec {
	return entity.QuerySpec{
		Source:      utils.ExtractCityName(c.Query("source")),
		Destination: utils.ExtractCityName(c.Query("destination")),
		FlightClass: c.Query("class"),
		TravelDate:  c.Query("date"),
		SortBy:      c.DefaultQuery("sort_by", "cheap"),
		Filters: entity.FilterSpec{
			Airline:       c.Query("airline"),
			Stops:         c.Query("stops"),
			MaxPrice:      c.Query("max_price"),
			DepartureTime: c.Query("departure_time"),
			ArrivalTime:   c.Query("arrival_time"),
		},
	}
}

func (h *FareHandler) flightDetails(c *gin.Context) {
	q := querySpec(c)

	travellers, err := strconv.Atoi(c.DefaultQuery("travellers", "1"))
	if err != nil || travellers < 1 {
		travellers = 1
	}

	flights, err := h.service.Lookup(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("Lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fare lookup unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flights":     flights,
		"count":       len(flights),
		"source":      c.Query("source"),
		"destination": c.Query("destination"),
		"class":       q.FlightClass,
		"travel_date": q.TravelDate,
		"sort_by":     q.SortBy,
		"travellers":  travellers,
	})
}

func (h *FareHandler) getFilters(c *gin.Context) {
	q := querySpec(c)

	facets, err := h.service.Facets(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("Facet computation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "filter options unavailable"})
		return
	}

	c.JSON(http.StatusOK, facets)
}

type suggestion struct {
	Label string `json:"label"`
}

func (h *FareHandler) suggestAirport(c *gin.Context) {
	query := c.Query("q")
	suggestions := make([]suggestion, 0)

	if h.airportRepo != nil && query != "" {
		airports, err := h.airportRepo.Search(c.Request.Context(), query, 8)
		if err != nil {
			// Autocomplete is cosmetic; degrade to no suggestions.
			h.logger.Warn("Airport suggestion query failed", "q", query, "error", err)
		}
		for i := range airports {
			suggestions = append(suggestions, suggestion{Label: airports[i].Label()})
		}
	}

	c.JSON(http.StatusOK, suggestions)
}

func (h *FareHandler) health(c *gin.Context) {
	c.String(http.StatusOK, "Healthy")
}
