// Package http provides the HTTP handler layer for the travel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/wanderly/travel-search-api/internal/adapter/http/response"
	"github.com/wanderly/travel-search-api/internal/domain"
	"github.com/wanderly/travel-search-api/internal/usecase"
)

// TravelHandler handles HTTP requests for travel search endpoints.
type TravelHandler struct {
	service usecase.TravelSearchService
}

// NewTravelHandler creates a new TravelHandler with the given service.
func NewTravelHandler(service usecase.TravelSearchService) *TravelHandler {
	return &TravelHandler{
		service: service,
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search flight offers for a route and date, served live, from cache, or degraded
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code" example(JFK)
// @Param destination query string true "Destination IATA code" example(LHR)
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Number of adults (1-9)"
// @Param cabinClass query string false "Cabin class" Enums(ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)
// @Success 200 {object} domain.FlightSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [get]
func (h *TravelHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequest(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.SearchFlights(c.Request().Context(), ToFlightQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// SearchHotels handles GET /api/v1/hotels/search
//
// @Summary Search for hotels
// @Description Search hotel offers for a city and stay window, served live, from cache, or degraded
// @Tags hotels
// @Produce json
// @Param cityCode query string true "City IATA code" example(PAR)
// @Param checkInDate query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOutDate query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query int false "Number of adults (1-9)"
// @Param rooms query int false "Number of rooms (1-9)"
// @Success 200 {object} domain.HotelSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/hotels/search [get]
func (h *TravelHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequest(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.SearchHotels(c.Request().Context(), ToHotelQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// SearchLocations handles GET /api/v1/locations/search
//
// @Summary Search for airports and cities
// @Description Autocomplete lookup for airports and cities, falling back to bundled reference data
// @Tags locations
// @Produce json
// @Param keyword query string true "Search keyword (min 2 characters)" example(lond)
// @Success 200 {object} domain.LocationSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/locations/search [get]
func (h *TravelHandler) SearchLocations(c echo.Context) error {
	var req SearchLocationsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequest(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.SearchLocations(c.Request().Context(), ToLocationQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// InspireDestinations handles GET /api/v1/destinations/inspiration
//
// @Summary Suggest destinations
// @Description Suggest destination deals from an origin airport
// @Tags destinations
// @Produce json
// @Param origin query string true "Origin IATA code" example(MAD)
// @Success 200 {object} domain.InspirationResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/destinations/inspiration [get]
func (h *TravelHandler) InspireDestinations(c echo.Context) error {
	var req InspireDestinationsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequest(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.InspireDestinations(c.Request().Context(), ToInspirationQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TravelHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses. Degraded
// results never reach this path; the service folds them into 200 payloads.
func (h *TravelHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidQuery) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TravelHandler) Health(c echo.Context) error {
	return response.Health(c)
}
