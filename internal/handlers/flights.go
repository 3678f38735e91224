package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/middleware"
	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/service"
)

// FlightHandler handles logbook entry HTTP requests.
type FlightHandler struct {
	flightService service.FlightService
}

// NewFlightHandler creates a new FlightHandler instance.
func NewFlightHandler(flightService service.FlightService) *FlightHandler {
	return &FlightHandler{flightService: flightService}
}

// sortParams reads the list sorting query parameters, defaulting to newest
// first by date.
func sortParams(c *gin.Context) (string, bool) {
	sortField := c.DefaultQuery("sort", "date")
	order := c.DefaultQuery("order", "desc")
	return sortField, order != "asc"
}

// List godoc
// @Summary List own flights
// @Description Get the flights logged by the currently logged-in user
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort field" default(date)
// @Param order query string false "Sort order (asc or desc)" default(desc)
// @Success 200 {array} models.FlightConcise
// @Failure 401 {object} map[string]string
// @Router /flights [get]
func (h *FlightHandler) List(c *gin.Context) {
	sortField, descending := sortParams(c)
	flights, err := h.flightService.ListOwn(c.Request.Context(), middleware.CurrentUser(c), sortField, descending)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

// ListAll godoc
// @Summary List all flights
// @Description Get the flights logged by every user (administrators only)
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort field" default(date)
// @Param order query string false "Sort order (asc or desc)" default(desc)
// @Success 200 {array} models.FlightConcise
// @Failure 403 {object} map[string]string
// @Router /flights/all [get]
func (h *FlightHandler) ListAll(c *gin.Context) {
	sortField, descending := sortParams(c)
	flights, err := h.flightService.ListAll(c.Request.Context(), sortField, descending)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

// Get godoc
// @Summary Flight details
// @Description Get all details of a given flight
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Success 200 {object} models.Flight
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flights/{id} [get]
func (h *FlightHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid flight id")
		return
	}

	flight, err := h.flightService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// Create godoc
// @Summary Add flight
// @Description Add a flight logbook entry
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Flight true "Flight data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /flights [post]
func (h *FlightHandler) Create(c *gin.Context) {
	flight, ok := bindFlight(c)
	if !ok {
		return
	}

	id, err := h.flightService.Create(c.Request.Context(), middleware.CurrentUser(c), flight)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// Update godoc
// @Summary Update flight
// @Description Update the given flight with new information
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Param request body models.Flight true "Updated flight data"
// @Success 200 {object} models.Flight
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flights/{id} [put]
func (h *FlightHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid flight id")
		return
	}

	flight, ok := bindFlight(c)
	if !ok {
		return
	}

	updated, err := h.flightService.Update(c.Request.Context(), middleware.CurrentUser(c), id, flight)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete flight
// @Description Delete the given flight
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Success 200 {object} models.Flight
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /flights/{id} [delete]
func (h *FlightHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid flight id")
		return
	}

	deleted, err := h.flightService.Delete(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func bindFlight(c *gin.Context) (*models.Flight, bool) {
	var flight models.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if flight.Date.IsZero() {
		respondError(c, http.StatusBadRequest, "date is required")
		return nil, false
	}
	return &flight, true
}
