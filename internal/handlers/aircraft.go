package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/middleware"
	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/service"
)

// AircraftHandler handles aircraft record HTTP requests.
type AircraftHandler struct {
	aircraftService service.AircraftService
}

// NewAircraftHandler creates a new AircraftHandler instance.
func NewAircraftHandler(aircraftService service.AircraftService) *AircraftHandler {
	return &AircraftHandler{aircraftService: aircraftService}
}

// AircraftRequest represents an aircraft create or update payload.
type AircraftRequest struct {
	TailNo           string  `json:"tail_no" binding:"required"`
	Make             string  `json:"make" binding:"required"`
	Model            string  `json:"model" binding:"required"`
	AircraftCategory string  `json:"aircraft_category" binding:"required"`
	AircraftClass    string  `json:"aircraft_class" binding:"required"`
	Hobbs            float64 `json:"hobbs"`
}

func (r *AircraftRequest) toModel() *models.Aircraft {
	return &models.Aircraft{
		TailNo:           r.TailNo,
		Make:             r.Make,
		Model:            r.Model,
		AircraftCategory: r.AircraftCategory,
		AircraftClass:    r.AircraftClass,
		Hobbs:            r.Hobbs,
	}
}

// List godoc
// @Summary List own aircraft
// @Description Get the aircraft created by the currently logged-in user
// @Tags aircraft
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Aircraft
// @Failure 401 {object} map[string]string
// @Router /aircraft [get]
func (h *AircraftHandler) List(c *gin.Context) {
	aircraft, err := h.aircraftService.ListOwn(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

// ListAll godoc
// @Summary List all aircraft
// @Description Get the aircraft created by every user (administrators only)
// @Tags aircraft
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Aircraft
// @Failure 403 {object} map[string]string
// @Router /aircraft/all [get]
func (h *AircraftHandler) ListAll(c *gin.Context) {
	aircraft, err := h.aircraftService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

// Get godoc
// @Summary Aircraft details
// @Description Get details of the given aircraft
// @Tags aircraft
// @Produce json
// @Security BearerAuth
// @Param id path string true "Aircraft ID"
// @Success 200 {object} models.Aircraft
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /aircraft/{id} [get]
func (h *AircraftHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid aircraft id")
		return
	}

	aircraft, err := h.aircraftService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

// Create godoc
// @Summary Add aircraft
// @Description Add an aircraft record
// @Tags aircraft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AircraftRequest true "Aircraft data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /aircraft [post]
func (h *AircraftHandler) Create(c *gin.Context) {
	var req AircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.aircraftService.Create(c.Request.Context(), middleware.CurrentUser(c), req.toModel())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// Update godoc
// @Summary Update aircraft
// @Description Update the given aircraft with new information
// @Tags aircraft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Aircraft ID"
// @Param request body AircraftRequest true "Updated aircraft data"
// @Success 200 {object} models.Aircraft
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /aircraft/{id} [put]
func (h *AircraftHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid aircraft id")
		return
	}

	var req AircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.aircraftService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.toModel())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete aircraft
// @Description Delete the given aircraft
// @Tags aircraft
// @Produce json
// @Security BearerAuth
// @Param id path string true "Aircraft ID"
// @Success 200 {object} models.Aircraft
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /aircraft/{id} [delete]
func (h *AircraftHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid aircraft id")
		return
	}

	deleted, err := h.aircraftService.Delete(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
