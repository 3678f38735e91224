package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/middleware"
	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/service"
)

// UserHandler handles account and profile HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the add-user request payload.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Level    *int   `json:"level"`
}

// UpdateProfileRequest represents a profile update payload. Omitted fields
// are left unchanged.
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Level    *int    `json:"level"`
}

// Create godoc
// @Summary Add user
// @Description Create a new user account (administrators only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "New user"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	level := models.AuthLevelUser
	if req.Level != nil {
		level = models.AuthLevel(*req.Level)
	}

	id, err := h.userService.Create(c.Request.Context(), req.Username, req.Password, level)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// List godoc
// @Summary List users
// @Description Get a list of all users (administrators only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Delete godoc
// @Summary Delete user
// @Description Delete a user and all records the user owns (administrators only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}

// GetProfile godoc
// @Summary Current user profile
// @Description Return the profile of the currently logged-in user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Update the profile of the currently logged-in user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	h.updateProfile(c, actor, actor.ID)
}

// GetUserProfile godoc
// @Summary User profile
// @Description Return the profile of the given user (administrators only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /profile/{id} [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUserProfile godoc
// @Summary Update user profile
// @Description Update the profile of the given user (administrators only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile/{id} [put]
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	h.updateProfile(c, middleware.CurrentUser(c), id)
}

func (h *UserHandler) updateProfile(c *gin.Context, actor *models.User, target primitive.ObjectID) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := service.ProfileUpdate{
		Username: req.Username,
		Password: req.Password,
	}
	if req.Level != nil {
		level := models.AuthLevel(*req.Level)
		upd.Level = &level
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), actor, target, upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
