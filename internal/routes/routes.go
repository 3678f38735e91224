// Package routes defines HTTP routes for the logbook API.
package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/azpsen/tailfin-api/internal/config"
	"github.com/azpsen/tailfin-api/internal/handlers"
	"github.com/azpsen/tailfin-api/internal/middleware"
	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/service"
)

// Handlers bundles the handler set the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Flights  *handlers.FlightHandler
	Aircraft *handlers.AircraftHandler
	Images   *handlers.ImageHandler
	Health   *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application. Every group below
// /api/v1 except login and refresh sits behind the auth gateway; admin-only
// groups raise the required level.
func Setup(router *gin.Engine, h Handlers, authService service.AuthService, cfg *config.Config) {
	router.Use(middleware.Security(cfg.AllowedOrigins))

	router.GET("/health", h.Health.Check)

	userAuth := middleware.RequireAuth(authService, models.AuthLevelUser)
	adminAuth := middleware.RequireAuth(authService, models.AuthLevelAdmin)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", userAuth, h.Auth.Logout)
	}

	users := v1.Group("/users", adminAuth)
	{
		users.POST("", h.Users.Create)
		users.GET("", h.Users.List)
		users.DELETE("/:id", h.Users.Delete)
	}

	profile := v1.Group("/profile", userAuth)
	{
		profile.GET("", h.Users.GetProfile)
		profile.PUT("", h.Users.UpdateProfile)
		profile.GET("/:id", adminAuth, h.Users.GetUserProfile)
		profile.PUT("/:id", adminAuth, h.Users.UpdateUserProfile)
	}

	flights := v1.Group("/flights", userAuth)
	{
		flights.GET("", h.Flights.List)
		flights.GET("/all", adminAuth, h.Flights.ListAll)
		flights.GET("/:id", h.Flights.Get)
		flights.POST("", h.Flights.Create)
		flights.PUT("/:id", h.Flights.Update)
		flights.DELETE("/:id", h.Flights.Delete)
	}

	aircraft := v1.Group("/aircraft", userAuth)
	{
		aircraft.GET("", h.Aircraft.List)
		aircraft.GET("/all", adminAuth, h.Aircraft.ListAll)
		aircraft.GET("/:id", h.Aircraft.Get)
		aircraft.POST("", h.Aircraft.Create)
		aircraft.PUT("/:id", h.Aircraft.Update)
		aircraft.DELETE("/:id", h.Aircraft.Delete)
	}

	images := v1.Group("/images", userAuth)
	{
		images.POST("/upload", h.Images.Upload)
		images.GET("/:id", h.Images.Get)
		images.DELETE("/:id", h.Images.Delete)
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
