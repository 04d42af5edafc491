// Package routes wires controllers and middleware into a gin engine.
package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"floorplan-web/internal/controllers"
	"floorplan-web/internal/middleware"
	"floorplan-web/internal/models"
	"floorplan-web/internal/views"
)

// Handlers groups the controllers the router dispatches to.
type Handlers struct {
	Auth      *controllers.AuthController
	FloorPlan *controllers.FloorPlanController
	Tutorial  *controllers.TutorialController
	Pages     *controllers.PageController
}

// Limiters per route class. A nil limiter disables limiting for that class.
type Limiters struct {
	General  middleware.Limiter
	Auth     middleware.Limiter
	Generate middleware.Limiter
}

// New builds the engine with every page and API route registered.
func New(h Handlers, l Limiters, corsOrigin string, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsOrigin),
	)
	router.SetHTMLTemplate(tmpl)

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	general := limit(l.General, logger)
	auth := limit(l.Auth, logger)
	generate := limit(l.Generate, logger)

	// Pages
	pages := router.Group("")
	pages.Use(general)
	{
		pages.GET("/", h.Pages.Home)
		pages.GET("/about", h.Pages.About)
		pages.GET("/tutorial", h.Pages.Tutorial)

		pages.GET("/register", h.Pages.RegisterForm)
		pages.POST("/register", auth, h.Pages.SubmitRegister)
		pages.GET("/login", h.Pages.LoginForm)
		pages.POST("/login", auth, h.Pages.SubmitLogin)

		pages.GET("/app", h.Pages.AppForm)
		pages.POST("/app", generate, h.Pages.SubmitApp)
	}

	// API routes answer every method so that the wrong one gets the 405 envelope
	postOnly := middleware.AllowMethods(http.MethodPost)
	api := router.Group("/api")
	api.Use(general)
	{
		api.Any("/login", postOnly, auth, h.Auth.Login)
		api.Any("/register", postOnly, auth, h.Auth.Register)
		api.Any("/generate-floorplan", postOnly, generate, h.FloorPlan.Generate)
		api.Any("/tutorial-status", middleware.AllowMethods(http.MethodGet, http.MethodPost), h.Tutorial.Status)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.APIResponse{
			Success: false,
			Message: "Not found",
			Error:   "No route for " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	return router, nil
}

func limit(l middleware.Limiter, logger *zap.Logger) gin.HandlerFunc {
	if l == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.LimitMiddleware(l, logger)
}
