package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swimapi/internal/handler/api"
	"swimapi/internal/handler/middleware"
	"swimapi/internal/pkg/config"
)

// route is one row of the explicit routing table: the table is built once at
// startup and never mutated afterwards.
type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	userHandler *api.UserHandler,
	resourceHandler *api.ResourceHandler,
	timeslotHandler *api.TimeslotHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, userHandler, resourceHandler, timeslotHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	userHandler *api.UserHandler,
	resourceHandler *api.ResourceHandler,
	timeslotHandler *api.TimeslotHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	admin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			// Users: creation and reads are open; item writes are gated by
			// a direct key comparison against the target inside the usecase.
			{Method: http.MethodGet, Path: "/users", Handler: userHandler.List},
			{Method: http.MethodPost, Path: "/users", Handler: userHandler.Create},
			{Method: http.MethodGet, Path: "/users/:id", Handler: userHandler.Get},
			{Method: http.MethodPut, Path: "/users/:id", Handler: userHandler.Replace},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: userHandler.Delete},
			{Method: http.MethodPost, Path: "/admin/users", Handler: userHandler.CreateAdmin},

			{Method: http.MethodGet, Path: "/resources", Handler: resourceHandler.List},
			{Method: http.MethodPost, Path: "/resources", Handler: resourceHandler.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/resources/:id", Handler: resourceHandler.Get},
			{Method: http.MethodPut, Path: "/resources/:id", Handler: resourceHandler.Replace, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/resources/:id", Handler: resourceHandler.Delete, Mw: []gin.HandlerFunc{admin}},

			{Method: http.MethodGet, Path: "/timeslots", Handler: timeslotHandler.List},
			{Method: http.MethodPost, Path: "/timeslots", Handler: timeslotHandler.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/timeslots/:id", Handler: timeslotHandler.Get},
			{Method: http.MethodPut, Path: "/timeslots/:id", Handler: timeslotHandler.Replace, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/timeslots/:id", Handler: timeslotHandler.Delete, Mw: []gin.HandlerFunc{admin}},

			{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.List, Mw: []gin.HandlerFunc{admin}},
			// Create resolves the caller itself: the media-type check must
			// come before key resolution.
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: reservationHandler.Get},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: reservationHandler.Delete},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
