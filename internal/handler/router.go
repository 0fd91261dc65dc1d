package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lendhub/internal/handler/api"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, rentalHandler *api.RentalHandler, messageHandler *api.MessageHandler, reviewHandler *api.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, rentalHandler, messageHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, rentalHandler *api.RentalHandler, messageHandler *api.MessageHandler, reviewHandler *api.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		resources := apiGroup.Group("/resources")
		{
			// Availability and reviews are public reads.
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id/unavailable-dates", Handler: rentalHandler.GetUnavailableDates},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.GetResourceReviews},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.CreateRental},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.GetMyRentals},
				{Method: http.MethodGet, Path: "/lender", Handler: rentalHandler.GetIncomingRentals},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.GetRental},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: rentalHandler.UpdateRentalStatus},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: messageHandler.GetConversation},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: messageHandler.SendMessage},
				{Method: http.MethodPost, Path: "/:id/review", Handler: reviewHandler.SubmitReview},
			})
		}
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
