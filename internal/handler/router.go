package handler

import (
	"log/slog"
	"net/http"

	"home-dispatch/internal/domain/user"
	"home-dispatch/internal/handler/api"
	"home-dispatch/internal/handler/middleware"
	"home-dispatch/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Lifecycle *api.LifecycleHandler
	Dispatch  *api.DispatchHandler
	Provider  *api.ProviderHandler
	Review    *api.ReviewHandler
	Stream    *api.StreamHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customer := authMiddleware.RequireRole(user.RoleCustomer)
	provider := authMiddleware.RequireRole(user.RoleProvider)
	customerOrAdmin := authMiddleware.RequireRole(user.RoleCustomer, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{customer}},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodGet, Path: "/:id/events", Handler: h.Booking.Events},
			{Method: http.MethodGet, Path: "/:id/events/stream", Handler: h.Stream.BookingStream},
			{Method: http.MethodPost, Path: "/:id/status", Handler: h.Lifecycle.Transition},
			{Method: http.MethodGet, Path: "/:id/otp", Handler: h.Lifecycle.GetOtp, Mw: []gin.HandlerFunc{customerOrAdmin}},
			{Method: http.MethodPost, Path: "/:id/otp", Handler: h.Lifecycle.IssueOtp, Mw: []gin.HandlerFunc{customerOrAdmin}},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Dispatch.Accept, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Dispatch.Reject, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodPost, Path: "/:id/location", Handler: h.Provider.ReportLocation, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodPost, Path: "/:id/review", Handler: h.Review.Submit, Mw: []gin.HandlerFunc{customer}},
			{Method: http.MethodGet, Path: "/:id/review", Handler: h.Review.Get},
		})

		providers := apiGroup.Group("/providers/me")
		providers.Use(provider)
		addRoutes(providers, []route{
			{Method: http.MethodPut, Path: "/availability", Handler: h.Provider.SetAvailability},
			{Method: http.MethodDelete, Path: "/availability", Handler: h.Provider.ClearAvailability},
			{Method: http.MethodGet, Path: "/requests", Handler: h.Provider.Offers},
		})

		addRoutes(apiGroup.Group("/providers"), []route{
			{Method: http.MethodGet, Path: "/:id/stats", Handler: h.Review.ProviderStats},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ProviderReviews},
		})

		addRoutes(apiGroup.Group("/me"), []route{
			{Method: http.MethodGet, Path: "/events/stream", Handler: h.Stream.MyStream},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/bookings/:id/dispatch", Handler: h.Dispatch.Dispatch},
			{Method: http.MethodPost, Path: "/bookings/:id/broadcast", Handler: h.Dispatch.Broadcast},
			{Method: http.MethodPost, Path: "/dispatch/sweep", Handler: h.Dispatch.Sweep},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
