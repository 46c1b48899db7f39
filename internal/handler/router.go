package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	shopHandler *api.ShopHandler,
	queueHandler *api.QueueHandler,
	bookingHandler *api.BookingHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, shopHandler, queueHandler, bookingHandler, sessionMiddleware)
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
	authHandler *api.AuthHandler,
	shopHandler *api.ShopHandler,
	queueHandler *api.QueueHandler,
	bookingHandler *api.BookingHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(sessionMiddleware.RequireIdentity())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		shops := apiGroup.Group("/shops")
		{
			addRoutes(shops, []route{
				{Method: http.MethodGet, Path: "", Handler: shopHandler.ListShops},
				{Method: http.MethodGet, Path: "/:shopId/slots", Handler: bookingHandler.GetSlots},
			})
		}

		queue := apiGroup.Group("/queue")
		{
			addRoutes(queue, []route{
				{Method: http.MethodGet, Path: "/:shopId", Handler: queueHandler.GetStatus},
				{Method: http.MethodGet, Path: "/:shopId/position", Handler: queueHandler.MyPosition},
			})

			queueAuth := queue.Group("")
			queueAuth.Use(sessionMiddleware.RequireIdentity())
			addRoutes(queueAuth, []route{
				{Method: http.MethodPost, Path: "/:shopId/join", Handler: queueHandler.Join},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(sessionMiddleware.RequireIdentity())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}
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
