package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scratch-win/internal/handler/api"
	"scratch-win/internal/handler/middleware"
	"scratch-win/internal/pkg/config"
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
	redemptionHandler *api.RedemptionHandler,
	sessionHandler *api.SessionHandler,
	adminHandler *api.AdminHandler,
	statsHandler *api.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, redemptionHandler, sessionHandler, adminHandler, statsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	redemptionHandler *api.RedemptionHandler,
	sessionHandler *api.SessionHandler,
	adminHandler *api.AdminHandler,
	statsHandler *api.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/validate-order", Handler: redemptionHandler.ValidateOrder},
			{Method: http.MethodPost, Path: "/scratch", Handler: redemptionHandler.Scratch},
			{Method: http.MethodPost, Path: "/session", Handler: sessionHandler.Resolve},
			{Method: http.MethodGet, Path: "/config", Handler: redemptionHandler.GetConfig},
			{Method: http.MethodGet, Path: "/stats", Handler: statsHandler.GetPlayStats},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
				{Method: http.MethodGet, Path: "/check", Handler: adminHandler.Check},
			})

			protected := admin.Group("")
			protected.Use(authMiddleware.RequireAdmin())
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/products", Handler: adminHandler.ListProducts},
				{Method: http.MethodPost, Path: "/products", Handler: adminHandler.AddProduct},
				{Method: http.MethodPut, Path: "/products/:id", Handler: adminHandler.UpdateProduct},
				{Method: http.MethodPost, Path: "/orders", Handler: adminHandler.CreateOrder},
				{Method: http.MethodPost, Path: "/orders/direct", Handler: adminHandler.CreateDirectOrder},
				{Method: http.MethodGet, Path: "/orders", Handler: adminHandler.ListOrders},
				{Method: http.MethodGet, Path: "/sales-stats", Handler: statsHandler.GetSalesStats},
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
