package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/tirumala-planners/site-backend/config"
	"github.com/tirumala-planners/site-backend/internal/api/http/handler"
	"github.com/tirumala-planners/site-backend/internal/service/catalog"
	"github.com/tirumala-planners/site-backend/internal/service/quote"
	"github.com/tirumala-planners/site-backend/pkg/database"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	DB         *gorm.DB
	QuoteSvc   quote.Service
	CatalogSvc catalog.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	quoteH := handler.NewQuoteHandler(r.p.QuoteSvc)
	assetH := handler.NewAssetHandler(r.p.CatalogSvc)

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Hello from the Tirumala Planners server!")
	})

	api := app.Group("/api")

	// 3. Delegate to sub-files
	r.registerQuoteRoutes(api, quoteH)
	r.registerAssetRoutes(api, assetH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return database.Ping(r.p.DB) == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
