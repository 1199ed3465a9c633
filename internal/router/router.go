package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/controllers/api"
	"github.com/spendwise/backend/internal/controllers/healthz"
	"github.com/spendwise/backend/internal/httputil"
)

// Set at build time with -ldflags.
var version = "0.0.0"

// Config sets up the router with all middlewares. The returned teardown
// function has to be called before the process (or the test) exits.
func Config() (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if ok := unregisterPrometheusMetrics(); !ok {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	return r, teardown, nil
}

// AttachRoutes attaches all routes to the router group that is passed in.
// Separating this from Config allows tests to attach the routes to a
// fresh engine without touching the global middleware state.
func AttachRoutes(group *gin.RouterGroup, tokens *auth.TokenService) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	healthz.RegisterRoutes(group.Group("/healthz"))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := group.Group("/api")
	{
		apiGroup.GET("", GetAPI)
		apiGroup.OPTIONS("", OptionsAPI)
	}

	api.RegisterAuthRoutes(apiGroup.Group("/auth"), tokens)

	// Everything else requires a session
	protected := apiGroup.Group("", api.RequireAuth(tokens))
	api.RegisterTransactionRoutes(protected.Group("/transactions"))
	api.RegisterBudgetRoutes(protected.Group("/budgets"))
	api.RegisterCategoryRoutes(protected.Group("/categories"))
	api.RegisterSavingGoalRoutes(protected.Group("/saving-goals"))
	api.RegisterStatsRoutes(protected.Group("/stats"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"` // Endpoint returning the application health
	Metrics string `json:"metrics" example:"https://example.com/metrics"` // Endpoint returning Prometheus metrics
	API     string `json:"api" example:"https://example.com/api"`         // API entrypoint
	Version string `json:"version" example:"1.1.0"`                       // Software version of the backend
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Metrics: "/metrics",
			API:     "/api",
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"`
}

type APILinks struct {
	Auth         string `json:"auth" example:"https://example.com/api/auth"`
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"`
	Budgets      string `json:"budgets" example:"https://example.com/api/budgets"`
	Categories   string `json:"categories" example:"https://example.com/api/categories"`
	SavingGoals  string `json:"savingGoals" example:"https://example.com/api/saving-goals"`
	Stats        string `json:"stats" example:"https://example.com/api/stats"`
}

// @Summary		API overview
// @Description	Returns general information about the API
// @Tags			General
// @Success		200	{object}	APIResponse
// @Router			/api [get]
func GetAPI(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Auth:         "/api/auth",
			Transactions: "/api/transactions",
			Budgets:      "/api/budgets",
			Categories:   "/api/categories",
			SavingGoals:  "/api/saving-goals",
			Stats:        "/api/stats",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
