package routes

import (
	_ "checkmaster/docs"
	"checkmaster/internal/adapter/http/handlers"
	"checkmaster/internal/adapter/http/middleware"
	"checkmaster/internal/infrastructure/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathV1      = "/v1"
	PathPing    = "/ping"
	PathMetrics = "/metrics"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Templates    *handlers.TemplateHandler
	Inspections  *handlers.InspectionHandler
	Scan         *handlers.ScanHandler
	Reports      *handlers.ReportHandler
	OrderPayment *handlers.OrderPaymentHandler
	Auth         *handlers.AuthHandler
}

// Options configures the router. Sessions gates every route except ping,
// login and session lookup.
type Options struct {
	Handlers       Handlers
	Sessions       middleware.SessionVerifier
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

// New builds the gin engine with middlewares and every route registered.
func New(opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(promhttp.Handler()))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addAuthRoutes(v1, opts.Handlers.Auth, opts.Sessions)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.Auth(opts.Sessions))
	addChecklistRoutes(private, opts.Handlers.Templates, opts.Handlers.Inspections, opts.Handlers.Scan)
	addBillingRoutes(private, opts.Handlers.Inspections, opts.Handlers.OrderPayment)
	addReportRoutes(private, opts.Handlers.Reports)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(gin.Logger())
	router.Use(middleware.Metrics(opts.Metrics))
	if c, ok := corsConfig(opts.AllowedOrigins); ok {
		router.Use(cors.New(c))
	}
}

// corsConfig returns false when no origin is allowed, leaving CORS headers
// off entirely.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.DefaultConfig()
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AddAllowHeaders("Authorization")
	c.AddExposeHeaders("Content-Disposition")
	return c, true
}
