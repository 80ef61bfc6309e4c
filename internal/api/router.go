package api

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerboard/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Per-IP request budget. A dashboard tab on the stream costs one request per
// session, a polling tab two per minute.
const (
	rateLimit       = 120
	rateLimitWindow = time.Minute
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Loads the embedded page template and serves the dashboard at "/".
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// No request timeout is installed: a slow upstream fetch is bounded only by the
// HTTP client transport timeout.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(rateLimit, rateLimitWindow),
	)

	// ─── Page ─────────────────────────────────────
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))
	router.GET("/", handler.Index)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/tickers", handler.GetTickers)
		v1.POST("/dashboard/update", handler.PostUpdate)
		v1.GET("/dashboard/stream", handler.Stream)
	}

	return router
}
