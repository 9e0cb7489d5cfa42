package handler

import (
	"gaps-gateway/internal/adapter/http/middleware"
	redisStore "gaps-gateway/internal/adapter/storage/redis"
	"gaps-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RelaySvc       ports.RelayService
	TokenSvc       ports.TokenService         // nil = relay open to any caller
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	AuditSvc       ports.AuditService // nil = audit logging disabled
	AuditReader    ports.AuditReader  // nil or no TokenSvc = /audits not mounted
	HealthCheckers []ports.HealthChecker
	AllowOrigin    string
	MaxBodyBytes   int64
	Mode           string // gin mode; empty = release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware. CORS sits ahead of routing so preflights on any
	// path are answered without touching the relay.
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(deps.AllowOrigin))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Relay chain: audit first so rejected calls are recorded too.
	var chain []gin.HandlerFunc
	if deps.AuditSvc != nil {
		chain = append(chain, middleware.RelayAudit(deps.AuditSvc))
	}
	if deps.TokenSvc != nil {
		chain = append(chain, middleware.BearerAuth(deps.TokenSvc, deps.Logger))
	}
	if deps.RateLimitStore != nil && deps.RateLimit.Limit > 0 {
		chain = append(chain, middleware.RateLimiter(deps.RateLimitStore, "relay", deps.RateLimit, deps.Logger))
	}

	proxyHandler := NewProxyHandler(deps.RelaySvc)
	r.POST("/", append(chain, proxyHandler.Relay)...)

	if deps.AuditReader != nil && deps.TokenSvc != nil {
		auditHandler := NewAuditHandler(deps.AuditReader)
		r.GET("/audits", middleware.BearerAuth(deps.TokenSvc, deps.Logger), auditHandler.ListRecent)
	}

	return r
}
