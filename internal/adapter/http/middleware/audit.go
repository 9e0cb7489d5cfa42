package middleware

import (
	"net/http"
	"time"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RelayAudit records every relay attempt after the handler has run,
// successful or not. Preflights are not relays and are skipped.
func RelayAudit(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		auditSvc.Log(c.Request.Context(), &domain.RelayAudit{
			ID:             uuid.New(),
			RequestID:      c.GetString(CtxRequestID),
			Operation:      c.GetString(CtxOperation),
			Environment:    c.GetString(CtxEnvironment),
			UpstreamStatus: c.GetInt(CtxUpstreamStatus),
			ProxyStatus:    c.Writer.Status(),
			LatencyMS:      time.Since(start).Milliseconds(),
			IPAddress:      c.ClientIP(),
			CreatedAt:      time.Now(),
		})
	}
}
