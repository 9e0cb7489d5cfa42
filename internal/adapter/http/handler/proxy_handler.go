package handler

import (
	"net/http"

	"gaps-gateway/internal/adapter/http/dto"
	"gaps-gateway/internal/adapter/http/middleware"
	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"
	"gaps-gateway/pkg/apperror"
	"gaps-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// defaultRelayContentType is used when the gateway omits Content-Type.
const defaultRelayContentType = "text/xml;charset=UTF-8"

// ProxyHandler serves the relay endpoint.
type ProxyHandler struct {
	relaySvc ports.RelayService
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(relaySvc ports.RelayService) *ProxyHandler {
	return &ProxyHandler{relaySvc: relaySvc}
}

// Relay handles POST /. The gateway's answer is written back untouched;
// every failure becomes a 500 relay error envelope.
func (h *ProxyHandler) Relay(c *gin.Context) {
	var req dto.ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RelayError(c, dto.BindingError(err))
		return
	}

	env := req.ToEnvelope()
	if op, ok := domain.ParseOperation(env.Endpoint); ok {
		c.Set(middleware.CtxOperation, op.Path())
	}
	c.Set(middleware.CtxEnvironment, domain.EnvironmentName(env.UseSandbox))

	reply, err := h.relaySvc.Relay(c.Request.Context(), env)
	if err != nil {
		if te, ok := apperror.AsTransport(err); ok && te.StatusCode > 0 {
			c.Set(middleware.CtxUpstreamStatus, te.StatusCode)
		}
		response.RelayError(c, err)
		return
	}

	c.Set(middleware.CtxUpstreamStatus, reply.StatusCode)

	contentType := reply.ContentType
	if contentType == "" {
		contentType = defaultRelayContentType
	}
	c.Data(http.StatusOK, contentType, []byte(reply.Body))
}
