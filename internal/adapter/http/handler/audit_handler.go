package handler

import (
	"gaps-gateway/internal/adapter/http/dto"
	"gaps-gateway/internal/core/ports"
	"gaps-gateway/pkg/apperror"
	"gaps-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes recorded relay audits.
type AuditHandler struct {
	reader ports.AuditReader
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(reader ports.AuditReader) *AuditHandler {
	return &AuditHandler{reader: reader}
}

// ListRecent handles GET /audits?limit=N.
func (h *AuditHandler) ListRecent(c *gin.Context) {
	var q dto.AuditListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.ErrInvalidField("limit", "range"))
		return
	}

	audits, err := h.reader.ListRecent(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.ToRelayAuditResponse(audits))
}
