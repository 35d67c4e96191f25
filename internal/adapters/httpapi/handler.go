// Package httpapi exposes the relay endpoints over HTTP with gin.
package httpapi

import (
	"context"
	"net/http"

	"github.com/bnema/graph-presence-cli/internal/adapters/metrics"
	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid JSON body"

// Endpoints is the relay surface served by the handler.
type Endpoints interface {
	Token(ctx context.Context, req domain.TokenRequest) domain.APIResponse
	Presence(ctx context.Context, req domain.PresenceRequest) domain.APIResponse
}

type Handler struct {
	Endpoints Endpoints
	Metrics   *metrics.Metrics
}

func (h *Handler) Token(c *gin.Context) {
	var req domain.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	resp := h.Endpoints.Token(c.Request.Context(), req)
	c.JSON(resp.StatusCode, resp.Body)
}

func (h *Handler) Presence(c *gin.Context) {
	var req domain.PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	resp := h.Endpoints.Presence(c.Request.Context(), req)
	if h.Metrics != nil {
		h.Metrics.ObservePresenceAction(actionLabel(req.Action), resp.StatusCode)
	}
	c.JSON(resp.StatusCode, resp.Body)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// actionLabel keeps metric cardinality bounded to the known actions.
func actionLabel(raw string) string {
	action, err := domain.ParseAction(raw)
	if err != nil {
		return "unknown"
	}
	return string(action)
}
