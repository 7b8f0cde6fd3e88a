package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/broadcast"
)

type LogSource interface {
	Recent() []broadcast.Entry
}

type OpsHandler struct {
	Service string
	Logs    LogSource
}

func NewOpsHandler(service string, logs LogSource) *OpsHandler {
	return &OpsHandler{Service: service, Logs: logs}
}

// GET /health
func (h *OpsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP", "service": h.Service})
}

// GET /api/v1/logs/recent
func (h *OpsHandler) RecentLogs(c *gin.Context) {
	entries := h.Logs.Recent()
	if entries == nil {
		entries = []broadcast.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}
