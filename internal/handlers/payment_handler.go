package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/models"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	Authorize(ctx context.Context, req models.PaymentRequest) models.PaymentResponse
}

type PaymentHandler struct {
	Service PaymentService
	Log     logrus.FieldLogger
}

func NewPaymentHandler(s PaymentService, log logrus.FieldLogger) *PaymentHandler {
	return &PaymentHandler{Service: s, Log: log}
}

// POST /api/v1/payments
func (h *PaymentHandler) Authorize(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Log.Debugf("rejecting payment request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	resp := h.Service.Authorize(c.Request.Context(), req)
	c.JSON(statusCode(resp.Status), resp)
}

func statusCode(s models.PaymentStatus) int {
	switch s {
	case models.PaymentAuthorized:
		return http.StatusOK
	case models.PaymentRejected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
