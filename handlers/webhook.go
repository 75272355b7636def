package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signal-webhook/database"
	"signal-webhook/ingest"
	"signal-webhook/metrics"
)

const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	Parser *ingest.Parser
	Store  SignalStore
	Logger *zap.Logger
}

func (h *WebhookHandler) Register(r *gin.Engine) {
	r.POST("/webhook", h.webhook)
}

func (h *WebhookHandler) webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		err = fmt.Errorf("%w: read body: %w", ingest.ErrMalformedPayload, err)
		h.reject(err)
		c.JSON(errorResponse(err))
		return
	}
	c.JSON(h.Handle(c.Request.Context(), body))
}

// Handle runs parse, normalize and store for one webhook body. It never
// returns a Go error: every failure becomes the uniform error response.
func (h *WebhookHandler) Handle(ctx context.Context, body []byte) (int, WebhookResponse) {
	parsed, err := h.Parser.Parse(body)
	if err != nil {
		h.reject(err)
		return errorResponse(err)
	}

	displayTime, err := ingest.Normalize(parsed.RawTime)
	if err != nil {
		h.reject(err)
		return errorResponse(err)
	}

	stored, err := h.Store.Append(ctx, parsed.Signal(displayTime))
	if err != nil {
		h.reject(err)
		return errorResponse(err)
	}

	metrics.RecordAccepted(stored.Event)
	h.Logger.Info("signal accepted",
		zap.Uint("id", stored.ID),
		zap.String("event", strings.ToUpper(stored.Event)),
		zap.String("symbol", stored.Symbol),
		zap.Float64("price", stored.Price()),
		zap.String("display_time", stored.DisplayTime),
	)
	return successResponse()
}

func (h *WebhookHandler) reject(err error) {
	kind := failureKind(err)
	metrics.RecordRejected(kind)
	if kind == "storage" {
		h.Logger.Error("webhook rejected", zap.String("kind", kind), zap.Error(err))
		return
	}
	h.Logger.Warn("webhook rejected", zap.String("kind", kind), zap.Error(err))
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ingest.ErrMalformedPayload):
		return "malformed_payload"
	case errors.Is(err, ingest.ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, database.ErrStorage):
		return "storage"
	default:
		return "unknown"
	}
}
