package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signal-webhook/metrics"
	"signal-webhook/models"
)

type SignalsHandler struct {
	Store  SignalStore
	Logger *zap.Logger
}

func (h *SignalsHandler) Register(r *gin.Engine) {
	r.GET("/signals", h.listPage)
	r.POST("/signals", h.clearAll)

	api := r.Group("/api")
	{
		api.GET("/signals", h.listJSON)
		api.GET("/stats", h.stats)
	}
}

type signalsPage struct {
	Signals []models.Signal
}

func (h *SignalsHandler) listPage(c *gin.Context) {
	signals, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("list signals failed", zap.Error(err))
		errorPage(c, http.StatusInternalServerError, "Failed to load signals")
		return
	}
	c.HTML(http.StatusOK, "signals.html", signalsPage{Signals: signals})
}

func (h *SignalsHandler) clearAll(c *gin.Context) {
	if err := h.Store.ClearAll(c.Request.Context()); err != nil {
		h.Logger.Error("clear signals failed", zap.Error(err))
		errorPage(c, http.StatusInternalServerError, "Failed to delete signals")
		return
	}
	metrics.RecordCleared()
	h.Logger.Info("signals cleared")
	c.Redirect(http.StatusSeeOther, "/signals")
}

func (h *SignalsHandler) listJSON(c *gin.Context) {
	signals, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, signals)
}

func (h *SignalsHandler) stats(c *gin.Context) {
	stats, err := h.Store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
