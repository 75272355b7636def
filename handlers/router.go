package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signal-webhook/ingest"
	"signal-webhook/metrics"
	"signal-webhook/templates"
)

type RouterConfig struct {
	Store       SignalStore
	Logger      *zap.Logger
	MetricsPath string // empty disables /metrics
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(metrics.Middleware())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", Home)

	webhook := &WebhookHandler{Parser: ingest.NewParser(), Store: cfg.Store, Logger: cfg.Logger}
	webhook.Register(r)

	signals := &SignalsHandler{Store: cfg.Store, Logger: cfg.Logger}
	signals.Register(r)

	health := &HealthHandler{Store: cfg.Store}
	health.Register(r)

	if cfg.MetricsPath != "" {
		r.GET(cfg.MetricsPath, gin.WrapH(metrics.Handler()))
	}

	return r, nil
}
