package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(signalsAccepted.WithLabelValues("buy"))
	RecordAccepted("buy")
	if got := testutil.ToFloat64(signalsAccepted.WithLabelValues("buy")); got != before+1 {
		t.Fatalf("accepted counter = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(rejections.WithLabelValues("storage"))
	RecordRejected("storage")
	if got := testutil.ToFloat64(rejections.WithLabelValues("storage")); got != before+1 {
		t.Fatalf("rejections counter = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(signalsCleared)
	RecordCleared()
	if got := testutil.ToFloat64(signalsCleared); got != before+1 {
		t.Fatalf("cleared counter = %v, want %v", got, before+1)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}

	if n := testutil.CollectAndCount(requestDuration, "signal_webhook_http_request_duration_seconds"); n == 0 {
		t.Fatalf("expected request duration samples")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected metrics status %d", w.Code)
	}
}
