package metrics

import (
	"fmt"
	"net/http"
	"time"

	vmetrics "github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"
)

// Recorder collects per-operation HTTP metrics into its own set, so tests
// and multiple servers never share state.
type Recorder struct {
	set *vmetrics.Set
}

// NewRecorder creates a recorder with an empty metrics set.
func NewRecorder() *Recorder {
	return &Recorder{set: vmetrics.NewSet()}
}

// Middleware returns Huma middleware that counts requests and observes
// their duration, labeled by method, route pattern and final status.
func (r *Recorder) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op, start := ctx.Operation(), time.Now()
		next(ctx)

		labels := fmt.Sprintf(`{method="%s",path="%s",status="%d"}`, op.Method, op.Path, ctx.Status())
		r.set.GetOrCreateHistogram("http_request_duration_seconds" + labels).UpdateDuration(start)
		r.set.GetOrCreateCounter("http_requests_total" + labels).Inc()
	}
}

// Handler serves the collected metrics in Prometheus text format, along
// with Go process metrics.
func (r *Recorder) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		r.set.WritePrometheus(w)
		vmetrics.WriteProcessMetrics(w)
	})
}
