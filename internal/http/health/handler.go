package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Arturstriker3/test-portdata/internal/platform/respond"
)

// PingFunc probes a dependency. A nil PingFunc means there is nothing to
// probe and the process is healthy whenever it can answer.
type PingFunc func(ctx context.Context) error

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// New returns a plain HTTP handler for the health check endpoint. When a
// ping is supplied (the database pool, in practice) a failing probe turns
// the response into a 503 so load balancers stop routing here.
func New(ping PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				_ = respond.Write(w, http.StatusServiceUnavailable, Response{Status: "unavailable"})
				return
			}
		}
		_ = respond.Write(w, http.StatusOK, Response{Status: "healthy"})
	}
}
