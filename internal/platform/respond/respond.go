package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Arturstriker3/test-portdata/internal/platform/logging"
)

const (
	msgNotFound          = "Resource not found."
	msgMethodNotAllowed  = "Method not allowed."
	msgInternalServerErr = "Internal server error."
)

// Error is the body of every failing response: a single human-readable
// message. It implements huma.StatusError so handlers can return it
// directly and Huma renders it with the right status code.
type Error struct {
	status  int
	Message string `json:"message" doc:"Human-readable description of the failure" example:"Contact not found."`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.status)
}

func (e *Error) GetStatus() int {
	return e.status
}

var installOnce sync.Once

// Install replaces Huma's default RFC 7807 error model with the plain
// {message} payload and funnels every error through status-aware logging.
// Must run before routes are registered so generated docs pick up the
// shape. Safe to call more than once.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return newError(context.Background(), status, msg, errs...)
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return newError(goCtx, status, msg, errs...)
		}
	})
}

func newError(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	// Huma probes the error type with status 0 while registering
	// operations; nothing to log there.
	if status == 0 {
		return &Error{status: status, Message: msg}
	}
	message := messageOrDefault(status, msg)
	logWithStatus(ctx, status, message, joinErrors(errs))
	return &Error{status: status, Message: message}
}

// Write serializes v as JSON to the ResponseWriter.
func Write(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteMessage renders a {message} error body with the given status,
// logging through the request-scoped logger.
func WriteMessage(w http.ResponseWriter, ctx context.Context, status int, msg string, errs ...error) error {
	se := newError(ctx, status, msg, errs...)
	return Write(w, status, se)
}

// NotFoundHandler renders unmatched routes as a JSON 404.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := WriteMessage(w, r.Context(), http.StatusNotFound, msgNotFound); err != nil {
			logging.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler renders a JSON 405 with an Allow header listing
// the methods the matched route does support.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		if err := WriteMessage(w, r.Context(), http.StatusMethodNotAllowed, msgMethodNotAllowed); err != nil {
			logging.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into JSON 500 responses. The panic value and
// stack are logged, never returned to the client.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					err = fmt.Errorf("%w\n%s", err, debug.Stack())
					if writeErr := WriteMessage(w, r.Context(), http.StatusInternalServerError, msgInternalServerErr, err); writeErr != nil {
						logging.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func logWithStatus(ctx context.Context, status int, msg string, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	fields := []zap.Field{zap.Int("status", status)}
	switch {
	case status >= 500:
		logging.LogError(ctx, msg, err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logging.LogWarn(ctx, msg, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logging.LogInfo(ctx, msg, fields...)
	}
}
