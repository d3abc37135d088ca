package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/Arturstriker3/test-portdata/internal/platform/respond"
)

const queryMessage = "Only page and limit query parameters are allowed."

func newQueryGuardRouter(t *testing.T) *chi.Mux {
	t.Helper()

	respond.Install()
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("queryparams test", "0.0.0"))

	huma.Register(api, huma.Operation{
		OperationID: "list-things",
		Method:      http.MethodGet,
		Path:        "/things",
		Middlewares: huma.Middlewares{AllowedQueryParams(api, queryMessage, "page", "limit")},
	}, func(ctx context.Context, input *struct {
		Page  string `query:"page"`
		Limit string `query:"limit"`
	}) (*struct {
		Body struct {
			OK bool `json:"ok"`
		}
	}, error) {
		out := &struct {
			Body struct {
				OK bool `json:"ok"`
			}
		}{}
		out.Body.OK = true
		return out, nil
	})

	return router
}

func TestAllowedQueryParamsPassesKnownKeys(t *testing.T) {
	router := newQueryGuardRouter(t)

	for _, target := range []string{"/things", "/things?page=2", "/things?page=2&limit=5"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d (%s)", target, resp.Code, resp.Body.String())
		}
	}
}

func TestAllowedQueryParamsRejectsUnknownKeys(t *testing.T) {
	router := newQueryGuardRouter(t)

	for _, target := range []string{
		"/things?foo=1",
		"/things?page=1&foo=2",
		"/things?page=1&limit=10&sort=name",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, resp.Code)
		}

		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: failed to unmarshal body: %v", target, err)
		}
		if body.Message != queryMessage {
			t.Fatalf("%s: unexpected message %q", target, body.Message)
		}
	}
}
