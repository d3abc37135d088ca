package middleware

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// AllowedQueryParams returns a Huma operation middleware that rejects any
// request carrying a query parameter outside the allowed set, answering
// with a 400 and the given message. Operations that don't mount it keep
// ignoring unexpected query strings.
func AllowedQueryParams(api huma.API, message string, allowed ...string) func(huma.Context, func(huma.Context)) {
	allow := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allow[key] = struct{}{}
	}

	return func(ctx huma.Context, next func(huma.Context)) {
		u := ctx.URL()
		for key := range u.Query() {
			if _, ok := allow[key]; !ok {
				_ = huma.WriteErr(api, ctx, http.StatusBadRequest, message)
				return
			}
		}
		next(ctx)
	}
}
