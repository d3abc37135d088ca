package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Arturstriker3/test-portdata/internal/http/v1/contacts"
	"github.com/Arturstriker3/test-portdata/internal/platform/auth"
	contactsvc "github.com/Arturstriker3/test-portdata/internal/service/contact"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, verifier auth.Verifier, repo contactsvc.Repository) {
	prefix := apiPrefix(api)

	// Auth middleware runs on every request but only enforces bearer
	// tokens on operations that declare a security requirement. No
	// contact operation does, so the whole API stays open.
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	contacts.Register(api, repo, prefix)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
