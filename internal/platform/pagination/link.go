package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader constructs an RFC 8288 Link header pointing at the
// neighbouring pages, preserving existing query params. A page of 0 means
// that neighbour does not exist and produces no link.
func BuildLinkHeader(baseURL string, query url.Values, nextPage, prevPage int) string {
	var links []string
	if nextPage > 0 {
		q := cloneValues(query)
		q.Set("page", fmt.Sprintf("%d", nextPage))
		links = append(links, fmt.Sprintf("<%s?%s>; rel=\"next\"", baseURL, q.Encode()))
	}
	if prevPage > 0 {
		q := cloneValues(query)
		q.Set("page", fmt.Sprintf("%d", prevPage))
		links = append(links, fmt.Sprintf("<%s?%s>; rel=\"prev\"", baseURL, q.Encode()))
	}
	return strings.Join(links, ", ")
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return make(url.Values)
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
