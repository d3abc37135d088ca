package pagination

import (
	"errors"
	"math"
	"strconv"
)

// Defaults applied when the client omits a parameter.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ErrInvalidParam reports a page or limit value that is not a positive integer.
var ErrInvalidParam = errors.New("page and limit must be positive integers")

// Params embeds into Huma input structs for page/limit pagination. Values
// arrive as raw strings so handlers keep control of defaulting and error
// responses; Huma itself never rejects the request.
type Params struct {
	Page  string `query:"page"  doc:"1-based page number"       example:"1"`
	Limit string `query:"limit" doc:"Maximum records per page"  example:"10"`
}

// Resolve validates both parameters and applies defaults. Absent or empty
// values fall back to DefaultPage/DefaultLimit; anything that does not
// parse as an integer >= 1 yields ErrInvalidParam.
func (p Params) Resolve() (page, limit int, err error) {
	page, err = resolve(p.Page, DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err = resolve(p.Limit, DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func resolve(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrInvalidParam
	}
	return n, nil
}

// Offset converts a 1-based page into the row offset of its window. The
// multiplication saturates at math.MaxInt so a page large enough to
// overflow resolves to a window past any data instead of wrapping around.
func Offset(page, limit int) int {
	if page <= 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
