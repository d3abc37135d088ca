package contacts

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	contactsvc "github.com/Arturstriker3/test-portdata/internal/service/contact"
)

// User-facing messages. These are part of the API contract; tests assert
// them verbatim.
const (
	msgContactNotFound   = "Contact not found."
	msgNoContactsFound   = "No contacts found."
	msgUnknownQueryKey   = "Only page and limit query parameters are allowed."
	msgInvalidPagination = "Page and limit must be positive integers."
	msgInvalidBody       = "Invalid request body."
	msgMissingFields     = "Name and phone are required."
	msgExtraneousFields  = "Only name and phone fields are allowed."
	msgInvalidName       = "Name must contain at least two words with at least 3 letters each."
	msgInvalidPhone      = "Phone must be in the format XX9XXXXXXXX."
	msgInternalError     = "Internal server error."
)

// Validation patterns, shared with the OpenAPI request schemas.
const (
	namePattern  = `^[A-Za-zÀ-ÿ]{3,}(?:\s+[A-Za-zÀ-ÿ]{3,})+$`
	phonePattern = `^[0-9]{2}9[0-9]{8}$`
)

var (
	nameRe  = regexp.MustCompile(namePattern)
	phoneRe = regexp.MustCompile(phonePattern)
)

// parseID coerces a path id. Non-numeric input becomes a sentinel that
// matches no record, so junk ids surface as 404 rather than 400.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}
	return id
}

// fieldState classifies a body field the way loose JavaScript truthiness
// did in the original API: absent, null and empty string all count as
// not supplied.
type fieldState int

const (
	fieldMissing fieldState = iota
	fieldPresent
	fieldNotString
)

func classifyField(body map[string]json.RawMessage, key string) (string, fieldState) {
	raw, ok := body[key]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return "", fieldMissing
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fieldNotString
	}
	if s == "" {
		return "", fieldMissing
	}
	return s, fieldPresent
}

func extraneousKeys(body map[string]json.RawMessage) bool {
	for key := range body {
		if key != "name" && key != "phone" {
			return true
		}
	}
	return false
}

// decodeCreate validates a create body in order: presence, extraneous
// keys, name pattern, phone pattern. The first failure wins.
func decodeCreate(raw []byte) (contactsvc.CreateParams, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return contactsvc.CreateParams{}, huma.Error400BadRequest(msgInvalidBody)
	}

	name, nameState := classifyField(body, "name")
	phone, phoneState := classifyField(body, "phone")

	if nameState == fieldMissing || phoneState == fieldMissing {
		return contactsvc.CreateParams{}, huma.Error400BadRequest(msgMissingFields)
	}
	if extraneousKeys(body) {
		return contactsvc.CreateParams{}, huma.Error400BadRequest(msgExtraneousFields)
	}
	if nameState != fieldPresent || !nameRe.MatchString(name) {
		return contactsvc.CreateParams{}, huma.Error400BadRequest(msgInvalidName)
	}
	if phoneState != fieldPresent || !phoneRe.MatchString(phone) {
		return contactsvc.CreateParams{}, huma.Error400BadRequest(msgInvalidPhone)
	}

	return contactsvc.CreateParams{Name: name, Phone: phone}, nil
}

// decodeUpdate validates a partial update body. Absent, null and
// empty-string fields are skipped; supplied fields must pass the same
// patterns as create. An empty body is a valid no-op.
func decodeUpdate(raw []byte) (contactsvc.UpdateParams, error) {
	params := contactsvc.UpdateParams{}

	if len(bytes.TrimSpace(raw)) == 0 {
		return params, nil
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return params, huma.Error400BadRequest(msgInvalidBody)
	}

	if extraneousKeys(body) {
		return params, huma.Error400BadRequest(msgExtraneousFields)
	}

	name, nameState := classifyField(body, "name")
	if nameState == fieldNotString || (nameState == fieldPresent && !nameRe.MatchString(name)) {
		return params, huma.Error400BadRequest(msgInvalidName)
	}
	phone, phoneState := classifyField(body, "phone")
	if phoneState == fieldNotString || (phoneState == fieldPresent && !phoneRe.MatchString(phone)) {
		return params, huma.Error400BadRequest(msgInvalidPhone)
	}

	if nameState == fieldPresent {
		params.Name = &name
	}
	if phoneState == fieldPresent {
		params.Phone = &phone
	}
	return params, nil
}
