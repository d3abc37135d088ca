package contacts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Arturstriker3/test-portdata/internal/platform/middleware"
	"github.com/Arturstriker3/test-portdata/internal/platform/pagination"
	contactsvc "github.com/Arturstriker3/test-portdata/internal/service/contact"
)

// emptyPageError is the 404 body for a list window with no rows. It
// carries the resolved page and limit alongside the message so clients
// can tell which window came up empty.
type emptyPageError struct {
	Message string `json:"message" doc:"Human-readable description of the failure" example:"No contacts found."`
	Page    int    `json:"page" doc:"Resolved page number" example:"3"`
	Limit   int    `json:"limit" doc:"Resolved page size" example:"10"`
}

func (e *emptyPageError) Error() string { return e.Message }

func (e *emptyPageError) GetStatus() int { return http.StatusNotFound }

// Register wires contact routes into the provided API router. The prefix
// is prepended to Location and Link header URLs.
func Register(api huma.API, repo contactsvc.Repository, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-contact",
		Method:      http.MethodGet,
		Path:        "/contacts/{id}",
		Summary:     "Get a contact by ID",
		Description: "Retrieves a single contact. Unknown and non-numeric IDs answer 404.",
		Tags:        []string{"Contacts"},
	}, func(ctx context.Context, input *ContactGetInput) (*ContactGetOutput, error) {
		c, err := repo.FindByID(ctx, parseID(input.ID))
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return &ContactGetOutput{Body: toHTTPContact(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contacts",
		Method:      http.MethodGet,
		Path:        "/contacts",
		Summary:     "List contacts with page-based pagination",
		Description: "Returns a page of contacts ordered by ID. Any empty window, including an empty table and pages past the end, answers 404 with the resolved page and limit.",
		Tags:        []string{"Contacts"},
		Middlewares: huma.Middlewares{
			middleware.AllowedQueryParams(api, msgUnknownQueryKey, "page", "limit"),
		},
	}, func(ctx context.Context, input *ContactListInput) (*ContactListOutput, error) {
		page, limit, err := input.Resolve()
		if err != nil {
			return nil, huma.Error400BadRequest(msgInvalidPagination)
		}

		offset := pagination.Offset(page, limit)
		result, err := repo.FindPage(ctx, offset, limit)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if len(result.Contacts) == 0 {
			return nil, &emptyPageError{Message: msgNoContactsFound, Page: page, Limit: limit}
		}

		contacts := make([]Contact, 0, len(result.Contacts))
		for i := range result.Contacts {
			contacts = append(contacts, toHTTPContact(&result.Contacts[i]))
		}

		var nextPage, prevPage int
		if int64(offset)+int64(len(result.Contacts)) < result.Total {
			nextPage = page + 1
		}
		if page > 1 {
			prevPage = page - 1
		}
		query := url.Values{"limit": {strconv.Itoa(limit)}}

		return &ContactListOutput{
			Link: pagination.BuildLinkHeader(prefix+"/contacts", query, nextPage, prevPage),
			Body: ContactListBody{
				Page:     page,
				Limit:    limit,
				Total:    result.Total,
				Contacts: contacts,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-contact",
		Method:        http.MethodPost,
		Path:          "/contacts",
		Summary:       "Create a contact",
		Description:   "Creates a contact from a name and a phone number. Checks run in order: both fields present, no extraneous fields, name pattern, phone pattern.",
		Tags:          []string{"Contacts"},
		DefaultStatus: http.StatusCreated,
		RequestBody:   contactRequestBody(true),
	}, func(ctx context.Context, input *ContactCreateInput) (*ContactCreateOutput, error) {
		params, err := decodeCreate(input.RawBody)
		if err != nil {
			return nil, err
		}

		c, err := repo.Create(ctx, params)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return &ContactCreateOutput{
			Location: fmt.Sprintf("%s/contacts/%d", prefix, c.ID),
			Body:     toHTTPContact(c),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-contact",
		Method:      http.MethodPatch,
		Path:        "/contacts/{id}",
		Summary:     "Update a contact",
		Description: "Partially updates a contact. Only supplied fields change; null and empty-string fields are ignored. An empty body is a valid no-op that still refreshes updatedAt.",
		Tags:        []string{"Contacts"},
		RequestBody: contactRequestBody(false),
	}, func(ctx context.Context, input *ContactUpdateInput) (*ContactUpdateOutput, error) {
		// Existence is checked before the body so an unknown ID answers
		// 404 even when the payload is invalid.
		id := parseID(input.ID)
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, mapRepositoryError(err)
		}

		params, err := decodeUpdate(input.RawBody)
		if err != nil {
			return nil, err
		}

		c, err := repo.Update(ctx, id, params)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return &ContactUpdateOutput{Body: toHTTPContact(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-contact",
		Method:        http.MethodDelete,
		Path:          "/contacts/{id}",
		Summary:       "Delete a contact",
		Description:   "Permanently deletes a contact.",
		Tags:          []string{"Contacts"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *ContactDeleteInput) (*struct{}, error) {
		if err := repo.Delete(ctx, parseID(input.ID)); err != nil {
			return nil, mapRepositoryError(err)
		}
		return nil, nil
	})
}

// contactRequestBody documents the create/update payload. Bodies arrive
// as RawBody so the ordered checks in validate.go own every rejection
// message; Required stays false to keep empty bodies flowing to them.
func contactRequestBody(allFieldsRequired bool) *huma.RequestBody {
	schema := &huma.Schema{
		Type: huma.TypeObject,
		Properties: map[string]*huma.Schema{
			"name": {
				Type:        huma.TypeString,
				Pattern:     namePattern,
				Description: "Full name: at least two words with at least 3 letters each",
				Examples:    []any{"Artur Daniel"},
			},
			"phone": {
				Type:        huma.TypeString,
				Pattern:     phonePattern,
				Description: "Phone in the format XX9XXXXXXXX: two-digit area code, literal 9, eight digits",
				Examples:    []any{"84999999999"},
			},
		},
		AdditionalProperties: false,
	}
	if allFieldsRequired {
		schema.Required = []string{"name", "phone"}
	}
	return &huma.RequestBody{
		Content: map[string]*huma.MediaType{
			"application/json": {Schema: schema},
		},
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, contactsvc.ErrNotFound) {
		return huma.Error404NotFound(msgContactNotFound)
	}
	return huma.Error500InternalServerError(msgInternalError, err)
}
