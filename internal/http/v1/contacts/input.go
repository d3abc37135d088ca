package contacts

import "github.com/Arturstriker3/test-portdata/internal/platform/pagination"

// ContactGetInput for GET /contacts/{id}
type ContactGetInput struct {
	ID string `path:"id" doc:"Contact ID" example:"1"`
}

// ContactListInput for GET /contacts
type ContactListInput struct {
	pagination.Params
}

// ContactCreateInput for POST /contacts. The body arrives raw because the
// ordered validation and its exact messages are part of the API contract.
type ContactCreateInput struct {
	RawBody []byte
}

// ContactUpdateInput for PATCH /contacts/{id}
type ContactUpdateInput struct {
	ID      string `path:"id" doc:"Contact ID" example:"1"`
	RawBody []byte
}

// ContactDeleteInput for DELETE /contacts/{id}
type ContactDeleteInput struct {
	ID string `path:"id" doc:"Contact ID" example:"1"`
}
