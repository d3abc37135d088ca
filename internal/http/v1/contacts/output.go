package contacts

// ContactGetOutput for GET /contacts/{id}
type ContactGetOutput struct {
	Body Contact
}

// ContactListBody is the success payload for GET /contacts.
type ContactListBody struct {
	Page     int       `json:"page"     doc:"1-based page number"        example:"1"`
	Limit    int       `json:"limit"    doc:"Maximum records per page"   example:"10"`
	Total    int64     `json:"total"    doc:"Total number of contacts"   example:"15"`
	Contacts []Contact `json:"contacts" doc:"Contacts in this page"`
}

// ContactListOutput for GET /contacts (200 with Link header navigation)
type ContactListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 links to neighbouring pages"`
	Body ContactListBody
}

// ContactCreateOutput for POST /contacts (201 Created)
type ContactCreateOutput struct {
	Location string `header:"Location" doc:"URL of created contact"`
	Body     Contact
}

// ContactUpdateOutput for PATCH /contacts/{id}
type ContactUpdateOutput struct {
	Body Contact
}
