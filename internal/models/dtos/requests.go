package dtos

// AircraftForm carries the raw multipart fields for create/update. Values
// stay strings here; coercion and validation happen in the service so the
// rules live in one place. On update, empty strings mean "not supplied"
// unless the field was explicitly present (see Present).
type AircraftForm struct {
	Title        string
	Year         string
	Price        string
	Status       string
	Category     string
	Location     string
	Latitude     string
	Longitude    string
	Overview     string
	Description  string
	ContactAgent string
	Airframe     string
	Engine       string
	EngineTwo    string
	Propeller    string
	PropellerTwo string
	VideoURL     string
	Index        string
	KeepImages   string

	// Present records which field names appeared in the form at all,
	// preserving the partial-update semantics of multipart bodies.
	Present map[string]bool
}

// Has reports whether the named form field was supplied.
func (f *AircraftForm) Has(field string) bool {
	return f.Present[field]
}

// RegisterRequest is the auth register payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the auth login payload; email or username may be used.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// BulkDeleteRequest is the shared bulk-delete payload.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}
