package request

// CheckRequest is the request body for checking an answer.
// A non-blank Word takes precedence over Letters.
type CheckRequest struct {
	Word    string   `json:"word,omitempty"`
	Letters []string `json:"letters,omitempty"`
}

// SetSlotRequest is the request body for entering one letter
type SetSlotRequest struct {
	Letter string `json:"letter"`
}
