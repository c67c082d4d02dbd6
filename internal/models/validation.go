package models

// ValidationError is a typed shape violation. Field is empty when the
// violation spans the whole input.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}
