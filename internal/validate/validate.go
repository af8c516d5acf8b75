// Package validate checks admin form input before it touches the database.
// All functions are pure; rules differ between create (required fields must
// be present) and update (fields are optional but still constrained).
package validate

// Mode selects which required-field rules apply.
type Mode int

const (
	ForCreate Mode = iota
	ForUpdate
)

// FieldError ties a message to the form field it belongs to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is ordered: the first entry is the primary user-facing message.
type Errors []FieldError

func (e Errors) Valid() bool { return len(e) == 0 }

// First returns the primary message, or "" when the input is valid.
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}
