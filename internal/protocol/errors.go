package protocol

import "errors"

var (
	ErrStanzaTooLarge = errors.New("protocol: stanza too large")
	ErrMalformedXML   = errors.New("protocol: malformed xml")
	ErrEmptyStanza    = errors.New("protocol: empty stanza")
	ErrMissingField   = errors.New("protocol: missing required field")
	ErrInvariant      = errors.New("protocol: invariant violated")
)

// BuildError is returned by a fatal build path for the first violated rule.
type BuildError struct {
	Field   string
	Message string
	Reason  error
}

func (e *BuildError) Error() string {
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Reason
}

// MissingFieldError reports a required field that has not been set.
func MissingFieldError(field, message string) *BuildError {
	return &BuildError{Field: field, Message: message, Reason: ErrMissingField}
}

// InvariantError reports a cross-field or cross-entity rule that does not hold.
func InvariantError(message string) *BuildError {
	return &BuildError{Message: message, Reason: ErrInvariant}
}
