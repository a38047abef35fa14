package apperr

import "errors"

// Kind classifies a business-rule failure so the HTTP adapter can map it to a
// status code without inspecting reason strings.
type Kind int

const (
	Internal Kind = iota
	Validation
	Permission
	NotFound
	Conflict
)

// Error carries a kind plus a short machine-stable reason (snake_case).
// The reason is what clients see; no internals leak through it.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func New(kind Kind, reason string) *Error { return &Error{Kind: kind, Reason: reason} }

// KindOf extracts the kind from err, Internal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }
