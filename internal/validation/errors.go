package validation

import "errors"

// FieldError is a single failed rule.
type FieldError struct {
	Field        string `json:"field"`
	Tag          string `json:"-"`
	Message      string `json:"message"`
	Group        string `json:"group,omitempty"` // set for fields of a conditional group
	GroupMessage string `json:"-"`

	missing bool
}

// Error is returned when a request cannot satisfy its structural rules. Failures are kept in
// report order: missing fields first, then field rules in declaration order, then groups.
type Error struct {
	fields []FieldError
}

func (e *Error) Error() string {
	return e.First()
}

// First returns the first failing message, which is what the API reports.
func (e *Error) First() string {
	if len(e.fields) == 0 {
		return ""
	}
	return e.fields[0].Message
}

// FieldErrors returns every failure in report order.
func (e *Error) FieldErrors() []FieldError {
	return append([]FieldError(nil), e.fields...)
}

// Fields returns the messages the forms display: one per plain field, and one aggregated
// message per failed conditional group keyed by the group name.
func (e *Error) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for _, fe := range e.fields {
		if fe.Group != "" {
			if _, ok := out[fe.Group]; !ok {
				out[fe.Group] = fe.GroupMessage
			}
			continue
		}
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// AsError reports whether err is (or wraps) a validation failure.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
