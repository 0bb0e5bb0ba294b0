package addressbook

import "errors"

// Sentinel errors returned by the address book. Callers match them with errors.Is.
var (
	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrPhoneNotFound   = errors.New("phone not found")
	ErrContactNotFound = errors.New("contact not found")
	ErrBirthdayNotSet  = errors.New("birthday not set")
)

// FieldKind identifies which validated field rejected a value.
type FieldKind string

const (
	KindName     FieldKind = "name"
	KindPhone    FieldKind = "phone"
	KindBirthday FieldKind = "birthday"
)

// ValidationError reports a raw value that does not satisfy the format rule
// of its field. Reason is meant to be shown to the user as is.
type ValidationError struct {
	Kind   FieldKind
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(kind FieldKind, value, reason string) error {
	return &ValidationError{Kind: kind, Value: value, Reason: reason}
}

// NotFoundError reports a lookup that found nothing. Err is one of the
// *NotFound / *NotSet sentinels and Key is what was looked up.
type NotFoundError struct {
	Err error
	Key string
}

func (e *NotFoundError) Error() string {
	return e.Err.Error() + ": " + e.Key
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ContactNotFound reports that no record is stored under name.
func ContactNotFound(name string) error {
	return &NotFoundError{Err: ErrContactNotFound, Key: name}
}

// BirthdayNotSet reports that the record called name has no birthday.
func BirthdayNotSet(name string) error {
	return &NotFoundError{Err: ErrBirthdayNotSet, Key: name}
}

// PhoneNotFound reports that number is not among the phones of a record.
func PhoneNotFound(number string) error {
	return &NotFoundError{Err: ErrPhoneNotFound, Key: number}
}
