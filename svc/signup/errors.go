package signup

import "errors"

var (
	// ErrMalformedField is returned by DecodeForm when a value cannot be
	// converted to its field type.
	ErrMalformedField = errors.New("signup: malformed field value")

	// ErrPersistFailed is returned by Submit when a valid record could not be stored.
	ErrPersistFailed = errors.New("signup: failed to persist registration")

	// ErrInvalidTimezone is returned by NewService for an unknown IANA zone name.
	ErrInvalidTimezone = errors.New("signup: invalid timezone")

	// ErrInvalidHashCost is returned by NewService for a bcrypt cost out of range.
	ErrInvalidHashCost = errors.New("signup: invalid password hash cost")

	// ErrNotFound is returned by Store.Get for a missing key.
	ErrNotFound = errors.New("signup: key not found")
)
