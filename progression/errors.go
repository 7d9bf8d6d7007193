// progression/errors.go
package progression

import "errors"

var (
	// ErrStorageUnavailable wraps any failure of the persistence
	// collaborator. The call that hit it did not complete; the caller
	// should assume no partial credit.
	ErrStorageUnavailable = errors.New("progression: storage unavailable")

	// ErrInvalidAction marks a malformed stored record, such as a weekly
	// challenge referencing an unknown template.
	ErrInvalidAction = errors.New("progression: invalid action")
)
