package deposit

import (
	"errors"
	"fmt"
)

var (
	// ErrPublishedRecord indicates a delete was attempted on a record
	// that has already been published. Published records are immutable
	// and can only be superseded with a new version.
	ErrPublishedRecord = errors.New("record is published and cannot be deleted")

	// ErrNoBucket indicates the record response carried no bucket link.
	ErrNoBucket = errors.New("record has no file bucket link")
)

// APIError is a non-2xx response from the deposit API. It is distinct
// from transport errors; the body is kept for operator inspection.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Status, e.Body)
}
