package source

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports every required field absent from a source
// document at once, so one parse attempt surfaces the whole problem instead
// of failing field by field. The batch loop logs the record as skipped and
// proceeds.
type MissingFieldsError struct {
	Source string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s document missing required fields: %s",
		e.Source, strings.Join(e.Fields, ", "))
}
