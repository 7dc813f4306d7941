package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrContentNotFound means the file is absent from the content root and the
	// content sync step has to be run.
	ErrContentNotFound = errors.New("content not found")
	// ErrContentMalformed means the file is not valid JSON.
	ErrContentMalformed = errors.New("content malformed")
	// ErrContentInvalid means the file parsed but does not match its schema.
	ErrContentInvalid = errors.New("content invalid")
)

// ValidationError lists every schema violation found in one file.
type ValidationError struct {
	File       string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content file %s is invalid: %s", e.File, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrContentInvalid
}
