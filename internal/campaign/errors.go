package campaign

import (
	"errors"
	"fmt"
)

// ErrSchemaFieldMissing is returned by best-effort lookups when a field they
// need has no column in the current schema.
var ErrSchemaFieldMissing = errors.New("schema field missing")

// QueryError is a structural failure of one storage query.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("campaign: %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func queryError(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}
