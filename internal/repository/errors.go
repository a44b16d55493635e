package repository

import (
	"fmt"
	"strings"
)

// MissingIDsError reports ids of a batch that do not exist
type MissingIDsError struct {
	IDs []string
}

func (e *MissingIDsError) Error() string {
	return "records not found: " + strings.Join(e.IDs, ", ")
}

// ReferencedError reports that a row is still referenced by Count rows
type ReferencedError struct {
	Count int64
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("still referenced by %d rows", e.Count)
}
