package store

import (
	"errors"
	"fmt"
)

// ErrSiteInUse is returned when a site is still referenced by the journal.
var ErrSiteInUse = errors.New("impossibile eliminare il cantiere perché è utilizzato nel giornale dei lavori; rimuovere prima i lavori associati")

// ConflictError describes a refused mutation. State is left untouched.
type ConflictError struct {
	Op       string
	Resource string
	ID       int64
	Name     string
	Err      error
}

func (e *ConflictError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }
