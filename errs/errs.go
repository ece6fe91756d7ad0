// Package errs holds the error kinds shared by the containers in this module.
package errs

import "github.com/pkg/errors"

// ErrEmpty is returned (wrapped) when an element is removed from or looked up
// in a container that has no elements.
var ErrEmpty = errors.New("container is empty")

// Empty reports that op was attempted on an empty container. The result
// matches ErrEmpty under errors.Is and records a stack trace for %+v.
func Empty(op string) error {
	return errors.Wrap(ErrEmpty, op)
}
