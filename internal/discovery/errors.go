package discovery

import (
	"errors"
	"fmt"
)

var errIsDir = errors.New("is a directory")

// ConflictError reports a directory that contains both alternate rc filenames.
type ConflictError struct {
	Dir   string
	Names [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s contains both %s and %s. Please remove one of those files.", e.Dir, e.Names[0], e.Names[1])
}

// MissingExplicitError reports an explicitly requested rc file that does not exist.
type MissingExplicitError struct {
	Path string
	Err  error
}

func (e *MissingExplicitError) Error() string {
	return fmt.Sprintf("Unable to load ackrc '%s': %v", e.Path, e.Err)
}

func (e *MissingExplicitError) Unwrap() error { return e.Err }
