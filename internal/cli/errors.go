package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"todo-cli/internal/store"
)

type overwriteError struct {
	path string
}

func (e overwriteError) Error() string {
	return fmt.Sprintf("%s already exists; open it, or delete it first", e.path)
}

func (e overwriteError) Unwrap() error { return fs.ErrExist }

type notFoundError struct {
	path string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("list not found: %s", e.path)
}

func (e notFoundError) Unwrap() error { return fs.ErrNotExist }

// explain turns store errors into messages that say what to do about them.
// Anything else is returned unchanged.
func explain(err error) error {
	var ioErr *store.IoError
	if errors.As(err, &ioErr) && errors.Is(err, fs.ErrExist) {
		return overwriteError{path: ioErr.Path}
	}
	var loadErr *store.LoadError
	if errors.As(err, &loadErr) && errors.Is(err, fs.ErrNotExist) {
		return notFoundError{path: loadErr.Path}
	}
	return err
}
