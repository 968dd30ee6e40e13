package cursor

import "fmt"

// DepthError reports a path entry that does not index into its sibling list.
// It means the path went stale and was not repaired.
type DepthError struct {
	Depth int
	Index int
	Len   int
}

func (e DepthError) Error() string {
	return fmt.Sprintf("depth out of range: index %d at depth %d (list has %d items)", e.Index, e.Depth, e.Len)
}

// MinDepthError is returned when popping the root level.
type MinDepthError struct{}

func (e MinDepthError) Error() string {
	return "can't pop the root level"
}

// InvalidInputError is recoverable: the operation was a no-op.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e InvalidInputError) Error() string {
	if e.Input == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}
