package mutate

import "fmt"

// NoSelectionError is returned by operations that act on the selected node
// when the current list is empty. Nothing was changed.
type NoSelectionError struct {
	Op string
}

func (e NoSelectionError) Error() string {
	return fmt.Sprintf("%s: nothing selected", e.Op)
}
