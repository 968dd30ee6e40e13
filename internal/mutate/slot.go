package mutate

import "todo-cli/internal/model"

// Slot holds at most one deleted node for a single undo. It is deliberately
// not a stack.
type Slot struct {
	node *model.Node
	// from is the path the node was deleted from; after is the cursor right
	// after the delete. Restoring while the cursor still equals after puts the
	// node back exactly where it was.
	from  []int
	after []int
}

func (s *Slot) Put(n model.Node, from, after []int) {
	s.node = &n
	s.from = from
	s.after = after
}

// forgetOrigin drops the recorded position once the tree has been reshaped,
// so a later restore goes to the cursor instead of a stale path.
func (s *Slot) forgetOrigin() {
	if s == nil {
		return
	}
	s.from = nil
	s.after = nil
}

func (s *Slot) Occupied() bool { return s != nil && s.node != nil }

func (s *Slot) Peek() (model.Node, bool) {
	if !s.Occupied() {
		return model.Node{}, false
	}
	return *s.node, true
}

// Take empties the slot and returns its node.
func (s *Slot) Take() (model.Node, bool) {
	n, ok := s.Peek()
	s.Clear()
	return n, ok
}

func (s *Slot) Clear() {
	if s == nil {
		return
	}
	s.node = nil
	s.from = nil
	s.after = nil
}
