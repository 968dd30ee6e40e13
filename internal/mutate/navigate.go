package mutate

// Navigation never changes document content; Relayout is set when the depth
// changes, since that changes which subtrees are expanded.

// Move shifts the selection by n (negative moves up), wrapping at either end.
func (e Editor) Move(n int) (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if n >= 0 {
		e.Cur.MoveDown(n, len(*list))
	} else {
		e.Cur.MoveUp(-n, len(*list))
	}
	return noop, nil
}

// Enter descends into the selected node's children, if it has any.
func (e Editor) Enter() (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if len(*list) == 0 {
		return noop, nil
	}
	n, err := e.Cur.Node(&e.Doc.Items)
	if err != nil {
		return noop, err
	}
	if n == nil || !n.HasChildren() {
		return noop, nil
	}
	e.Cur.Push(0)
	return Result{Relayout: true}, nil
}

// Leave ascends one level; a no-op at the top level.
func (e Editor) Leave() (Result, error) {
	if e.Cur.Depth() <= 1 {
		return noop, nil
	}
	if _, err := e.Cur.Pop(); err != nil {
		return noop, err
	}
	return Result{Relayout: true}, nil
}

func (e Editor) First() (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if len(*list) > 0 {
		e.Cur.SetLast(0)
	}
	return noop, nil
}

func (e Editor) LastItem() (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if len(*list) > 0 {
		e.Cur.SetLast(len(*list) - 1)
	}
	return noop, nil
}

// Goto jumps to a 1-based position; see cursor.Path.Goto.
func (e Editor) Goto(input string) (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if err := e.Cur.Goto(input, len(*list)); err != nil {
		return noop, err
	}
	return noop, nil
}
