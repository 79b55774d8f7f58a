package collections

// Tuple is a fixed-length heterogeneous sequence. Unlike a plain []any it
// carries its own identity, so the identification engine can tell the two apart.
type Tuple []any

func NewTuple(items ...any) Tuple {
	return Tuple(items)
}

func (t Tuple) Len() int {
	return len(t)
}

func (t Tuple) Items() []any {
	items := make([]any, len(t))
	copy(items, t)
	return items
}
