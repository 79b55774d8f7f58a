package collections

// Deque is a double-ended queue with an optional bound. When full, pushing
// onto one end evicts from the other.
type Deque struct {
	items  []any
	maxLen int
}

// NewDeque returns a deque bounded to maxLen elements. maxLen <= 0 means unbounded.
func NewDeque(maxLen int, items ...any) *Deque {
	d := &Deque{maxLen: maxLen}
	for _, item := range items {
		d.PushBack(item)
	}
	return d
}

func (d *Deque) PushBack(item any) {
	if d.maxLen > 0 && len(d.items) == d.maxLen {
		d.items = d.items[1:]
	}

	d.items = append(d.items, item)
}

func (d *Deque) PushFront(item any) {
	if d.maxLen > 0 && len(d.items) == d.maxLen {
		d.items = d.items[:len(d.items)-1]
	}

	d.items = append([]any{item}, d.items...)
}

func (d *Deque) PopBack() (any, bool) {
	if len(d.items) == 0 {
		return nil, false
	}

	item := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return item, true
}

func (d *Deque) PopFront() (any, bool) {
	if len(d.items) == 0 {
		return nil, false
	}

	item := d.items[0]
	d.items = d.items[1:]
	return item, true
}

func (d *Deque) Len() int {
	return len(d.items)
}

func (d *Deque) MaxLen() int {
	return d.maxLen
}

func (d *Deque) Items() []any {
	items := make([]any, len(d.items))
	copy(items, d.items)
	return items
}
