package collections

// Counter is a multiset: it tracks how many times each element was added.
type Counter struct {
	counts map[any]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[any]int)}
}

// NewCounterFromString counts the runes of value, the same way a counter
// built from an iterable counts its elements.
func NewCounterFromString(value string) *Counter {
	counter := NewCounter()
	for _, r := range value {
		counter.Add(string(r))
	}
	return counter
}

func NewCounterFromItems(items ...any) *Counter {
	counter := NewCounter()
	for _, item := range items {
		counter.Add(item)
	}
	return counter
}

// Add returns false if the element is not hashable.
func (c *Counter) Add(item any) bool {
	if !hashable(item) {
		return false
	}

	c.counts[item]++
	return true
}

func (c *Counter) Get(item any) int {
	if !hashable(item) {
		return 0
	}

	return c.counts[item]
}

func (c *Counter) Len() int {
	return len(c.counts)
}

// Items returns the element -> count view of the counter.
func (c *Counter) Items() map[any]int {
	items := make(map[any]int, len(c.counts))
	for item, count := range c.counts {
		items[item] = count
	}
	return items
}
