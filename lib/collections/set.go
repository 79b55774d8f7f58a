package collections

import "reflect"

// Set holds unique comparable elements. Iteration order is not defined.
type Set struct {
	items map[any]struct{}
}

func NewSet(items ...any) *Set {
	s := &Set{items: make(map[any]struct{})}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add returns false if the element is not hashable (e.g. a map or slice).
func (s *Set) Add(item any) bool {
	if !hashable(item) {
		return false
	}

	s.items[item] = struct{}{}
	return true
}

func (s *Set) Remove(item any) {
	if hashable(item) {
		delete(s.items, item)
	}
}

func (s *Set) Contains(item any) bool {
	if !hashable(item) {
		return false
	}

	_, isOk := s.items[item]
	return isOk
}

func (s *Set) Len() int {
	return len(s.items)
}

func (s *Set) Items() []any {
	items := make([]any, 0, len(s.items))
	for item := range s.items {
		items = append(items, item)
	}
	return items
}

// FrozenSet is an immutable [Set].
type FrozenSet struct {
	set *Set
}

func NewFrozenSet(items ...any) *FrozenSet {
	return &FrozenSet{set: NewSet(items...)}
}

func (f *FrozenSet) Contains(item any) bool {
	return f.set.Contains(item)
}

func (f *FrozenSet) Len() int {
	return f.set.Len()
}

func (f *FrozenSet) Items() []any {
	return f.set.Items()
}

func hashable(item any) bool {
	if item == nil {
		return true
	}

	return reflect.TypeOf(item).Comparable()
}
