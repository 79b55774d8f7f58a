package collections

// DefaultMap is a mapping that manufactures a value for missing keys.
type DefaultMap struct {
	items   map[string]any
	factory func() any
}

func NewDefaultMap(factory func() any) *DefaultMap {
	return &DefaultMap{items: make(map[string]any), factory: factory}
}

func NewDefaultMapFromMap(items map[string]any, factory func() any) *DefaultMap {
	d := NewDefaultMap(factory)
	for key, value := range items {
		d.items[key] = value
	}
	return d
}

// Get returns the stored value, or materializes (and stores) the factory
// default when the key is missing.
func (d *DefaultMap) Get(key string) any {
	value, isOk := d.items[key]
	if isOk {
		return value
	}

	if d.factory == nil {
		return nil
	}

	value = d.factory()
	d.items[key] = value
	return value
}

// GetOrDefault looks the key up without mutating the map.
func (d *DefaultMap) GetOrDefault(key string, defaultValue any) any {
	value, isOk := d.items[key]
	if !isOk {
		return defaultValue
	}

	return value
}

func (d *DefaultMap) Set(key string, value any) {
	d.items[key] = value
}

func (d *DefaultMap) Len() int {
	return len(d.items)
}

func (d *DefaultMap) Items() map[string]any {
	items := make(map[string]any, len(d.items))
	for key, value := range d.items {
		items[key] = value
	}
	return items
}

// FrozenMap is an immutable string-keyed mapping.
type FrozenMap struct {
	items map[string]any
}

func NewFrozenMap(items map[string]any) *FrozenMap {
	copied := make(map[string]any, len(items))
	for key, value := range items {
		copied[key] = value
	}
	return &FrozenMap{items: copied}
}

func (f *FrozenMap) Get(key string) (any, bool) {
	value, isOk := f.items[key]
	return value, isOk
}

func (f *FrozenMap) Len() int {
	return len(f.items)
}

func (f *FrozenMap) Items() map[string]any {
	items := make(map[string]any, len(f.items))
	for key, value := range f.items {
		items[key] = value
	}
	return items
}
