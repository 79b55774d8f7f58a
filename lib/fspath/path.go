package fspath

import "path/filepath"

// Path is a filesystem path value. It is never resolved against the actual
// filesystem; it only carries the textual path with path semantics attached.
type Path string

func New(value string) Path {
	return Path(filepath.Clean(value))
}

func (p Path) String() string {
	return string(p)
}

func (p Path) Base() string {
	return filepath.Base(string(p))
}

func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

func (p Path) Join(elems ...string) Path {
	parts := append([]string{string(p)}, elems...)
	return Path(filepath.Join(parts...))
}
