// Package ptr provides helpers for optional values held as pointers.
package ptr

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }

// Deref returns *p, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
