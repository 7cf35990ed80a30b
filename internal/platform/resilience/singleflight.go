package resilience

import "golang.org/x/sync/singleflight"

// Group coalesces concurrent loads of the same key into one call.
type Group[T any] struct {
	group singleflight.Group
}

// Do runs fn once per in-flight key. shared reports whether the result
// was handed to more than one caller.
func (g *Group[T]) Do(key string, fn func() (T, error)) (value T, shared bool, err error) {
	raw, err, shared := g.group.Do(key, func() (any, error) {
		return fn()
	})
	if typed, ok := raw.(T); ok {
		value = typed
	}
	return value, shared, err
}

// Forget drops an in-flight key so the next caller starts a fresh load.
func (g *Group[T]) Forget(key string) {
	g.group.Forget(key)
}
