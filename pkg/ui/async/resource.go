// Package async runs slow work for widgets off the frame loop.
package async

import "sync"

// Resource runs a task at most once in the background and keeps its result.
// Render code calls Poll every frame; it never blocks.
type Resource[T any] struct {
	start sync.Once
	done  chan struct{}
	value T
}

// Poll starts task on the first call and returns its result once it has
// finished. Later tasks are ignored, so a Resource holds one result forever.
func (r *Resource[T]) Poll(task func() T) (T, bool) {
	r.start.Do(func() {
		r.done = make(chan struct{})
		go func() {
			r.value = task()
			close(r.done)
		}()
	})
	select {
	case <-r.done:
		return r.value, true
	default:
		var zero T
		return zero, false
	}
}

// Ready reports whether the task has finished. It is false before the
// first Poll.
func (r *Resource[T]) Ready() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}
