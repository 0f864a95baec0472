package analysis

import "sync"

// history keeps the most recent results, oldest first. It is safe for
// concurrent use.
type history[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	full  bool
}

func newHistory[T any](capacity int) *history[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &history[T]{items: make([]T, capacity)}
}

// push records item, evicting the oldest when full.
func (h *history[T]) push(item T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items[h.next] = item
	h.next++
	if h.next == len(h.items) {
		h.next = 0
		h.full = true
	}
}

func (h *history[T]) len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.full {
		return len(h.items)
	}
	return h.next
}

// snapshot copies the items oldest to newest.
func (h *history[T]) snapshot() []T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.full {
		return append([]T(nil), h.items[:h.next]...)
	}
	out := make([]T, 0, len(h.items))
	out = append(out, h.items[h.next:]...)
	return append(out, h.items[:h.next]...)
}

// latest returns the newest item.
func (h *history[T]) latest() (T, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var zero T
	if !h.full && h.next == 0 {
		return zero, false
	}
	i := h.next - 1
	if i < 0 {
		i = len(h.items) - 1
	}
	return h.items[i], true
}
