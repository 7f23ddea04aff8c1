package history

// Buffer is a fixed-capacity append-only ring buffer (bounded memory).
// Once full, each append evicts the oldest entry.
type Buffer[T any] struct {
	buf   []T
	size  int
	start int
	count int
}

// New creates a Buffer with the given capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer[T]{
		buf:  make([]T, capacity),
		size: capacity,
	}
}

// Append adds a value to the buffer.
func (b *Buffer[T]) Append(v T) {
	if b.count < b.size {
		b.buf[(b.start+b.count)%b.size] = v
		b.count++
		return
	}
	// overwrite oldest
	b.buf[b.start] = v
	b.start = (b.start + 1) % b.size
}

// Last returns the last n values in insertion order (oldest first).
// Returns a copy (not internal references).
func (b *Buffer[T]) Last(n int) []T {
	if n <= 0 || b.count == 0 {
		return nil
	}
	if n > b.count {
		n = b.count
	}
	out := make([]T, n)
	first := (b.start + (b.count - n)) % b.size
	for i := 0; i < n; i++ {
		out[i] = b.buf[(first+i)%b.size]
	}
	return out
}

// Snapshot returns the full contents in insertion order (oldest first).
// Returns a copy (not internal references).
func (b *Buffer[T]) Snapshot() []T {
	return b.Last(b.count)
}

// Len returns the number of values currently held.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int {
	return b.size
}
