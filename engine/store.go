package engine

// OrderedStore is a slice-backed collection that preserves insertion order
// Index-based removal is order preserving so indices collected during a scan
// stay meaningful until the store is compacted
type OrderedStore[T any] struct {
	items []T
}

// NewOrderedStore creates a store with the given initial capacity
func NewOrderedStore[T any](capacity int) *OrderedStore[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &OrderedStore[T]{
		items: make([]T, 0, capacity),
	}
}

// Add appends a fully constructed value
func (s *OrderedStore[T]) Add(v T) {
	s.items = append(s.items, v)
}

// Len returns the number of stored values
func (s *OrderedStore[T]) Len() int {
	return len(s.items)
}

// At returns a copy of the value at i
func (s *OrderedStore[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Ptr returns a pointer for in-place mutation, valid until the next removal or Add
func (s *OrderedStore[T]) Ptr(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}

// All returns the backing slice in insertion order
// The slice is borrowed: do not retain it across frames or removals
func (s *OrderedStore[T]) All() []T {
	return s.items
}

// RemoveAt deletes the value at i keeping the order of the rest
func (s *OrderedStore[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return true
}

// RemoveIndices deletes every listed index in a single mark-and-compact pass
// Duplicates, unsorted input and out-of-range indices are tolerated
// Returns the number of values actually removed
func (s *OrderedStore[T]) RemoveIndices(indices []int) int {
	if len(indices) == 0 || len(s.items) == 0 {
		return 0
	}

	marked := make([]bool, len(s.items))
	count := 0
	for _, i := range indices {
		if i < 0 || i >= len(s.items) || marked[i] {
			continue
		}
		marked[i] = true
		count++
	}
	if count == 0 {
		return 0
	}

	writeIdx := 0
	for readIdx, v := range s.items {
		if !marked[readIdx] {
			s.items[writeIdx] = v
			writeIdx++
		}
	}
	s.truncate(writeIdx)
	return count
}

// RemoveFunc deletes every value matching pred and returns how many were removed
func (s *OrderedStore[T]) RemoveFunc(pred func(T) bool) int {
	writeIdx := 0
	for _, v := range s.items {
		if !pred(v) {
			s.items[writeIdx] = v
			writeIdx++
		}
	}
	removed := len(s.items) - writeIdx
	s.truncate(writeIdx)
	return removed
}

// Clear removes all values, keeping capacity
func (s *OrderedStore[T]) Clear() {
	s.truncate(0)
}

// truncate zeroes the tail so removed values are not retained
func (s *OrderedStore[T]) truncate(n int) {
	var zero T
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:n]
}
