package unordered

import "fmt"

// Vec is a plain slice which can be used as a Retainer.
type Vec[T any] []T

// Slice returns the underlying slice.
func (v *Vec[T]) Slice() []T {
	return *v
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return len(*v)
}

// Push appends x.
func (v *Vec[T]) Push(x T) {
	*v = append(*v, x)
}

// Truncate shrinks v to its first n elements. If n is not smaller than the
// current length, Truncate does nothing.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: truncate to %d", ErrIndexOutOfBounds, n))
	}
	if n >= len(*v) {
		return
	}
	*v = TruncateTail(*v, n)
}

// SwapRemove removes the element at index i and returns it. The last element
// takes its place.
func (v *Vec[T]) SwapRemove(i int) T {
	s := *v
	if i < 0 || i >= len(s) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, len(s)))
	}
	x := s[i]
	last := len(s) - 1
	s[i] = s[last]
	*v = TruncateTail(s, last)
	return x
}

// RetainUnordered is a shortcut for Retain(v, keep).
func (v *Vec[T]) RetainUnordered(keep func(*T) bool) {
	Retain(v, keep)
}

// RetainSlice applies Retain to the slice variable s points to.
func RetainSlice[T any](s *[]T, keep func(*T) bool) {
	Retain((*Vec[T])(s), keep)
}

// TruncateTail zeroes s[n:] and returns s[:n].
//
// Zeroing the dropped slots releases whatever they reference, which is the
// closest thing Go has to running destructors on removed elements.
func TruncateTail[T any](s []T, n int) []T {
	if n < 0 || n > len(s) {
		panic(fmt.Errorf("%w: truncate to %d, length %d", ErrIndexOutOfBounds, n, len(s)))
	}
	clear(s[n:])
	return s[:n]
}

// SwapRanges exchanges the blocks s[i:i+n] and s[j:j+n] element by element.
// The blocks must not overlap.
func SwapRanges[T any](s []T, i, j, n int) {
	if n == 0 {
		return
	}
	if n < 0 || i < 0 || j < 0 || i+n > len(s) || j+n > len(s) {
		panic(fmt.Errorf("%w: swap [%d,%d) with [%d,%d) in length %d",
			ErrIndexOutOfBounds, i, i+n, j, j+n, len(s)))
	}
	if i < j+n && j < i+n {
		tracer().Errorf("block swap of overlapping ranges [%d,%d) and [%d,%d)", i, i+n, j, j+n)
		panic(ErrOverlappingRanges)
	}
	a, b := s[i:i+n], s[j:j+n]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}
