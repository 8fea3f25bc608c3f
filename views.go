package twounordered

import (
	"fmt"
	"iter"

	"github.com/npillmayer/twounordered/unordered"
)

// FirstView gives access to the first vector of a container. It is obtained
// by calling Vecs.First and is valid until the container hands out another
// view or exposes its buffer.
//
// FirstView implements unordered.Retainer.
type FirstView[E any] struct {
	v     *Vecs[E]
	epoch uint64
}

func (f FirstView[E]) vecs() *Vecs[E] {
	if f.v == nil || f.v.epoch != f.epoch {
		T().Errorf("use of stale view of first vector")
		panic(ErrStaleView)
	}
	return f.v
}

// Len returns the number of elements of the first vector.
func (f FirstView[E]) Len() int {
	return f.vecs().boundary
}

// Slice returns the elements of the first vector. The slice aliases the
// container and must not be used after the next mutation.
func (f FirstView[E]) Slice() []E {
	v := f.vecs()
	s := *v.buf()
	return s[:v.boundary:v.boundary]
}

// All iterates over the elements of the first vector.
func (f FirstView[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, x := range f.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Push appends x to the first vector.
//
// x is appended to the backing slice and swapped with the element at the
// boundary, which is the first element of the second vector, if any. That
// element thus moves to the end of the slice.
func (f FirstView[E]) Push(x E) {
	v := f.vecs()
	p := v.buf()
	s := append(*p, x)
	last := len(s) - 1
	s[v.boundary], s[last] = s[last], s[v.boundary]
	*p = s
	v.boundary++
}

// Truncate shrinks the first vector to its first keep elements, i.e. the
// elements at positions [0,keep) of Slice survive. If keep is not smaller
// than Len, Truncate does nothing.
//
// The elements of the second vector are preserved, but may be reordered.
// Instead of moving the second vector down by the number of removed elements,
// Truncate exchanges the removed block with an equally sized block taken from
// the end of the second vector, or, if the second vector is not longer than
// the removed block, with the complete second vector. Either way, at most
// min(removed, len(second)) elements of the second vector are moved.
func (f FirstView[E]) Truncate(keep int) {
	v := f.vecs()
	if keep < 0 {
		panic(fmt.Errorf("%w: truncate first vector to %d", ErrIndexOutOfBounds, keep))
	}
	if keep >= v.boundary {
		return
	}
	p := v.buf()
	s := *p
	removed := v.boundary - keep
	second := len(s) - v.boundary
	if second > removed {
		// move the tail of the second vector into the gap
		unordered.SwapRanges(s, keep, len(s)-removed, removed)
	} else {
		// move the complete second vector into the gap
		unordered.SwapRanges(s, keep, v.boundary, second)
	}
	T().Debugf("truncate first vector %d→%d, second vector has %d", v.boundary, keep, second)
	*p = unordered.TruncateTail(s, len(s)-removed)
	v.boundary = keep
}

// RetainUnordered keeps the elements of the first vector for which keep
// returns true. See unordered.Retain.
func (f FirstView[E]) RetainUnordered(keep func(*E) bool) {
	unordered.Retain[E](f, keep)
}

// SecondView gives access to the second vector of a container. It is
// obtained by calling Vecs.Second and is valid until the container hands out
// another view or exposes its buffer.
//
// SecondView implements unordered.Retainer.
type SecondView[E any] struct {
	v     *Vecs[E]
	epoch uint64
}

func (sv SecondView[E]) vecs() *Vecs[E] {
	if sv.v == nil || sv.v.epoch != sv.epoch {
		T().Errorf("use of stale view of second vector")
		panic(ErrStaleView)
	}
	return sv.v
}

// Len returns the number of elements of the second vector.
func (sv SecondView[E]) Len() int {
	v := sv.vecs()
	return len(*v.buf()) - v.boundary
}

// Slice returns the elements of the second vector. The slice aliases the
// container and must not be used after the next mutation.
func (sv SecondView[E]) Slice() []E {
	v := sv.vecs()
	return (*v.buf())[v.boundary:]
}

// All iterates over the elements of the second vector.
func (sv SecondView[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, x := range sv.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Push appends x to the second vector. The first vector is not touched.
func (sv SecondView[E]) Push(x E) {
	v := sv.vecs()
	p := v.buf()
	*p = append(*p, x)
}

// Truncate shrinks the second vector to keep elements. If keep is not
// smaller than Len, Truncate does nothing.
func (sv SecondView[E]) Truncate(keep int) {
	v := sv.vecs()
	if keep < 0 {
		panic(fmt.Errorf("%w: truncate second vector to %d", ErrIndexOutOfBounds, keep))
	}
	p := v.buf()
	if keep >= len(*p)-v.boundary {
		return
	}
	*p = unordered.TruncateTail(*p, v.boundary+keep)
}

// RetainUnordered keeps the elements of the second vector for which keep
// returns true. See unordered.Retain.
func (sv SecondView[E]) RetainUnordered(keep func(*E) bool) {
	unordered.Retain[E](sv, keep)
}

var _ unordered.Retainer[int] = FirstView[int]{}
var _ unordered.Retainer[int] = SecondView[int]{}
