package twounordered

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/npillmayer/twounordered/unordered"
)

// Region names one of the two halves of a container.
type Region int8

// The two regions of a container. First occupies the low indices of the
// backing slice, Second the high indices.
const (
	First Region = iota
	Second
)

func (r Region) String() string {
	switch r {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return fmt.Sprintf("Region(%d)", int8(r))
}

// Vecs is a pair of unordered vectors backed by a single slice.
//
// Elements of the first vector occupy the slice up to (excluding) a boundary
// index, elements of the second vector occupy the rest. Clients push and
// truncate through the views returned by First and Second. Both vectors may
// change their order on every mutating operation, including operations on the
// other vector.
//
// The zero value is an empty container ready to use. A Vecs must not be copied
// after first use.
type Vecs[E any] struct {
	store    Storage[E]
	boundary int    // elements [0,boundary) belong to the first vector
	epoch    uint64 // views created under an older epoch are stale
}

// New creates an empty container.
func New[E any]() *Vecs[E] {
	return &Vecs[E]{}
}

// WithCapacity creates an empty container with room for at least n elements.
func WithCapacity[E any](n int) *Vecs[E] {
	if n < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", ErrIllegalArguments, n))
	}
	return &Vecs[E]{store: &owned[E]{s: make([]E, 0, n)}}
}

// FromSlice creates a container owning s. All elements of s are assigned to
// the first vector. The client should not use s afterwards.
func FromSlice[E any](s []E) *Vecs[E] {
	return &Vecs[E]{store: &owned[E]{s: s}, boundary: len(s)}
}

// Borrow creates a container operating on the client's slice variable *p.
// Every change to the container is reflected in *p. Elements already present
// in *p are assigned to the first vector.
func Borrow[E any](p *[]E) *Vecs[E] {
	if p == nil {
		panic(fmt.Errorf("%w: borrowing from nil", ErrIllegalArguments))
	}
	return FromStorage[E](borrowed[E]{p: p})
}

// FromStorage creates a container on top of an arbitrary storage, which must
// be neither nil nor a nil pointer. As with FromSlice and Borrow, existing
// elements are assigned to the first vector.
func FromStorage[E any](st Storage[E]) *Vecs[E] {
	if isNil(st) || st.Slice() == nil {
		panic(fmt.Errorf("%w: storage without slice", ErrIllegalArguments))
	}
	return &Vecs[E]{store: st, boundary: len(*st.Slice())}
}

// isNil reports whether st is nil or wraps a nil pointer, map, slice,
// channel or function, on which Slice cannot be called safely.
func isNil[E any](st Storage[E]) bool {
	if st == nil {
		return true
	}
	switch rv := reflect.ValueOf(st); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (v *Vecs[E]) buf() *[]E {
	if v.store == nil {
		v.store = &owned[E]{}
	}
	return v.store.Slice()
}

func (v *Vecs[E]) slice() []E {
	if v.store == nil {
		return nil
	}
	return *v.store.Slice()
}

// touch invalidates every view handed out so far.
func (v *Vecs[E]) touch() {
	v.epoch++
}

// First returns a view of the first vector. Any view obtained earlier becomes
// unusable.
func (v *Vecs[E]) First() FirstView[E] {
	v.buf()
	v.touch()
	return FirstView[E]{v: v, epoch: v.epoch}
}

// Second returns a view of the second vector. Any view obtained earlier
// becomes unusable.
func (v *Vecs[E]) Second() SecondView[E] {
	v.buf()
	v.touch()
	return SecondView[E]{v: v, epoch: v.epoch}
}

// Len returns the total number of elements of both vectors.
func (v *Vecs[E]) Len() int {
	return len(v.slice())
}

// Cap returns the capacity of the backing slice.
func (v *Vecs[E]) Cap() int {
	return cap(v.slice())
}

// Grow makes room for at least n more elements without another allocation.
func (v *Vecs[E]) Grow(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative growth %d", ErrIllegalArguments, n))
	}
	v.touch()
	p := v.buf()
	*p = slices.Grow(*p, n)
}

// Clear removes all elements from both vectors.
func (v *Vecs[E]) Clear() {
	v.touch()
	p := v.buf()
	*p = unordered.TruncateTail(*p, 0)
	v.boundary = 0
}

// Slices returns the elements of the first and of the second vector.
//
// Both slices alias the backing store and stay valid until the next call to
// First or Second. Appending to a does never overwrite elements of b.
func (v *Vecs[E]) Slices() (a, b []E) {
	v.touch()
	s := v.slice()
	return s[:v.boundary:v.boundary], s[v.boundary:]
}

// All iterates over the elements of both vectors, first before second.
// Obtaining a view during iteration ends the iteration with a panic.
func (v *Vecs[E]) All() iter.Seq2[Region, E] {
	v.touch()
	epoch := v.epoch
	return func(yield func(Region, E) bool) {
		s := v.slice()
		for i, x := range s {
			if v.epoch != epoch {
				T().Errorf("container modified during iteration")
				panic(ErrStaleView)
			}
			r := First
			if i >= v.boundary {
				r = Second
			}
			if !yield(r, x) {
				return
			}
		}
	}
}

// Exchange replaces the backing slice by s and returns the previous one,
// together with the previous length of the first vector. All elements of s
// are assigned to the first vector.
func (v *Vecs[E]) Exchange(s []E) (old []E, oldFirstLen int) {
	v.touch()
	p := v.buf()
	old, oldFirstLen = *p, v.boundary
	*p = s
	v.boundary = len(s)
	T().Debugf("exchanged storage: %d|%d elements out, %d in", oldFirstLen, len(old)-oldFirstLen, len(s))
	return old, oldFirstLen
}

// IntoSlice dissolves the container into a single slice, with the elements of
// the first vector at the low indices. The container is empty afterwards.
//
// For containers created by Borrow, the client's slice variable is not
// modified by IntoSlice, but the container detaches from it.
func (v *Vecs[E]) IntoSlice() []E {
	v.touch()
	s := v.slice()
	v.store = nil
	v.boundary = 0
	return s
}

// Check validates the container's invariants. It is intended to be used in
// tests.
func (v *Vecs[E]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil container", ErrIllegalArguments)
	}
	n := v.Len()
	if v.boundary < 0 || v.boundary > n {
		return fmt.Errorf("%w: boundary %d outside of [0,%d]", ErrIndexOutOfBounds, v.boundary, n)
	}
	return nil
}

// String returns a debug representation of the container, with a bar
// separating the two vectors.
func (v *Vecs[E]) String() string {
	s := v.slice()
	items := make([]string, 0, len(s)+1)
	for i, x := range s {
		if i == v.boundary {
			items = append(items, "|")
		}
		items = append(items, fmt.Sprint(x))
	}
	if v.boundary == len(s) {
		items = append(items, "|")
	}
	return "[" + strings.Join(items, " ") + "]"
}
