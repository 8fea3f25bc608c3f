package twounordered

import (
	"fmt"
	"unsafe"
)

// Reinterpret re-uses the memory of v as a container of elements of type U.
// The boundary between the two vectors is kept. v is consumed, i.e. it is
// empty afterwards.
//
// Reinterpret panics with ErrLayoutMismatch if E and U differ in size or in
// alignment.
//
// This is an escape hatch for clients who recycle buffers across element
// types of identical layout. It is inherently unsafe: the bytes of every
// element are taken as a value of U without any conversion, and it is the
// client's responsibility that they form valid values of U. In particular,
// U must not hold pointers at offsets where E holds none, otherwise the
// garbage collector will not see them. For containers created by Borrow, the
// client's slice variable keeps aliasing the memory as elements of type E.
func Reinterpret[U, E any](v *Vecs[E]) *Vecs[U] {
	var e E
	var u U
	if unsafe.Sizeof(e) != unsafe.Sizeof(u) || unsafe.Alignof(e) != unsafe.Alignof(u) {
		T().Errorf("cannot reinterpret %T as %T", e, u)
		panic(fmt.Errorf("%w: %T has size %d and alignment %d, %T has size %d and alignment %d",
			ErrLayoutMismatch, e, unsafe.Sizeof(e), unsafe.Alignof(e),
			u, unsafe.Sizeof(u), unsafe.Alignof(u)))
	}
	boundary := v.boundary
	s := v.IntoSlice()
	if cap(s) == 0 {
		return &Vecs[U]{}
	}
	data := (*U)(unsafe.Pointer(unsafe.SliceData(s)))
	us := unsafe.Slice(data, cap(s))[:len(s)]
	T().Debugf("reinterpreted %d elements of %T as %T", len(s), e, u)
	return &Vecs[U]{store: &owned[U]{s: us}, boundary: boundary}
}
