package unordered

// Retainer is anything exposing a mutable contiguous view of its elements
// together with the ability to shrink it.
//
// Truncate(n) must keep exactly the elements at indices [0,n) of the view
// returned by Slice. Elements beyond n are discarded.
type Retainer[T any] interface {
	Slice() []T
	Truncate(n int)
}

// Retain keeps exactly the elements for which keep returns true.
//
// keep is called once for every element r held before the call, in
// unspecified order, and may modify the element through the pointer. The
// surviving elements end up in unspecified order. Retain needs O(L) time and
// no extra space, L being the length of r.Slice().
//
// Rejected elements are swapped to the end of the view and handed to
// r.Truncate in one go, i.e. a Retainer with an expensive Truncate pays that
// cost at most once.
func Retain[T any](r Retainer[T], keep func(*T) bool) {
	v := r.Slice()
	l := len(v)
	removed := 0
	cursor := 0
	for range l {
		if keep(&v[cursor]) {
			cursor++
			continue
		}
		// the element swapped in is tested on the next iteration
		last := l - 1 - removed
		v[cursor], v[last] = v[last], v[cursor]
		removed++
	}
	if removed > 0 {
		r.Truncate(l - removed)
	}
}
