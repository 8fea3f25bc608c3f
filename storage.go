package twounordered

// Storage is the capability a container needs from its backing store: access
// to a slice variable it may read, re-slice and re-assign.
//
// Whether the slice is owned by the container or borrowed from a client is
// invisible to the container's algorithms.
type Storage[E any] interface {
	Slice() *[]E
}

// owned is the storage used by containers created with New, WithCapacity or
// FromSlice.
type owned[E any] struct {
	s []E
}

func (o *owned[E]) Slice() *[]E {
	return &o.s
}

// borrowed operates on a client's slice variable.
type borrowed[E any] struct {
	p *[]E
}

func (b borrowed[E]) Slice() *[]E {
	return b.p
}
