package unordered

import "errors"

var (
	// ErrOverlappingRanges signals a block swap of ranges sharing elements.
	ErrOverlappingRanges = errors.New("unordered: ranges overlap")
	// ErrIndexOutOfBounds signals an index or length outside of a slice.
	ErrIndexOutOfBounds = errors.New("unordered: index out of bounds")
)
