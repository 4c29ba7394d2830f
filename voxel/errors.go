package voxel

import "errors"

var (
	// ErrLeasedResourcesOutstanding reports a pool closed while instances
	// were still checked out.
	ErrLeasedResourcesOutstanding = errors.New("voxel: pool closed with leased resources outstanding")

	// ErrUnmatchedLease reports retiring an instance the pool never issued.
	ErrUnmatchedLease = errors.New("voxel: retired instance was not leased from this pool")

	// ErrBufferOverflow reports an RLE stream that would overrun its
	// destination; the compressed data is corrupt.
	ErrBufferOverflow = errors.New("voxel: buffer overflow during decompression")

	// ErrStreamFormat reports malformed serialized cube data.
	ErrStreamFormat = errors.New("voxel: malformed cube region stream")

	// ErrOutOfRange reports a coordinate or level of detail outside its
	// documented bounds.
	ErrOutOfRange = errors.New("voxel: coordinate out of range")
)
