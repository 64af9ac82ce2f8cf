// Package domain contains the interfaces, status codes, errors and option
// types shared by every reclist adapter.
//
// Adapters implement the interfaces declared here, so each piece of the
// engine (allocation, the list buffer, iteration, the handle table) can be
// replaced or mocked independently.
package domain

import "iter"

// Handle is an opaque, word-sized reference to a list owned by a
// [Registry]. The zero Handle never refers to a list.
type Handle uint64

// Allocator hands out and takes back list buffers.
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly size bytes, or an error
	// wrapping [ErrNoMemory].
	Allocate(size int) ([]byte, error)
	// Release returns a buffer previously obtained from Allocate. Releasing
	// a buffer twice, or one from another allocator, is a caller bug that
	// implementations may report but need not detect.
	Release([]byte)
	// InUse returns the number of bytes currently allocated.
	InUse() int
}

// List is a resizable array of fixed-size opaque records. A List is not safe
// for concurrent use.
type List interface {
	// Len returns the number of live records.
	Len() int
	// Cap returns the number of records the buffer can hold before
	// growing.
	Cap() int
	// ItemSize returns the byte size of every record.
	ItemSize() int
	// Generation returns the structural mutation counter. Iterators
	// compare it against the value captured at creation.
	Generation() uint64
	// Append copies ItemSize bytes of record to the end of the list,
	// growing the buffer if needed.
	Append(record []byte) error
	// Set overwrites the record at index i.
	Set(i int, record []byte) error
	// Get copies the record at index i into out.
	Get(i int, out []byte) error
	// Pop copies the record at index i into out and removes it, shifting
	// later records down by one.
	Pop(i int, out []byte) error
	// PopLast pops the last record.
	PopLast(out []byte) error
	// View returns the bytes of the record at index i without copying.
	// The view is valid until the next mutating call.
	View(i int) ([]byte, error)
	// Free releases the buffer. Later calls report [ErrFreed].
	Free()
}

// Iterator walks a [List] in index order.
type Iterator interface {
	// Next returns a read-only view of the next record, which must not be
	// modified. It returns [ErrIterExhausted] at the end and [ErrMutated]
	// once the source changed structurally.
	Next() ([]byte, error)
	// Cursor returns the index of the record the next call would yield.
	Cursor() int
	// Generation returns the source generation captured at creation.
	Generation() uint64
}

// Registry maps handles to live lists.
type Registry interface {
	// Register stores l and returns a new handle for it.
	Register(l List) (Handle, error)
	// Lookup returns the list under h, if any.
	Lookup(h Handle) (List, bool)
	// Release removes h from the registry and returns the list it held.
	Release(h Handle) (List, bool)
	// Len returns the number of live handles.
	Len() int
	// Handles returns live handles in ascending order.
	Handles() iter.Seq[Handle]
}

// Decoder copies loosely typed data, such as a parsed configuration file, into
// a typed target.
type Decoder interface {
	// Decode decodes source into target, which must be a non nil pointer.
	Decode(source any, target any) error
}

// ListFactory represents a function that constructs [List] instances.
type ListFactory = func(...ListOption) (List, error)
