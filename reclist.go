// Package reclist provides a resizable array of fixed-size binary records.
//
// The list does not know what a record means: every record is an opaque run
// of itemsize bytes. Records are appended in amortized constant time, read
// and overwritten by index, and removed by index with the following records
// shifted down to keep their order. Iterators detect, and refuse to continue
// over, a list that was structurally modified after they were created.
//
// Two surfaces are available. [NewList] and [NewIterator] return Go values
// that report errors. The package level functions [New], [Free], [Length],
// [SetItem], [GetItem], [Append], [Pop], [IterSizeof], [IterInit] and
// [IterNext] follow a C style convention instead: word-sized opaque handles,
// integer [Status] codes and iterator state kept in caller owned storage.
//
// Neither surface is safe for concurrent use of the same list.
package reclist

import (
	"iter"

	"github.com/vinicius-lino-figueiredo/reclist/adapter/abi"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/iterator"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/list"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

var (
	// ErrIndex is returned when an index falls outside [0, length).
	ErrIndex = domain.ErrIndex
	// ErrNoMemory is returned when a list buffer cannot be allocated or
	// grown. The list is left untouched.
	ErrNoMemory = domain.ErrNoMemory
	// ErrMutated is returned by [Iterator.Next] once the source list was
	// structurally modified.
	ErrMutated = domain.ErrMutated
	// ErrIterExhausted is returned by [Iterator.Next] at the end of the
	// list. It is not a failure.
	ErrIterExhausted = domain.ErrIterExhausted
	// ErrInvalidArgument is returned for malformed calls, such as short
	// record buffers or unknown handles.
	ErrInvalidArgument = domain.ErrInvalidArgument
	// ErrRecordSize is returned when a buffer is shorter than the item
	// size.
	ErrRecordSize = domain.ErrRecordSize
	// ErrFreed is returned by operations on a freed list.
	ErrFreed = domain.ErrFreed
	// ErrInvalidHandle is reported when a handle does not refer to a live
	// list.
	ErrInvalidHandle = domain.ErrInvalidHandle
)

// ErrIndexOutOfRange carries the offending index and list length. It matches
// [ErrIndex].
type ErrIndexOutOfRange = domain.ErrIndexOutOfRange

// ErrItemSize is returned when a list is created with an invalid geometry.
type ErrItemSize = domain.ErrItemSize

// Status is the integer result of the C style functions.
type Status = domain.Status

// Status codes. Their values are stable.
const (
	StatusOK              = domain.StatusOK
	StatusIndex           = domain.StatusIndex
	StatusNoMemory        = domain.StatusNoMemory
	StatusMutated         = domain.StatusMutated
	StatusIterExhausted   = domain.StatusIterExhausted
	StatusInvalidArgument = domain.StatusInvalidArgument
)

// Handle is an opaque reference to a list created by [New].
type Handle = domain.Handle

// List is a resizable array of fixed-size records.
type List = domain.List

// Iterator walks a [List] in index order.
type Iterator = domain.Iterator

// Allocator provides list buffers.
type Allocator = domain.Allocator

// ListOption configures [NewList].
type ListOption = domain.ListOption

// NewList creates a list configured by:
//
// - [WithItemSize]: sets the record size in bytes. Required.
//
// - [WithAllocated]: sets the initial capacity in records.
//
// - [WithGrowthFactor]: sets the factor applied to a full list, 2 by default.
//
// - [WithAllocator]: sets the [Allocator] that provides the buffer.
//
// - [WithInvalidateOnSet]: makes in-place overwrites invalidate iterators.
func NewList(options ...ListOption) (List, error) {
	return list.NewList(options...)
}

// WithItemSize sets the record size in bytes.
func WithItemSize(n int) ListOption {
	return domain.WithItemSize(n)
}

// WithAllocated sets the initial capacity in records. Zero allocates on the
// first append.
func WithAllocated(n int) ListOption {
	return domain.WithAllocated(n)
}

// WithGrowthFactor sets the factor applied to the capacity of a full list. It
// must be at least 1.5.
func WithGrowthFactor(f float64) ListOption {
	return domain.WithGrowthFactor(f)
}

// WithAllocator sets the [Allocator] providing list buffers.
func WithAllocator(a Allocator) ListOption {
	return domain.WithAllocator(a)
}

// WithInvalidateOnSet makes [List.Set] invalidate existing iterators.
func WithInvalidateOnSet(b bool) ListOption {
	return domain.WithInvalidateOnSet(b)
}

// NewIterator returns an iterator positioned before the first record of l.
func NewIterator(l List) Iterator {
	return iterator.NewIterator(l)
}

// All returns a sequence over the records of l, ending with a
// ([nil], [ErrMutated]) pair if l changes during the loop.
func All(l List) iter.Seq2[[]byte, error] {
	return iterator.All(l)
}

var defaultABI = abi.NewABI()

// New creates a list of itemsize-byte records with room for allocated
// records, returning its handle.
func New(itemsize, allocated int) (Status, Handle) {
	return defaultABI.New(itemsize, allocated)
}

// Free releases the list under h. Using h afterwards is a caller bug.
func Free(h Handle) {
	defaultABI.Free(h)
}

// Length returns the number of records in the list under h.
func Length(h Handle) int {
	return defaultABI.Length(h)
}

// SetItem overwrites record i of the list under h.
func SetItem(h Handle, i int, in []byte) Status {
	return defaultABI.SetItem(h, i, in)
}

// GetItem copies record i of the list under h into out.
func GetItem(h Handle, i int, out []byte) Status {
	return defaultABI.GetItem(h, i, out)
}

// Append adds a record to the end of the list under h.
func Append(h Handle, in []byte) Status {
	return defaultABI.Append(h, in)
}

// Pop copies record i of the list under h into out and removes it.
func Pop(h Handle, i int, out []byte) Status {
	return defaultABI.Pop(h, i, out)
}

// IterSizeof returns the size of the storage [IterInit] expects.
func IterSizeof() int {
	return defaultABI.IterSizeof()
}

// IterInit writes an iterator over the list under h into storage.
func IterInit(storage []byte, h Handle) {
	defaultABI.IterInit(storage, h)
}

// IterNext advances the iterator in storage and returns a view of the next
// record.
func IterNext(storage []byte) (Status, []byte) {
	return defaultABI.IterNext(storage)
}
