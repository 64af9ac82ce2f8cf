package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIndex is returned when an index falls outside [0, length).
	ErrIndex = errors.New("list index out of range")
	// ErrNoMemory is returned when a buffer cannot be allocated or grown.
	// The list is left untouched when this happens.
	ErrNoMemory = errors.New("cannot allocate list buffer")
	// ErrMutated is returned by [Iterator.Next] after the source list was
	// structurally modified. It is permanent for that iterator.
	ErrMutated = errors.New("list mutated during iteration")
	// ErrIterExhausted signals the normal end of an iteration, in the same
	// way [io.EOF] signals the end of a stream.
	ErrIterExhausted = errors.New("iterator exhausted")
	// ErrInvalidArgument is returned for malformed calls that the engine
	// can detect: bad sizes, unknown handles, broken iterator storage.
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	// ErrRecordSize is returned when a record or output buffer is shorter
	// than the list item size.
	ErrRecordSize = fmt.Errorf("%w: buffer shorter than item size", ErrInvalidArgument)
	// ErrFreed is returned by operations on a list after [List.Free].
	ErrFreed = fmt.Errorf("%w: list was freed", ErrInvalidArgument)
	// ErrInvalidHandle is returned when a handle does not refer to a live
	// list.
	ErrInvalidHandle = fmt.Errorf("%w: unknown list handle", ErrInvalidArgument)
	// ErrIteratorStorage is returned when caller supplied iterator storage
	// is too short or was never initialized.
	ErrIteratorStorage = fmt.Errorf("%w: malformed iterator storage", ErrInvalidArgument)
	// ErrGrowthFactor is returned when the growth factor would not keep
	// appends amortized O(1).
	ErrGrowthFactor = fmt.Errorf("%w: growth factor must be at least %.1f", ErrInvalidArgument, MinGrowthFactor)
)

// ErrIndexOutOfRange carries the offending index and the list length at the
// time of the call. It matches [ErrIndex] with [errors.Is].
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("list index %d out of range [0, %d)", e.Index, e.Length)
}

// Is reports whether target is [ErrIndex].
func (e ErrIndexOutOfRange) Is(target error) bool { return target == ErrIndex }

// ErrItemSize is returned when a list is created with a non positive item
// size or a negative capacity hint.
type ErrItemSize struct {
	ItemSize  int
	Allocated int
}

func (e ErrItemSize) Error() string {
	return fmt.Sprintf("invalid list geometry: itemsize=%d allocated=%d", e.ItemSize, e.Allocated)
}

// Is reports whether target is [ErrInvalidArgument].
func (e ErrItemSize) Is(target error) bool { return target == ErrInvalidArgument }

// ErrTargetNil is returned by [Decoder.Decode] when the target is nil.
var ErrTargetNil = fmt.Errorf("%w: target is nil", ErrInvalidArgument)

// ErrNonPointer is returned by [Decoder.Decode] when the target is not a
// pointer.
var ErrNonPointer = fmt.Errorf("%w: target is not a pointer", ErrInvalidArgument)

// ErrDecode is returned by [Decoder.Decode] to wrap third party decoding
// errors.
type ErrDecode struct {
	Source any
	Target any
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T", e.Source, e.Target)
}
