// Package list contains the default [domain.List] implementation: a single
// contiguous byte buffer holding fixed-size records.
package list

import (
	"errors"
	"fmt"
	"math"

	"github.com/vinicius-lino-figueiredo/reclist/adapter/allocator"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

// List implements [domain.List].
type List struct {
	itemSize        int
	length          int
	allocated       int
	generation      uint64
	buf             []byte
	growthFactor    float64
	allocator       domain.Allocator
	invalidateOnSet bool
	freed           bool
}

// NewList returns a new implementation of [domain.List]. [domain.WithItemSize]
// is required. A positive [domain.WithAllocated] hint allocates the buffer
// immediately, zero defers it to the first append.
func NewList(options ...domain.ListOption) (domain.List, error) {
	opts := domain.ListOptions{
		GrowthFactor: domain.DefaultGrowthFactor,
	}
	for _, option := range options {
		option(&opts)
	}

	if opts.ItemSize <= 0 || opts.Allocated < 0 {
		return nil, domain.ErrItemSize{ItemSize: opts.ItemSize, Allocated: opts.Allocated}
	}
	// negated so NaN is rejected too
	if !(opts.GrowthFactor >= domain.MinGrowthFactor) {
		return nil, domain.ErrGrowthFactor
	}
	if opts.Allocator == nil {
		opts.Allocator = allocator.NewAllocator()
	}

	l := &List{
		itemSize:        opts.ItemSize,
		growthFactor:    opts.GrowthFactor,
		allocator:       opts.Allocator,
		invalidateOnSet: opts.InvalidateOnSet,
	}

	if opts.Allocated > 0 {
		if err := l.resize(opts.Allocated); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Len implements [domain.List].
func (l *List) Len() int {
	return l.length
}

// Cap implements [domain.List].
func (l *List) Cap() int {
	return l.allocated
}

// ItemSize implements [domain.List].
func (l *List) ItemSize() int {
	return l.itemSize
}

// Generation implements [domain.List].
func (l *List) Generation() uint64 {
	return l.generation
}

// Append implements [domain.List]. Only the first ItemSize bytes of record
// are stored. If the buffer cannot grow, the list is left as it was.
func (l *List) Append(record []byte) error {
	if l.freed {
		return domain.ErrFreed
	}
	if len(record) < l.itemSize {
		return domain.ErrRecordSize
	}
	if l.length == l.allocated {
		next, ok := l.nextCapacity()
		if !ok {
			return fmt.Errorf("%w: capacity overflow growing from %d records", domain.ErrNoMemory, l.allocated)
		}
		if err := l.resize(next); err != nil {
			return err
		}
	}
	copy(l.slot(l.length), record)
	l.length++
	l.generation++
	return nil
}

// Set implements [domain.List]. The generation is left alone unless the list
// was created with [domain.WithInvalidateOnSet].
func (l *List) Set(i int, record []byte) error {
	if l.freed {
		return domain.ErrFreed
	}
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if len(record) < l.itemSize {
		return domain.ErrRecordSize
	}
	copy(l.slot(i), record)
	if l.invalidateOnSet {
		l.generation++
	}
	return nil
}

// Get implements [domain.List].
func (l *List) Get(i int, out []byte) error {
	if l.freed {
		return domain.ErrFreed
	}
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if len(out) < l.itemSize {
		return domain.ErrRecordSize
	}
	copy(out, l.slot(i))
	return nil
}

// Pop implements [domain.List]. Records after i are moved down one slot, so
// the cost is proportional to Len()-i.
func (l *List) Pop(i int, out []byte) error {
	if l.freed {
		return domain.ErrFreed
	}
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if len(out) < l.itemSize {
		return domain.ErrRecordSize
	}
	copy(out, l.slot(i))

	start := i * l.itemSize
	end := l.length * l.itemSize
	copy(l.buf[start:end], l.buf[start+l.itemSize:end])

	l.length--
	clear(l.slot(l.length))
	l.generation++
	return nil
}

// PopLast implements [domain.List].
func (l *List) PopLast(out []byte) error {
	return l.Pop(l.length-1, out)
}

// View implements [domain.List]. The returned slice has its capacity capped
// to the record, so appending to it never writes into the next slot.
func (l *List) View(i int) ([]byte, error) {
	if l.freed {
		return nil, domain.ErrFreed
	}
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	return l.slot(i), nil
}

// Free implements [domain.List]. Iterators still holding the list observe a
// generation change.
func (l *List) Free() {
	if l.freed {
		return
	}
	if l.buf != nil {
		l.allocator.Release(l.buf)
	}
	l.buf = nil
	l.length = 0
	l.allocated = 0
	l.generation++
	l.freed = true
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= l.length {
		return domain.ErrIndexOutOfRange{Index: i, Length: l.length}
	}
	return nil
}

func (l *List) slot(i int) []byte {
	start := i * l.itemSize
	end := start + l.itemSize
	return l.buf[start:end:end]
}

// nextCapacity returns the capacity of a full list after growth, at least one
// record more than the current one.
func (l *List) nextCapacity() (int, bool) {
	if l.allocated == math.MaxInt {
		return 0, false
	}
	next := l.allocated + 1
	grown := float64(l.allocated) * l.growthFactor
	if grown >= math.MaxInt {
		return 0, false
	}
	if int(grown) > next {
		next = int(grown)
	}
	return next, true
}

// resize moves the records to a new buffer of n records. The old buffer is
// only released once the copy succeeded.
func (l *List) resize(n int) error {
	if n > math.MaxInt/l.itemSize {
		return fmt.Errorf("%w: %d records of %d bytes overflow", domain.ErrNoMemory, n, l.itemSize)
	}
	buf, err := l.allocator.Allocate(n * l.itemSize)
	if err != nil {
		if !errors.Is(err, domain.ErrNoMemory) {
			err = fmt.Errorf("%w: %w", domain.ErrNoMemory, err)
		}
		return err
	}
	copy(buf, l.buf[:l.length*l.itemSize])
	if l.buf != nil {
		l.allocator.Release(l.buf)
	}
	l.buf = buf
	l.allocated = n
	return nil
}
