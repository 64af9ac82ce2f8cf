// Package iterator contains the default [domain.Iterator] implementation.
package iterator

import (
	"errors"
	"iter"

	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

// Iterator implements [domain.Iterator].
type Iterator struct {
	src        domain.List
	cursor     int
	generation uint64
}

// NewIterator returns a new implementation of [domain.Iterator] positioned at
// the first record of src.
func NewIterator(src domain.List) domain.Iterator {
	return &Iterator{
		src:        src,
		generation: src.Generation(),
	}
}

// Resume rebuilds an iterator from state kept outside of it, such as caller
// owned iterator storage.
func Resume(src domain.List, cursor int, generation uint64) domain.Iterator {
	return &Iterator{
		src:        src,
		cursor:     cursor,
		generation: generation,
	}
}

// Next implements [domain.Iterator]. The generation check comes first, so a
// mutated list reports [domain.ErrMutated] even when the cursor is past its
// end.
func (it *Iterator) Next() ([]byte, error) {
	if it.generation != it.src.Generation() {
		return nil, domain.ErrMutated
	}
	if it.cursor >= it.src.Len() {
		return nil, domain.ErrIterExhausted
	}
	rec, err := it.src.View(it.cursor)
	if err != nil {
		return nil, err
	}
	it.cursor++
	return rec, nil
}

// Cursor implements [domain.Iterator].
func (it *Iterator) Cursor() int {
	return it.cursor
}

// Generation implements [domain.Iterator].
func (it *Iterator) Generation() uint64 {
	return it.generation
}

// All returns a sequence over the records of src. If src is mutated while the
// sequence is consumed, a final (nil, [domain.ErrMutated]) pair is yielded.
// Records are views into the list buffer.
func All(src domain.List) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		it := NewIterator(src)
		for {
			rec, err := it.Next()
			if errors.Is(err, domain.ErrIterExhausted) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
