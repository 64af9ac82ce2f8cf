// Package abi exposes lists through a fixed, C style calling convention:
// word-sized opaque handles, integer status codes, and iterator state kept
// in caller owned storage whose size is queried with [ABI.IterSizeof].
//
// No entry point panics. Operations on handles that were freed or never
// existed are a caller bug; they are logged and reported as
// [domain.StatusInvalidArgument].
package abi

import (
	"github.com/sirupsen/logrus"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/iterator"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/list"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/registry"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

// ABI holds the handle table and the defaults for new lists.
type ABI struct {
	registry    domain.Registry
	logger      logrus.FieldLogger
	listFactory domain.ListFactory
	listOptions []domain.ListOption
}

// NewABI returns a new ABI surface with its own handle table, configured by:
//
// - [domain.WithABIRegistry]: sets the handle table.
//
// - [domain.WithABILogger]: sets the logger, defaults to the logrus standard
// logger.
//
// - [domain.WithABIListFactory]: sets the function that builds lists.
//
// - [domain.WithABIListOptions]: adds options applied to every new list.
func NewABI(options ...domain.ABIOption) *ABI {
	opts := domain.ABIOptions{
		ListFactory: list.NewList,
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Registry == nil {
		opts.Registry = registry.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &ABI{
		registry:    opts.Registry,
		logger:      opts.Logger,
		listFactory: opts.ListFactory,
		listOptions: opts.ListOptions,
	}
}

// New creates a list of records of itemSize bytes with room for allocated
// records. Allocated may be zero.
func (a *ABI) New(itemSize, allocated int) (domain.Status, domain.Handle) {
	fields := logrus.Fields{"itemsize": itemSize, "allocated": allocated}

	opts := make([]domain.ListOption, 0, len(a.listOptions)+2)
	opts = append(opts, a.listOptions...)
	opts = append(opts, domain.WithItemSize(itemSize), domain.WithAllocated(allocated))

	l, err := a.listFactory(opts...)
	if err != nil {
		a.logger.WithFields(fields).WithError(err).Debug("cannot create list")
		return domain.StatusOf(err), 0
	}
	h, err := a.registry.Register(l)
	if err != nil {
		l.Free()
		a.logger.WithFields(fields).WithError(err).Debug("cannot register list")
		return domain.StatusOf(err), 0
	}
	a.logger.WithFields(fields).WithField("handle", h).Debug("list created")
	return domain.StatusOK, h
}

// Free releases the list under h. Freeing an unknown handle is logged and
// otherwise ignored.
func (a *ABI) Free(h domain.Handle) {
	l, ok := a.registry.Release(h)
	if !ok {
		a.unknown(h, "free")
		return
	}
	l.Free()
	a.logger.WithField("handle", h).Debug("list freed")
}

// Length returns the number of records in the list under h, or zero for an
// unknown handle.
func (a *ABI) Length(h domain.Handle) int {
	l, err := a.lookup(h, "length")
	if err != nil {
		return 0
	}
	return l.Len()
}

// SetItem overwrites the record at index i with the first itemsize bytes of
// in.
func (a *ABI) SetItem(h domain.Handle, i int, in []byte) domain.Status {
	l, err := a.lookup(h, "setitem")
	if err != nil {
		return domain.StatusOf(err)
	}
	return domain.StatusOf(l.Set(i, in))
}

// GetItem copies the record at index i into out.
func (a *ABI) GetItem(h domain.Handle, i int, out []byte) domain.Status {
	l, err := a.lookup(h, "getitem")
	if err != nil {
		return domain.StatusOf(err)
	}
	return domain.StatusOf(l.Get(i, out))
}

// Append copies the first itemsize bytes of in to the end of the list.
func (a *ABI) Append(h domain.Handle, in []byte) domain.Status {
	l, err := a.lookup(h, "append")
	if err != nil {
		return domain.StatusOf(err)
	}
	return domain.StatusOf(l.Append(in))
}

// Pop copies the record at index i into out and removes it.
func (a *ABI) Pop(h domain.Handle, i int, out []byte) domain.Status {
	l, err := a.lookup(h, "pop")
	if err != nil {
		return domain.StatusOf(err)
	}
	return domain.StatusOf(l.Pop(i, out))
}

// IterSizeof returns the number of bytes callers must provide as iterator
// storage. It does not depend on any list.
func (a *ABI) IterSizeof() int {
	return storageSize
}

// IterInit writes an iterator over the list under h into storage. Storage
// that is too short, or an unknown handle, leaves the storage unusable and
// the next [ABI.IterNext] reports [domain.StatusInvalidArgument].
func (a *ABI) IterInit(storage []byte, h domain.Handle) {
	if len(storage) < storageSize {
		a.logger.WithFields(logrus.Fields{"handle": h, "size": len(storage)}).Warn("iterator storage too short")
		return
	}
	clear(storage[:storageSize])
	l, err := a.lookup(h, "iter_init")
	if err != nil {
		return
	}
	it := iterator.NewIterator(l)
	iterState{handle: h, cursor: it.Cursor(), generation: it.Generation()}.encode(storage)
}

// IterNext advances the iterator kept in storage. The returned record is a
// read-only view into the list buffer and must not be modified; it is valid
// until the next mutating call on that list.
func (a *ABI) IterNext(storage []byte) (domain.Status, []byte) {
	st, err := decodeState(storage)
	if err != nil {
		return domain.StatusOf(err), nil
	}
	l, err := a.lookup(st.handle, "iter_next")
	if err != nil {
		return domain.StatusOf(err), nil
	}
	it := iterator.Resume(l, st.cursor, st.generation)
	rec, err := it.Next()
	if err != nil {
		return domain.StatusOf(err), nil
	}
	st.cursor = it.Cursor()
	st.encode(storage)
	return domain.StatusOK, rec
}

// Live returns the number of lists that were created and not yet freed.
func (a *ABI) Live() int {
	return a.registry.Len()
}

func (a *ABI) lookup(h domain.Handle, op string) (domain.List, error) {
	l, ok := a.registry.Lookup(h)
	if !ok {
		a.unknown(h, op)
		return nil, domain.ErrInvalidHandle
	}
	return l, nil
}

func (a *ABI) unknown(h domain.Handle, op string) {
	a.logger.WithFields(logrus.Fields{"handle": h, "op": op}).Warn("unknown list handle")
}
