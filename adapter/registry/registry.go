// Package registry contains the default [domain.Registry] implementation, an
// AVL tree keyed by handle.
package registry

import (
	"iter"
	"slices"
	"sync"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/bst/adapter/avl"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

// Registry implements [domain.Registry]. The handle table is safe for
// concurrent use; the lists it holds are not.
type Registry struct {
	mu   sync.Mutex
	last domain.Handle
	// Exported to allow testing. Should not be a problem because Registry
	// is used as interface.
	Tree bst.BST[domain.Handle, entry]
}

// NewRegistry returns a new implementation of [domain.Registry]. Handles
// start at 1 and are never reused.
func NewRegistry() domain.Registry {
	return &Registry{
		Tree: avl.NewBST(true, 8, newHandleComparer()),
	}
}

// Register implements [domain.Registry].
func (r *Registry) Register(l domain.List) (domain.Handle, error) {
	if l == nil {
		return 0, domain.ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.last + 1
	if err := r.Tree.Insert(h, entry{handle: h, list: l}); err != nil {
		return 0, err
	}
	r.last = h
	return h, nil
}

// Lookup implements [domain.Registry].
func (r *Registry) Lookup(h domain.Handle) (domain.List, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup(h)
	return e.list, ok
}

// Release implements [domain.Registry].
func (r *Registry) Release(h domain.Handle) (domain.List, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup(h)
	if !ok {
		return nil, false
	}
	if err := r.Tree.Delete(h, &e); err != nil {
		return nil, false
	}
	return e.list, true
}

// Len implements [domain.Registry].
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Tree.GetNumberOfKeys()
}

// Handles implements [domain.Registry]. The sequence is a snapshot taken when
// Handles is called.
func (r *Registry) Handles() iter.Seq[domain.Handle] {
	r.mu.Lock()
	handles := make([]domain.Handle, 0, r.Tree.GetNumberOfKeys())
	for e := range r.Tree.GetAll() {
		handles = append(handles, e.handle)
	}
	r.mu.Unlock()
	slices.Sort(handles)
	return slices.Values(handles)
}

func (r *Registry) lookup(h domain.Handle) (entry, bool) {
	if h == 0 {
		return entry{}, false
	}
	found, err := r.Tree.Search(h)
	if err != nil || found == nil {
		return entry{}, false
	}
	values := found.Values()
	if len(values) == 0 {
		return entry{}, false
	}
	return values[0], true
}
