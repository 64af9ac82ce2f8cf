package registry

import (
	"cmp"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

type entry struct {
	handle domain.Handle
	list   domain.List
}

type handleComparer struct{}

// newHandleComparer returns the [bst.Comparer] that orders registry entries
// by handle.
func newHandleComparer() bst.Comparer[domain.Handle, entry] {
	return handleComparer{}
}

// CompareKeys implements bst.Comparer.
func (handleComparer) CompareKeys(a domain.Handle, b domain.Handle) (int, error) {
	return cmp.Compare(a, b), nil
}

// CompareValues implements bst.Comparer.
func (handleComparer) CompareValues(a entry, b entry) (bool, error) {
	return a.handle == b.handle && a.list == b.list, nil
}
