package reclist_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/reclist"
)

type ReclistTestSuite struct {
	suite.Suite
}

func (s *ReclistTestSuite) drain(h reclist.Handle) []string {
	storage := make([]byte, reclist.IterSizeof())
	reclist.IterInit(storage, h)
	var res []string
	for {
		st, rec := reclist.IterNext(storage)
		if st == reclist.StatusIterExhausted {
			return res
		}
		s.Require().Equal(reclist.StatusOK, st)
		res = append(res, string(rec))
	}
}

func (s *ReclistTestSuite) TestEndToEnd() {
	st, h := reclist.New(8, 0)
	s.Require().Equal(reclist.StatusOK, st)
	defer reclist.Free(h)

	s.Equal(reclist.StatusOK, reclist.Append(h, []byte("abcdefgh")))
	s.Equal(1, reclist.Length(h))
	out := make([]byte, 8)
	s.Equal(reclist.StatusOK, reclist.GetItem(h, 0, out))
	s.Equal("abcdefgh", string(out))

	s.Equal(reclist.StatusOK, reclist.Append(h, []byte("ijklmnop")))
	s.Equal(2, reclist.Length(h))
	s.Equal(reclist.StatusOK, reclist.GetItem(h, 0, out))
	s.Equal("abcdefgh", string(out))
}

func (s *ReclistTestSuite) TestPopSequence() {
	st, h := reclist.New(1, 0)
	s.Require().Equal(reclist.StatusOK, st)
	defer reclist.Free(h)

	for _, c := range "abcdefgh" {
		s.Require().Equal(reclist.StatusOK, reclist.Append(h, []byte{byte(c)}))
	}
	out := make([]byte, 1)

	s.Equal(reclist.StatusOK, reclist.Pop(h, reclist.Length(h)-1, out))
	s.Equal("h", string(out))
	s.Equal([]string{"a", "b", "c", "d", "e", "f", "g"}, s.drain(h))

	s.Equal(reclist.StatusOK, reclist.Pop(h, 0, out))
	s.Equal("a", string(out))

	s.Equal(reclist.StatusOK, reclist.Pop(h, 2, out))
	s.Equal("d", string(out))
	s.Equal([]string{"b", "c", "e", "f", "g"}, s.drain(h))
}

func (s *ReclistTestSuite) TestStatusMapping() {
	st, h := reclist.New(2, 0)
	s.Require().Equal(reclist.StatusOK, st)
	defer reclist.Free(h)

	s.Equal(reclist.StatusIndex, reclist.SetItem(h, 0, []byte("ab")))
	s.Equal(reclist.StatusInvalidArgument, reclist.Append(h, []byte("a")))

	st, _ = reclist.New(0, 0)
	s.Equal(reclist.StatusInvalidArgument, st)
}

func (s *ReclistTestSuite) TestGoSurface() {
	l, err := reclist.NewList(reclist.WithItemSize(2), reclist.WithInvalidateOnSet(true))
	s.Require().NoError(err)
	s.NoError(l.Append([]byte("ab")))

	it := reclist.NewIterator(l)
	s.NoError(l.Set(0, []byte("cd")))
	_, err = it.Next()
	s.ErrorIs(err, reclist.ErrMutated)

	s.ErrorIs(l.Get(1, make([]byte, 2)), reclist.ErrIndex)
	var oor reclist.ErrIndexOutOfRange
	s.ErrorAs(l.Get(1, make([]byte, 2)), &oor)
	s.Equal(1, oor.Length)

	_, err = reclist.NewList(reclist.WithItemSize(0))
	s.ErrorAs(err, &reclist.ErrItemSize{})
}

func TestReclistTestSuite(t *testing.T) {
	suite.Run(t, new(ReclistTestSuite))
}
