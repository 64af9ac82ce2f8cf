package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

type DomainTestSuite struct {
	suite.Suite
}

func (s *DomainTestSuite) TestListOptions() {
	var los domain.ListOptions
	lo := []domain.ListOption{
		domain.WithItemSize(8),
		domain.WithAllocated(3),
		domain.WithGrowthFactor(1.5),
		domain.WithInvalidateOnSet(true),
	}
	for _, opt := range lo {
		opt(&los)
	}
	s.Equal(domain.ListOptions{
		ItemSize:        8,
		Allocated:       3,
		GrowthFactor:    1.5,
		InvalidateOnSet: true,
	}, los)
}

func (s *DomainTestSuite) TestABIOptions() {
	var aos domain.ABIOptions
	logger := logrus.New()
	ao := []domain.ABIOption{
		domain.WithABILogger(logger),
		domain.WithABIListOptions(domain.WithGrowthFactor(3)),
		domain.WithABIListOptions(domain.WithInvalidateOnSet(true)),
	}
	for _, opt := range ao {
		opt(&aos)
	}
	s.Equal(logger, aos.Logger)
	s.Len(aos.ListOptions, 2)
	s.Nil(aos.Registry)
}

func (s *DomainTestSuite) TestStatusCodesAreStable() {
	s.Equal(0, int(domain.StatusOK))
	s.Equal(-1, int(domain.StatusIndex))
	s.Equal(-2, int(domain.StatusNoMemory))
	s.Equal(-3, int(domain.StatusMutated))
	s.Equal(-4, int(domain.StatusIterExhausted))
	s.Equal(-5, int(domain.StatusInvalidArgument))
}

func (s *DomainTestSuite) TestStatusOf() {
	tests := []struct {
		err    error
		status domain.Status
	}{
		{nil, domain.StatusOK},
		{domain.ErrIndex, domain.StatusIndex},
		{domain.ErrIndexOutOfRange{Index: 3, Length: 2}, domain.StatusIndex},
		{fmt.Errorf("append: %w", domain.ErrNoMemory), domain.StatusNoMemory},
		{domain.ErrMutated, domain.StatusMutated},
		{domain.ErrIterExhausted, domain.StatusIterExhausted},
		{domain.ErrRecordSize, domain.StatusInvalidArgument},
		{domain.ErrFreed, domain.StatusInvalidArgument},
		{domain.ErrItemSize{ItemSize: 0}, domain.StatusInvalidArgument},
		{errors.New("anything else"), domain.StatusInvalidArgument},
	}
	for _, tt := range tests {
		s.Equal(tt.status, domain.StatusOf(tt.err), "%v", tt.err)
	}
}

func (s *DomainTestSuite) TestStatusErrRoundTrip() {
	for _, st := range []domain.Status{
		domain.StatusOK,
		domain.StatusIndex,
		domain.StatusNoMemory,
		domain.StatusMutated,
		domain.StatusIterExhausted,
		domain.StatusInvalidArgument,
	} {
		s.Equal(st, domain.StatusOf(st.Err()), st.String())
	}
	s.ErrorIs(domain.Status(-42).Err(), domain.ErrInvalidArgument)
	s.Equal("status(-42)", domain.Status(-42).String())
}

func (s *DomainTestSuite) TestIndexOutOfRange() {
	err := fmt.Errorf("get: %w", domain.ErrIndexOutOfRange{Index: -1, Length: 0})
	s.ErrorIs(err, domain.ErrIndex)
	s.NotErrorIs(err, domain.ErrInvalidArgument)

	var target domain.ErrIndexOutOfRange
	s.ErrorAs(err, &target)
	s.Equal(-1, target.Index)
	s.Equal("list index -1 out of range [0, 0)", target.Error())
}

func (s *DomainTestSuite) TestWrappedSentinels() {
	s.ErrorIs(domain.ErrRecordSize, domain.ErrInvalidArgument)
	s.ErrorIs(domain.ErrFreed, domain.ErrInvalidArgument)
	s.ErrorIs(domain.ErrInvalidHandle, domain.ErrInvalidArgument)
	s.ErrorIs(domain.ErrIteratorStorage, domain.ErrInvalidArgument)
	s.ErrorIs(domain.ErrGrowthFactor, domain.ErrInvalidArgument)
	s.ErrorIs(domain.ErrItemSize{ItemSize: -1}, domain.ErrInvalidArgument)
}

func TestDomainTestSuite(t *testing.T) {
	suite.Run(t, new(DomainTestSuite))
}
