package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"marketday/internal/directory"
	"marketday/internal/directory/mocks"
	dErrors "marketday/pkg/domain-errors"
)

type ResolverSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	client   *mocks.MockClient
	resolver *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockClient(s.ctrl)
	s.resolver = NewResolver(s.client, false)
}

func (s *ResolverSuite) TestOpenMarketWithSchedule() {
	s.client.EXPECT().MarketInfo(gomock.Any()).Return(directory.MarketInfo{
		IsOpen: true,
		Current: &directory.Market{
			Date:         "2025-01-17",
			StartTime:    "09:00",
			CheckInStart: "2025-01-17 08:00:00",
			CheckInEnd:   "2025-01-17 12:00:00",
			Color:        "green",
		},
		Next: &directory.Market{Date: "2025-01-24", StartTime: "09:00"},
	}, nil)

	st, err := s.resolver.Status(context.Background())
	s.Require().NoError(err)
	s.True(st.IsOpen)
	s.True(st.HasCurrentMarket)
	s.Equal("2025-01-17", st.MarketDate)
	s.Equal("green", st.Color)
	s.Equal("8:00 AM", st.CheckInStart)
	s.Equal("12:00 PM", st.CheckInEnd)
	s.Equal("January 24, 2025 at 9:00 AM PST", st.NextMarketString)
}

func (s *ResolverSuite) TestNextMarketOnly() {
	s.client.EXPECT().MarketInfo(gomock.Any()).Return(directory.MarketInfo{
		IsOpen: false,
		Next:   &directory.Market{Date: "2025-01-24", StartTime: "09:00"},
	}, nil)

	st, err := s.resolver.Status(context.Background())
	s.Require().NoError(err)
	s.False(st.IsOpen)
	s.False(st.HasCurrentMarket)
	s.Equal("January 24, 2025 at 9:00 AM PST", st.NextMarketString)
}

func (s *ResolverSuite) TestBothMarketsAbsentForcesClosed() {
	// The upstream open flag is inconsistent with the absent markets and
	// must be overridden.
	s.client.EXPECT().MarketInfo(gomock.Any()).Return(directory.MarketInfo{IsOpen: true}, nil)

	st, err := s.resolver.Status(context.Background())
	s.Require().NoError(err)
	s.False(st.IsOpen)
	s.False(st.HasCurrentMarket)
	s.Empty(st.NextMarketString)
}

func (s *ResolverSuite) TestResetNoticePassedThrough() {
	resolver := NewResolver(s.client, true)
	s.client.EXPECT().MarketInfo(gomock.Any()).Return(directory.MarketInfo{}, nil)

	st, err := resolver.Status(context.Background())
	s.Require().NoError(err)
	s.True(st.ResetNotice)
}

func (s *ResolverSuite) TestTransportFailureMapsToInternal() {
	s.client.EXPECT().MarketInfo(gomock.Any()).Return(directory.MarketInfo{}, errors.New("dial tcp: timeout"))

	_, err := s.resolver.Status(context.Background())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ResolverSuite) TestRemoteErrorPassesThrough() {
	s.client.EXPECT().MarketInfo(gomock.Any()).Return(directory.MarketInfo{},
		&directory.RemoteError{Op: "marketInfo", Message: "scheduleUnavailable"})

	_, err := s.resolver.Status(context.Background())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeRemote))
}
