//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"franchise-store/internal/domain/access"
	"franchise-store/internal/domain/user"
	"franchise-store/internal/infra"
	"franchise-store/internal/pkg/clock"
	"franchise-store/internal/pkg/errs"
	"franchise-store/internal/usecase"
	"franchise-store/tests/common/builder"
	usecasemock "franchise-store/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardAccessTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProfiles *usecasemock.MockProfileReader
	mockEvents   *usecasemock.MockSecurityEventSink
	clk          *clock.FakeClock
	dashboard    usecase.DashboardAccess
}

func (s *DashboardAccessTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = usecasemock.NewMockProfileReader(s.mockCtrl)
	s.mockEvents = usecasemock.NewMockSecurityEventSink(s.mockCtrl)
	s.clk = clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.dashboard = usecase.NewDashboardAccess(s.mockProfiles, s.mockEvents, s.clk)
}

func (s *DashboardAccessTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardAccessSuite(t *testing.T) {
	suite.Run(t, new(DashboardAccessTestSuite))
}

func (s *DashboardAccessTestSuite) TestAuthorize() {
	ctx := context.Background()

	s.Run("grants a fully provisioned user", func() {
		profile := builder.NewProfileBuilder().BuildSnapshot()
		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(profile, nil).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), nil)

		s.NoError(err)
		s.True(decision.IsGranted())
	})

	s.Run("anonymous principal is denied without a profile read", func() {
		decision, err := s.dashboard.Authorize(ctx, user.Anonymous(), nil)

		s.NoError(err)
		s.False(decision.IsGranted())
		s.Equal(access.ReasonNotAuthenticated, decision.Reason())
	})

	s.Run("missing profile denies without an error", func() {
		profile := builder.NewProfileBuilder().BuildSnapshot()
		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(nil, infra.WrapRepoErr("profile not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), nil)

		s.NoError(err, "absence is a business outcome, not a failure")
		s.False(decision.IsGranted())
		s.Equal(access.ReasonNoProfile, decision.Reason())
	})

	s.Run("transient read failure denies and surfaces a marked error", func() {
		profile := builder.NewProfileBuilder().BuildSnapshot()
		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(nil, errs.New("connection refused")).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), nil)

		s.Error(err)
		s.True(errs.Is(err, errs.ErrProfileUnavailable))
		s.False(decision.IsGranted())
		s.Equal(access.ReasonProfileUnavailable, decision.Reason())
	})

	s.Run("ordinary denials never reach the event sink", func() {
		profile := builder.NewProfileBuilder().AsUnverified().BuildSnapshot()
		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(profile, nil).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), nil)

		s.NoError(err)
		s.Equal(access.ReasonNotVerified, decision.Reason())
	})
}

func (s *DashboardAccessTestSuite) TestAuthorizeRoleMismatch() {
	ctx := context.Background()

	s.Run("mismatch is reported to the sink exactly once", func() {
		profile := builder.NewProfileBuilder().WithRole("franchise").BuildSnapshot()
		asserted := user.RoleAdmin

		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(profile, nil).Times(1)
		s.mockEvents.EXPECT().Report(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event usecase.SecurityEvent) error {
				s.Equal(usecase.EventRoleMismatch, event.Kind)
				s.NotNil(event.UserID)
				s.Equal(profile.UserID, *event.UserID)
				s.Equal(s.clk.Now(), event.OccurredAt)
				return nil
			}).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), &asserted)

		s.NoError(err)
		s.False(decision.IsGranted())
		s.Equal(access.ReasonRoleMismatch, decision.Reason())
	})

	s.Run("a failing sink does not block the denial", func() {
		profile := builder.NewProfileBuilder().WithRole("franchise").BuildSnapshot()
		asserted := user.RoleOwner

		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(profile, nil).Times(1)
		s.mockEvents.EXPECT().Report(gomock.Any(), gomock.Any()).
			Return(errs.New("sink unavailable")).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), &asserted)

		s.NoError(err)
		s.False(decision.IsGranted())
		s.Equal(access.ReasonRoleMismatch, decision.Reason())
	})

	s.Run("matching asserted role reports nothing", func() {
		profile := builder.NewProfileBuilder().WithRole("admin").BuildSnapshot()
		asserted := user.RoleAdmin

		s.mockProfiles.EXPECT().FindByUserID(gomock.Any(), profile.UserID).
			Return(profile, nil).Times(1)

		decision, err := s.dashboard.Authorize(ctx, user.Authenticated(profile.UserID), &asserted)

		s.NoError(err)
		s.True(decision.IsGranted())
	})
}
