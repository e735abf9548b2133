//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"franchise-store/internal/domain/pricing"
	"franchise-store/internal/infra"
	"franchise-store/internal/pkg/clock"
	"franchise-store/internal/usecase/commands"
	"franchise-store/tests/common/builder"
	commandsmock "franchise-store/tests/mock/commands"
	queriesmock "franchise-store/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Quote is the lock-free path and fully unit-testable; Confirm and
// AdjustDeliveryFee open real transactions and are covered by the e2e
// checkout tests.
type OrderCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockOrderRepo   *commandsmock.MockOrderRepository
	mockLoyaltyRepo *commandsmock.MockLoyaltyRepository
	mockLoyaltyRead *commandsmock.MockLoyaltyReader
	mockQueries     *queriesmock.MockOrderQueries
	orderCommands   commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderRepo = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.mockLoyaltyRepo = commandsmock.NewMockLoyaltyRepository(s.mockCtrl)
	s.mockLoyaltyRead = commandsmock.NewMockLoyaltyReader(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.orderCommands = commands.NewOrderCommands(
		s.mockOrderRepo, s.mockLoyaltyRepo, s.mockLoyaltyRead, s.mockQueries, nil, clk)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestQuote() {
	ctx := context.Background()

	s.Run("previews the breakdown without touching the ledger", func() {
		order := builder.NewOrderBuilder()
		s.mockLoyaltyRead.EXPECT().FindAccountByUserID(gomock.Any(), order.UserID).
			Return(ptrAccount(order.BuildAccount()), nil).Times(1)

		result, err := s.orderCommands.Quote(ctx, order.UserID, order.BuildDTO())

		s.Require().NoError(err)
		s.Equal(order.BuildResult(), *result)
	})

	s.Run("missing loyalty account", func() {
		order := builder.NewOrderBuilder()
		s.mockLoyaltyRead.EXPECT().FindAccountByUserID(gomock.Any(), order.UserID).
			Return(nil, infra.WrapRepoErr("account not found", errorForTest(), infra.KindNotFound)).Times(1)

		_, err := s.orderCommands.Quote(ctx, order.UserID, order.BuildDTO())

		s.ErrorIs(err, commands.ErrLoyaltyAccountNotFound)
	})

	s.Run("read store failure marks a database error", func() {
		order := builder.NewOrderBuilder()
		s.mockLoyaltyRead.EXPECT().FindAccountByUserID(gomock.Any(), order.UserID).
			Return(nil, errorForTest()).Times(1)

		_, err := s.orderCommands.Quote(ctx, order.UserID, order.BuildDTO())

		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("pricing violations pass through untranslated", func() {
		order := builder.NewOrderBuilder().WithRequestedPoints(400).WithAvailablePoints(1000)
		s.mockLoyaltyRead.EXPECT().FindAccountByUserID(gomock.Any(), order.UserID).
			Return(ptrAccount(order.BuildAccount()), nil).Times(1)

		_, err := s.orderCommands.Quote(ctx, order.UserID, order.BuildDTO())

		var capErr *pricing.DiscountCapError
		s.Require().ErrorAs(err, &capErr)
		s.Equal(int64(300), capErr.Max)
	})

	s.Run("insufficient balance", func() {
		order := builder.NewOrderBuilder().WithAvailablePoints(100)
		s.mockLoyaltyRead.EXPECT().FindAccountByUserID(gomock.Any(), order.UserID).
			Return(ptrAccount(order.BuildAccount()), nil).Times(1)

		_, err := s.orderCommands.Quote(ctx, order.UserID, order.BuildDTO())

		s.ErrorIs(err, pricing.ErrInsufficientPoints)
	})
}

func ptrAccount(a pricing.Account) *pricing.Account {
	return &a
}
