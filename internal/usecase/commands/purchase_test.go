//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"nft-market/internal/domain/nft"
	"nft-market/internal/domain/payment"
	"nft-market/internal/pkg/clock"
	"nft-market/internal/usecase/commands"
	"nft-market/tests/common/builder"
	commandsmock "nft-market/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockPaymentGateway
	mockRepo    *commandsmock.MockOwnershipRepository
	clock       *clock.MockClock
	uc          commands.PurchaseCommands
	txRef       payment.TransactionRef
}

func (s *PurchaseCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockRepo = commandsmock.NewMockOwnershipRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	payee, err := payment.NewWalletAddress(builder.TestPayeeWallet)
	s.Require().NoError(err)
	price, err := payment.NewTokenAmount(100)
	s.Require().NoError(err)

	s.txRef, err = payment.NewTransactionRef(builder.TestTransactionRef)
	s.Require().NoError(err)

	s.uc = commands.NewPurchaseCommands(s.mockGateway, s.mockRepo,
		commands.PurchaseConfig{Payee: payee, Price: price}, s.clock)
}

func (s *PurchaseCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseCommandsSuite(t *testing.T) {
	suite.Run(t, new(PurchaseCommandsTestSuite))
}

// ================================================================================
// TestPurchaseNFT
// ================================================================================

func (s *PurchaseCommandsTestSuite) TestPurchaseNFT() {
	req := builder.NewPurchaseBuilder().BuildPurchaseRequestDTO()

	s.Run("success: payment then record, in that order", func() {
		gatewayCall := s.mockGateway.EXPECT().
			ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.txRef, nil).Times(1)
		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			After(gatewayCall).
			DoAndReturn(func(_ context.Context, o *nft.Ownership) error {
				s.Equal(req.UserWallet, o.PayerWallet().String())
				s.Equal(req.NFTID, o.AssetID().String())
				s.Equal(s.txRef.String(), o.TransactionRef().String())
				s.Equal(s.clock.Now(), o.CreatedAt())
				return nil
			}).Times(1)

		result, err := s.uc.PurchaseNFT(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(s.txRef.String(), result.TransactionRef)
		s.Equal(req.NFTID, result.AssetID)
	})

	s.Run("success: configured payee and price are passed to the gateway", func() {
		s.mockGateway.EXPECT().
			ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payer, payee payment.WalletAddress, amount payment.TokenAmount) (payment.TransactionRef, error) {
				s.Equal(req.UserWallet, payer.String())
				s.Equal(builder.TestPayeeWallet, payee.String())
				s.Equal(uint64(100), amount.BaseUnits())
				return s.txRef, nil
			}).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := s.uc.PurchaseNFT(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("error: invalid wallet never reaches the gateway", func() {
		bad := builder.NewPurchaseBuilder().WithUserWallet("not-base58").BuildPurchaseRequestDTO()

		result, err := s.uc.PurchaseNFT(context.Background(), bad)

		s.Require().ErrorIs(err, payment.ErrInvalidAddress)
		s.Nil(result)
	})

	s.Run("error: invalid asset id never reaches the gateway", func() {
		bad := builder.NewPurchaseBuilder().WithNFTID("a/b").BuildPurchaseRequestDTO()

		result, err := s.uc.PurchaseNFT(context.Background(), bad)

		s.Require().ErrorIs(err, nft.ErrInvalidAssetID)
		s.Nil(result)
	})

	s.Run("error: gateway failure aborts before any write", func() {
		s.mockGateway.EXPECT().
			ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(payment.TransactionRef{}, payment.ErrInsufficientFunds).Times(1)
		// No Create expectation: a repo call here fails the test.

		result, err := s.uc.PurchaseNFT(context.Background(), req)

		s.Require().ErrorIs(err, payment.ErrInsufficientFunds)
		s.Nil(result)
	})

	s.Run("error: record failure after payment surfaces the transaction ref", func() {
		s.mockGateway.EXPECT().
			ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.txRef, nil).Times(1)
		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(commands.ErrStorageUnavailable).Times(1)

		result, err := s.uc.PurchaseNFT(context.Background(), req)

		s.Require().Error(err)
		s.Nil(result)

		var recordErr *commands.RecordFailedError
		s.Require().ErrorAs(err, &recordErr)
		s.Equal(s.txRef.String(), recordErr.TransactionRef)
		s.Equal(req.UserWallet, recordErr.PayerWallet)
		s.Equal(req.NFTID, recordErr.AssetID)
		s.ErrorIs(err, commands.ErrPaymentSucceededRecordFailed)
		// The single Times(1) gateway expectation above also proves the
		// payment is not re-submitted to repair the write.
	})
}

// ================================================================================
// TestReplayRecord
// ================================================================================

func (s *PurchaseCommandsTestSuite) TestReplayRecord() {
	req := builder.NewPurchaseBuilder().BuildReconcileRequestDTO()

	s.Run("success: writes the record without touching the gateway", func() {
		// No gateway expectation: any ProcessPayment call fails the test.
		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *nft.Ownership) error {
				s.Equal(req.TransactionRef, o.TransactionRef().String())
				return nil
			}).Times(1)

		result, err := s.uc.ReplayRecord(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(req.TransactionRef, result.TransactionRef)
		s.Equal(req.NFTID, result.AssetID)
	})

	s.Run("error: empty transaction ref is rejected before the write", func() {
		bad := builder.NewPurchaseBuilder().WithTransactionRef("").BuildReconcileRequestDTO()

		result, err := s.uc.ReplayRecord(context.Background(), bad)

		s.Require().ErrorIs(err, payment.ErrEmptyReference)
		s.Nil(result)
	})

	s.Run("error: write failure is marked as storage unavailable", func() {
		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(commands.ErrStorageUnavailable).Times(1)

		result, err := s.uc.ReplayRecord(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrStorageUnavailable)
		s.Nil(result)
	})
}
