package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/denmor86/points-bridge/internal/client"
	clientmocks "github.com/denmor86/points-bridge/internal/client/mocks"
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
	"github.com/denmor86/points-bridge/internal/storage/mocks"
)

func TestWithdrawalsService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockRecords := mocks.NewMockWithdrawalsStorage(ctrl)
	mockAudit := mocks.NewMockAuditStorage(ctrl)
	mockPoints := clientmocks.NewMockPointsClient(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewWithdrawals(mockUsers, mockRecords, mockAudit, mockPoints, mockChain,
		NewSigner(mockRecords, mockChain), "donut")

	testCases := []struct {
		Name            string
		Login           string
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance *models.UserBalance
	}{
		{
			Name:  "Error. User not found #1",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError:   storage.ErrUserNotFound,
			ExpectedBalance: nil,
		},
		{
			Name:  "Error. Failed get balance #2",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "mda").Return(nil, errors.New("failed to get balance"))
			},
			ExpectedError:   errors.New("failed to get balance"),
			ExpectedBalance: nil,
		},
		{
			Name:  "Success. #3",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "mda").Return(&models.UserBalance{Current: 500, Withdrawn: 100}, nil)
			},
			ExpectedError:   nil,
			ExpectedBalance: &models.UserBalance{Current: 500, Withdrawn: 100},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			balance, err := service.GetBalance(ctx, tc.Login)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedBalance, balance)
			if len(diff) != 0 {
				t.Errorf("expected balance mismatch:\n %s", diff)
			}
		})
	}
}

func TestWithdrawalsService_Withdraw_Points(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockRecords := mocks.NewMockWithdrawalsStorage(ctrl)
	mockAudit := mocks.NewMockAuditStorage(ctrl)
	mockPoints := clientmocks.NewMockPointsClient(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)
	mockAudit.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewWithdrawals(mockUsers, mockRecords, mockAudit, mockPoints, mockChain,
		NewSigner(mockRecords, mockChain), "donut")

	testCases := []struct {
		Name              string
		Login             string
		Request           models.WithdrawalRequest
		SetupMocks        func()
		ExpectedError     error
		ExpectedKind      FailureKind
		ExpectedReceiptID string
	}{
		{
			Name:          "Error. Invalid amount #1",
			Login:         "mda",
			Request:       models.WithdrawalRequest{Asset: "donut", Amount: 0, Rail: models.RailPoints, Destination: "alice"},
			SetupMocks:    func() {},
			ExpectedError: errors.New("validation: invalid withdrawal amount"),
			ExpectedKind:  FailureValidation,
		},
		{
			Name:          "Error. Invalid destination #2",
			Login:         "mda",
			Request:       models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailPoints, Destination: "a"},
			SetupMocks:    func() {},
			ExpectedError: errors.New("validation: invalid withdrawal destination"),
			ExpectedKind:  FailureValidation,
		},
		{
			Name:    "Error. Not enough funds #3",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 1000, Rail: models.RailPoints, Destination: "alice"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(storage.ErrNotEnoughFunds)
			},
			ExpectedError: errors.New("insufficient_funds: not enough funds on balance"),
			ExpectedKind:  FailureInsufficientFunds,
		},
		{
			Name:    "Error. Auth gateway down, refunded #4",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailPoints, Destination: "alice"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(nil)
				mockPoints.EXPECT().Transfer(gomock.Any(), "alice", int64(100)).Return("", client.ErrAuthGateway)
				mockRecords.EXPECT().RefundWithdrawal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: errors.New("refundable: points platform auth gateway unreachable"),
			ExpectedKind:  FailureRefundable,
		},
		{
			Name:    "Error. Platform error, needs review #5",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailPoints, Destination: "alice"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(nil)
				mockPoints.EXPECT().Transfer(gomock.Any(), "alice", int64(100)).Return("", client.ErrPlatformUnavailable)
				mockRecords.EXPECT().MarkNeedsReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: errors.New("needs_review: points platform unavailable"),
			ExpectedKind:  FailureNeedsReview,
		},
		{
			Name:    "Error. Refund rejected, withdrawal already final #6",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailPoints, Destination: "alice"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(nil)
				mockPoints.EXPECT().Transfer(gomock.Any(), "alice", int64(100)).Return("", client.ErrAuthGateway)
				mockRecords.EXPECT().RefundWithdrawal(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyFinal)
			},
			ExpectedError: errors.New("refundable: points platform auth gateway unreachable"),
			ExpectedKind:  FailureRefundable,
		},
		{
			Name:    "Success. #7",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailPoints, Destination: "alice"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(nil)
				mockPoints.EXPECT().Transfer(gomock.Any(), "alice", int64(100)).Return("receipt-42", nil)
				mockPoints.EXPECT().SendNotification(gomock.Any(), "alice", gomock.Any(), gomock.Any()).Return(nil)
				mockRecords.EXPECT().MarkSucceeded(gomock.Any(), gomock.Any(), "receipt-42").Return(nil)
			},
			ExpectedError:     nil,
			ExpectedReceiptID: "receipt-42",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			receipt, err := service.Withdraw(ctx, tc.Login, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}

			if err != nil {
				var settlement *SettlementError
				if !errors.As(err, &settlement) {
					t.Errorf("Expected settlement error, got: '%v'", err)
				} else if settlement.Kind != tc.ExpectedKind {
					t.Errorf("Expected failure kind '%s', got: '%s'", tc.ExpectedKind, settlement.Kind)
				}
				return
			}

			if receipt == nil {
				t.Fatal("Expected receipt, got nil")
			}
			if receipt.Rail != models.RailPoints {
				t.Errorf("Expected rail '%s', got: '%s'", models.RailPoints, receipt.Rail)
			}
			if receipt.Receipt != tc.ExpectedReceiptID {
				t.Errorf("Expected receipt '%s', got: '%s'", tc.ExpectedReceiptID, receipt.Receipt)
			}
		})
	}
}

func TestWithdrawalsService_Withdraw_Chain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockRecords := mocks.NewMockWithdrawalsStorage(ctrl)
	mockAudit := mocks.NewMockAuditStorage(ctrl)
	mockPoints := clientmocks.NewMockPointsClient(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)
	mockAudit.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewWithdrawals(mockUsers, mockRecords, mockAudit, mockPoints, mockChain,
		NewSigner(mockRecords, mockChain), "donut")

	signature := make([]byte, 65)
	for i := range signature {
		signature[i] = byte(i)
	}

	testCases := []struct {
		Name          string
		Login         string
		Request       models.WithdrawalRequest
		SetupMocks    func()
		ExpectedError error
		ExpectedKind  FailureKind
	}{
		{
			Name:    "Error. Chain withdrawals disabled #1",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailChain},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockChain.EXPECT().WithdrawalsEnabled(gomock.Any()).Return(false, nil)
			},
			ExpectedError: errors.New("rail_disabled: chain withdrawals are disabled"),
			ExpectedKind:  FailureRailDisabled,
		},
		{
			Name:    "Error. Chain flag check failed #2",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailChain},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockChain.EXPECT().WithdrawalsEnabled(gomock.Any()).Return(false, client.ErrChainUnavailable)
			},
			ExpectedError: errors.New("refundable: chain rpc unavailable"),
			ExpectedKind:  FailureRefundable,
		},
		{
			Name:    "Error. Not enough funds before debit #3",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 1000, Rail: models.RailChain},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockChain.EXPECT().WithdrawalsEnabled(gomock.Any()).Return(true, nil)
			},
			ExpectedError: errors.New("insufficient_funds: not enough funds on balance"),
			ExpectedKind:  FailureInsufficientFunds,
		},
		{
			Name:    "Error. Persist failed, needs review #4",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailChain},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockChain.EXPECT().WithdrawalsEnabled(gomock.Any()).Return(true, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), false).Return(nil)
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), gomock.Any()).Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(signature, nil)
				mockRecords.EXPECT().AttachSignature(gomock.Any(), "1", gomock.Any()).Return(errors.New("connection reset"))
				mockRecords.EXPECT().MarkNeedsReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: errors.New("needs_review: connection reset"),
			ExpectedKind:  FailureNeedsReview,
		},
		{
			Name:    "Success. #5",
			Login:   "mda",
			Request: models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailChain},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda", Balance: 500}, nil)
				mockChain.EXPECT().WithdrawalsEnabled(gomock.Any()).Return(true, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), false).Return(nil)
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), gomock.Any()).Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(signature, nil)
				mockRecords.EXPECT().AttachSignature(gomock.Any(), "1", gomock.Any()).Return(nil)
				mockRecords.EXPECT().MarkSucceeded(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			receipt, err := service.Withdraw(ctx, tc.Login, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}

			if err != nil {
				var settlement *SettlementError
				if !errors.As(err, &settlement) {
					t.Errorf("Expected settlement error, got: '%v'", err)
				} else if settlement.Kind != tc.ExpectedKind {
					t.Errorf("Expected failure kind '%s', got: '%s'", tc.ExpectedKind, settlement.Kind)
				}
				return
			}

			if receipt == nil {
				t.Fatal("Expected receipt, got nil")
			}
			if receipt.Signed == nil {
				t.Fatal("Expected signed withdrawal in receipt, got nil")
			}
			if len(receipt.Signed.Nonce) != models.NonceHexLen {
				t.Errorf("Expected nonce of %d hex chars, got: %d", models.NonceHexLen, len(receipt.Signed.Nonce))
			}
			if receipt.Signed.SigR != "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" {
				t.Errorf("Unexpected signature r component: '%s'", receipt.Signed.SigR)
			}
			if receipt.Signed.SigV != "40" {
				t.Errorf("Unexpected recovery byte: '%s'", receipt.Signed.SigV)
			}
		})
	}
}

func TestWithdrawalsService_GetWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockRecords := mocks.NewMockWithdrawalsStorage(ctrl)
	mockAudit := mocks.NewMockAuditStorage(ctrl)
	mockPoints := clientmocks.NewMockPointsClient(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewWithdrawals(mockUsers, mockRecords, mockAudit, mockPoints, mockChain,
		NewSigner(mockRecords, mockChain), "donut")

	user := &models.UserData{UserID: "1", Login: "mda", Balance: 500}
	record := &models.WithdrawalData{
		ID:          "w-1",
		UserID:      "1",
		Asset:       "donut",
		Amount:      100,
		Rail:        models.RailPoints,
		Destination: "alice",
		Status:      models.WithdrawalStatusSucceeded,
	}

	testCases := []struct {
		Name           string
		SetupMocks     func()
		ExpectedError  error
		ExpectedRecord *models.WithdrawalData
	}{
		{
			Name: "Error. Withdrawal not found #1",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(user, nil)
				mockRecords.EXPECT().GetWithdrawal(gomock.Any(), "w-1").Return(nil, storage.ErrWithdrawalNotFound)
			},
			ExpectedError: storage.ErrWithdrawalNotFound,
		},
		{
			Name: "Error. Foreign withdrawal looks absent #2",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(user, nil)
				foreign := *record
				foreign.UserID = "2"
				mockRecords.EXPECT().GetWithdrawal(gomock.Any(), "w-1").Return(&foreign, nil)
			},
			ExpectedError: storage.ErrWithdrawalNotFound,
		},
		{
			Name: "Success. #3",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(user, nil)
				mockRecords.EXPECT().GetWithdrawal(gomock.Any(), "w-1").Return(record, nil)
			},
			ExpectedRecord: record,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := service.GetWithdrawal(ctx, "mda", "w-1")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedRecord, result)
			if len(diff) != 0 {
				t.Errorf("expected withdrawal mismatch:\n %s", diff)
			}
		})
	}
}

func TestWithdrawalsService_Withdraw_AuditTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockRecords := mocks.NewMockWithdrawalsStorage(ctrl)
	mockAudit := mocks.NewMockAuditStorage(ctrl)
	mockPoints := clientmocks.NewMockPointsClient(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewWithdrawals(mockUsers, mockRecords, mockAudit, mockPoints, mockChain,
		NewSigner(mockRecords, mockChain), "donut")

	user := &models.UserData{UserID: "1", Login: "mda", Balance: 500}
	request := models.WithdrawalRequest{Asset: "donut", Amount: 100, Rail: models.RailPoints, Destination: "alice"}

	testCases := []struct {
		Name       string
		SetupMocks func()
	}{
		{
			// событие withdrawal_succeeded пишется только после успешного перехода статуса
			Name: "Success. Succeeded event follows the status transition #1",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(user, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(nil)
				mockAudit.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), AuditWithdrawalCreated, gomock.Any()).Return(nil)
				mockPoints.EXPECT().Transfer(gomock.Any(), "alice", int64(100)).Return("receipt-42", nil)
				mockPoints.EXPECT().SendNotification(gomock.Any(), "alice", gomock.Any(), gomock.Any()).Return(nil)
				mockRecords.EXPECT().MarkSucceeded(gomock.Any(), gomock.Any(), "receipt-42").Return(nil)
				mockAudit.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), AuditWithdrawalSucceeded, "receipt-42").Return(nil)
			},
		},
		{
			// при сбое перехода запись эскалируется и событие об успехе не пишется
			Name: "Success. No succeeded event when transition fails #2",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(user, nil)
				mockRecords.EXPECT().AddPendingWithdrawal(gomock.Any(), gomock.Any(), true).Return(nil)
				mockAudit.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), AuditWithdrawalCreated, gomock.Any()).Return(nil)
				mockPoints.EXPECT().Transfer(gomock.Any(), "alice", int64(100)).Return("receipt-42", nil)
				mockPoints.EXPECT().SendNotification(gomock.Any(), "alice", gomock.Any(), gomock.Any()).Return(nil)
				mockRecords.EXPECT().MarkSucceeded(gomock.Any(), gomock.Any(), "receipt-42").Return(errors.New("connection reset"))
				mockRecords.EXPECT().MarkNeedsReview(gomock.Any(), gomock.Any(), "connection reset").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			receipt, err := service.Withdraw(ctx, "mda", request)
			if err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
			if receipt == nil || receipt.Receipt != "receipt-42" {
				t.Errorf("Unexpected receipt: %v", receipt)
			}
		})
	}
}
