package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	clientmocks "github.com/denmor86/points-bridge/internal/client/mocks"
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
	"github.com/denmor86/points-bridge/internal/storage/mocks"
)

func TestSignerService_IssueSignedWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRecords := mocks.NewMockWithdrawalsStorage(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	signer := NewSigner(mockRecords, mockChain)

	record := models.WithdrawalData{
		ID:     "w-1",
		UserID: "1",
		Asset:  "donut",
		Amount: 100,
		Rail:   models.RailChain,
		Status: models.WithdrawalStatusPending,
	}
	stored := &models.SignedWithdrawal{
		WithdrawalID: "w-1",
		Nonce:        strings.Repeat("ab", 32),
		Asset:        "donut",
		Amount:       100,
		SigR:         strings.Repeat("11", 32),
		SigS:         strings.Repeat("22", 32),
		SigV:         "1b",
	}
	corrupt := &models.SignedWithdrawal{
		WithdrawalID: "w-1",
		Nonce:        "00",
		Asset:        "donut",
		Amount:       100,
		SigR:         strings.Repeat("11", 32),
		SigS:         strings.Repeat("22", 32),
		SigV:         "1b",
	}
	signature := make([]byte, 65)

	testCases := []struct {
		Name           string
		SetupMocks     func()
		ExpectedError  error
		ExpectedKind   FailureKind
		ExpectedSigned *models.SignedWithdrawal
	}{
		{
			Name: "Success. Already issued signature is returned as is #1",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(stored, nil)
			},
			ExpectedError:  nil,
			ExpectedSigned: stored,
		},
		{
			Name: "Error. Signing failed before persist, refund is safe #2",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(nil, errors.New("no key"))
			},
			ExpectedError: errors.New("refundable: sign withdrawal: no key"),
			ExpectedKind:  FailureRefundable,
		},
		{
			Name: "Error. Truncated signature is rejected #3",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(signature[:64], nil)
			},
			ExpectedError: errors.New("refundable: unexpected signature length 64"),
			ExpectedKind:  FailureRefundable,
		},
		{
			Name: "Error. Debit rolled back on insufficient funds #4",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(signature, nil)
				mockRecords.EXPECT().AttachSignature(gomock.Any(), "1", gomock.Any()).Return(storage.ErrNotEnoughFunds)
			},
			ExpectedError: errors.New("insufficient_funds: not enough funds on balance"),
			ExpectedKind:  FailureInsufficientFunds,
		},
		{
			Name: "Error. Persist failed, effect unknown #5",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(signature, nil)
				mockRecords.EXPECT().AttachSignature(gomock.Any(), "1", gomock.Any()).Return(errors.New("connection reset"))
			},
			ExpectedError: errors.New("needs_review: connection reset"),
			ExpectedKind:  FailureNeedsReview,
		},
		{
			Name: "Error. Corrupt stored signature is not reissued #6",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(corrupt, nil)
			},
			ExpectedError: errors.New("needs_review: stored signature is malformed"),
			ExpectedKind:  FailureNeedsReview,
		},
		{
			Name: "Success. Concurrent issue returns stored signature #7",
			SetupMocks: func() {
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(nil, storage.ErrSignatureNotFound)
				mockChain.EXPECT().WithdrawalHash(gomock.Any(), int64(100)).Return([]byte{0xAB})
				mockChain.EXPECT().Sign(gomock.Any()).Return(signature, nil)
				mockRecords.EXPECT().AttachSignature(gomock.Any(), "1", gomock.Any()).Return(storage.ErrAlreadyExists)
				mockRecords.EXPECT().GetSignedWithdrawal(gomock.Any(), "w-1").Return(stored, nil)
			},
			ExpectedError:  nil,
			ExpectedSigned: stored,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			signed, err := signer.IssueSignedWithdrawal(ctx, "1", record)

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

			diff := cmp.Diff(tc.ExpectedSigned, signed)
			if len(diff) != 0 {
				t.Errorf("expected signed withdrawal mismatch:\n %s", diff)
			}
		})
	}
}
