package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/denmor86/points-bridge/internal/client"
	clientmocks "github.com/denmor86/points-bridge/internal/client/mocks"
	appconfig "github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
	"github.com/denmor86/points-bridge/internal/storage/mocks"
)

func TestDispatcher_ProcessQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQueue := mocks.NewMockQueueStorage(ctrl)
	mockChain := clientmocks.NewMockChainClient(ctrl)

	config := appconfig.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	// короткие интервалы, чтобы опрос подтверждения не тормозил тесты
	dispatchConfig := appconfig.DispatchConfig{
		PollInterval:  time.Second,
		MinedInterval: time.Millisecond,
		MinedTimeout:  50 * time.Millisecond,
		MaxAttempts:   5,
	}

	queued := func(id int64, attempts int, hash string) *models.QueuedTransaction {
		return &models.QueuedTransaction{
			ID:       id,
			Sender:   "0xcustody",
			Value:    0,
			GasLimit: 150000,
			Payload:  []byte{0x01},
			ChainID:  1,
			TxHash:   hash,
			Status:   models.TransactionStatusQueued,
			Attempts: attempts,
		}
	}

	testCases := []struct {
		Name       string
		SetupMocks func()
	}{
		{
			Name: "Success. Empty queue is a no-op #1",
			SetupMocks: func() {
				mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(nil, storage.ErrQueueEmpty)
			},
		},
		{
			Name: "Success. Broadcast, confirm and process #2",
			SetupMocks: func() {
				gomock.InOrder(
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(queued(1, 1, ""), nil),
					mockChain.EXPECT().RecommendGasPrice(gomock.Any()).Return(uint64(30000000000), nil),
					mockChain.EXPECT().SendTransaction(gomock.Any(), gomock.Any(), uint64(30000000000)).Return("0xhash1", nil),
					mockQueue.EXPECT().SetTransactionHash(gomock.Any(), int64(1), "0xhash1").Return(nil),
					mockChain.EXPECT().IsMined(gomock.Any(), "0xhash1").Return(true, nil),
					mockQueue.EXPECT().MarkTransactionConfirmed(gomock.Any(), int64(1)).Return(nil),
					mockQueue.EXPECT().MarkTransactionProcessed(gomock.Any(), int64(1)).Return(nil),
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(nil, storage.ErrQueueEmpty),
				)
			},
		},
		{
			Name: "Success. Oracle down, default gas price is used #3",
			SetupMocks: func() {
				gomock.InOrder(
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(queued(2, 1, ""), nil),
					mockChain.EXPECT().RecommendGasPrice(gomock.Any()).Return(uint64(0), client.ErrOracleBadAnswer),
					mockChain.EXPECT().SendTransaction(gomock.Any(), gomock.Any(), uint64(20000000000)).Return("0xhash2", nil),
					mockQueue.EXPECT().SetTransactionHash(gomock.Any(), int64(2), "0xhash2").Return(nil),
					mockChain.EXPECT().IsMined(gomock.Any(), "0xhash2").Return(true, nil),
					mockQueue.EXPECT().MarkTransactionConfirmed(gomock.Any(), int64(2)).Return(nil),
					mockQueue.EXPECT().MarkTransactionProcessed(gomock.Any(), int64(2)).Return(nil),
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(nil, storage.ErrQueueEmpty),
				)
			},
		},
		{
			Name: "Success. Claimed transaction with hash is not broadcast twice #4",
			SetupMocks: func() {
				gomock.InOrder(
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(queued(3, 2, "0xhash3"), nil),
					mockChain.EXPECT().IsMined(gomock.Any(), "0xhash3").Return(true, nil),
					mockQueue.EXPECT().MarkTransactionConfirmed(gomock.Any(), int64(3)).Return(nil),
					mockQueue.EXPECT().MarkTransactionProcessed(gomock.Any(), int64(3)).Return(nil),
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(nil, storage.ErrQueueEmpty),
				)
			},
		},
		{
			Name: "Success. Unmined transaction blocks the queue until next tick #5",
			SetupMocks: func() {
				mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(queued(4, 2, "0xhash4"), nil)
				mockChain.EXPECT().IsMined(gomock.Any(), "0xhash4").Return(false, nil).MinTimes(1)
			},
		},
		{
			Name: "Success. Poisoned transaction goes to dead letter #6",
			SetupMocks: func() {
				gomock.InOrder(
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(queued(5, 6, ""), nil),
					mockQueue.EXPECT().MarkTransactionDeadLetter(gomock.Any(), int64(5)).Return(nil),
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(nil, storage.ErrQueueEmpty),
				)
			},
		},
		{
			Name: "Success. Broadcast failure leaves the transaction claimed #7",
			SetupMocks: func() {
				gomock.InOrder(
					mockQueue.EXPECT().ClaimOldest(gomock.Any()).Return(queued(6, 1, ""), nil),
					mockChain.EXPECT().RecommendGasPrice(gomock.Any()).Return(uint64(30000000000), nil),
					mockChain.EXPECT().SendTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("nonce too low")),
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			dispatcher := NewDispatcher(mockQueue, mockChain, dispatchConfig, config.Chain.DefaultGasPrice)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			dispatcher.ProcessQueue(ctx)
		})
	}
}
