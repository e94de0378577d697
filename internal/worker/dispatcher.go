package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
)

var errNotMined = errors.New("transaction is not mined yet")

// Dispatcher - последовательный обработчик очереди on-chain транзакций.
// Один воркер, строго по одной транзакции: нонсы кастодиального адреса
// обязаны расти монотонно, параллельная отправка рискует коллизиями.
type Dispatcher struct {
	Queue        storage.QueueStorage
	Chain        client.ChainClient
	Config       config.DispatchConfig
	DefaultPrice uint64
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
}

// NewDispatcher - конструктор воркера очереди отправки
func NewDispatcher(queue storage.QueueStorage, chain client.ChainClient, cfg config.DispatchConfig, defaultGasPrice int64) *Dispatcher {
	return &Dispatcher{
		Queue:        queue,
		Chain:        chain,
		Config:       cfg,
		DefaultPrice: uint64(defaultGasPrice),
		QuitChan:     make(chan struct{}),
	}
}

// Start - запускает воркер в фоне
func (w *Dispatcher) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *Dispatcher) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *Dispatcher) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.Config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("Dispatcher signal stop")
			return
		case <-ticker.C:
			w.ProcessQueue(ctx)
		}
	}
}

// ProcessQueue - выгребает очередь до опустошения, строго по одной транзакции
func (w *Dispatcher) ProcessQueue(ctx context.Context) {
	for {
		select {
		case <-w.QuitChan:
			return
		default:
		}

		transaction, err := w.Queue.ClaimOldest(ctx)
		if err != nil {
			if !errors.Is(err, storage.ErrQueueEmpty) {
				logger.Error("Failed to claim queued transaction", zap.Error(err))
			}
			return
		}

		if !w.dispatch(ctx, transaction) {
			// транзакция не дошла до терминального статуса,
			// следующий тик продолжит с неё же
			return
		}
	}
}

// dispatch - проводит одну транзакцию по цепочке статусов
// queued -> sent -> confirmed -> processed
func (w *Dispatcher) dispatch(ctx context.Context, transaction *models.QueuedTransaction) bool {
	// отравленная запись не должна навсегда заблокировать однорядную очередь
	if transaction.Attempts > w.Config.MaxAttempts {
		logger.Error("Transaction exceeded max attempts, moving to dead letter", transaction.ID)
		if err := w.Queue.MarkTransactionDeadLetter(ctx, transaction.ID); err != nil {
			logger.Error("Failed to mark transaction dead letter", zap.Error(err))
			return false
		}
		return true
	}

	txHash := transaction.TxHash
	if txHash == "" {
		hash, err := w.Chain.SendTransaction(ctx, *transaction, w.gasPrice(ctx))
		if err != nil {
			logger.Error("Failed to broadcast transaction", transaction.ID, zap.Error(err))
			return false
		}
		txHash = hash
		// хэш сохраняется сразу: падение после отправки не теряет
		// уже улетевшую в сеть транзакцию
		if err := w.Queue.SetTransactionHash(ctx, transaction.ID, txHash); err != nil {
			logger.Error("Failed to persist transaction hash", zap.Error(err))
			return false
		}
	}

	if err := w.waitMined(ctx, txHash); err != nil {
		logger.Warn("Transaction is not mined yet", transaction.ID, zap.Error(err))
		return false
	}
	if err := w.Queue.MarkTransactionConfirmed(ctx, transaction.ID); err != nil {
		logger.Error("Failed to mark transaction confirmed", zap.Error(err))
		return false
	}

	if err := w.Queue.MarkTransactionProcessed(ctx, transaction.ID); err != nil {
		logger.Error("Failed to mark transaction processed", zap.Error(err))
		return false
	}
	logger.Info("Transaction processed", transaction.ID, txHash)
	return true
}

// gasPrice - рекомендация оракула; его недоступность не повод не отправлять
func (w *Dispatcher) gasPrice(ctx context.Context) uint64 {
	price, err := w.Chain.RecommendGasPrice(ctx)
	if err != nil {
		logger.Warn("Gas oracle unavailable, using default price", zap.Error(err))
		return w.DefaultPrice
	}
	return price
}

// waitMined - опрос сети до подтверждения транзакции
func (w *Dispatcher) waitMined(ctx context.Context, txHash string) error {
	backoff := retry.WithMaxDuration(w.Config.MinedTimeout, retry.NewFibonacci(w.Config.MinedInterval))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		mined, err := w.Chain.IsMined(ctx, txHash)
		if err != nil {
			return retry.RetryableError(err)
		}
		if !mined {
			return retry.RetryableError(errNotMined)
		}
		return nil
	})
}
