package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/services"
	"github.com/denmor86/points-bridge/internal/storage"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "points-platform",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до платформы
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// DeliveryMonitor - воркер опроса ленты входящих переводов.
// Курсор последнего обработанного сообщения хранится в БД и передаётся
// в каждую итерацию: перезапуск процесса продолжает с того же места.
type DeliveryMonitor struct {
	Deliveries services.DeliveriesService
	Settings   storage.SettingsStorage
	Points     client.PointsClient
	Breaker    *gobreaker.CircuitBreaker
	Config     config.DeliveriesConfig
	WaitGroup  sync.WaitGroup
	QuitChan   chan struct{}
}

// NewDeliveryMonitor - конструктор воркера входящих переводов
func NewDeliveryMonitor(deliveries services.DeliveriesService, settings storage.SettingsStorage,
	points client.PointsClient, cfg config.DeliveriesConfig) *DeliveryMonitor {
	return &DeliveryMonitor{
		Deliveries: deliveries,
		Settings:   settings,
		Points:     points,
		Breaker:    InitCircuitBreaker(),
		Config:     cfg,
		QuitChan:   make(chan struct{}),
	}
}

// Start - запускает воркер в фоне
func (w *DeliveryMonitor) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *DeliveryMonitor) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *DeliveryMonitor) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.Config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("DeliveryMonitor signal stop")
			return
		case <-ticker.C:
			w.ProcessFeed(ctx)
		}
	}
}

// ProcessFeed - обработка одной пачки сообщений ленты
func (w *DeliveryMonitor) ProcessFeed(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	cursor, err := w.Settings.GetDeliveryCursor(ctx)
	if err != nil {
		logger.Error("Failed to get delivery cursor", zap.Error(err))
		return
	}

	response, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Points.ListMessages(ctx, cursor)
	})
	if err != nil {
		logger.Error("Failed to list platform messages", zap.Error(err))
		return
	}
	messages := response.([]client.Message)
	if len(messages) == 0 {
		return
	}
	if len(messages) > w.Config.BatchSize {
		messages = messages[:w.Config.BatchSize]
	}

	result, err := w.Deliveries.ProcessDeliveries(ctx, messages)
	if err != nil {
		// курсор не двигаем: следующая итерация повторит пачку,
		// дедупликация делает повтор безопасным
		logger.Error("Failed to process deliveries", zap.Error(err))
		return
	}

	// сообщения помечаются прочитанными только после зачисления
	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}
	if err := w.Points.MarkMessagesRead(ctx, ids); err != nil {
		logger.Warn("Failed to mark messages read", zap.Error(err))
	}

	if err := w.Settings.SetDeliveryCursor(ctx, messages[len(messages)-1].ID); err != nil {
		logger.Error("Failed to advance delivery cursor", zap.Error(err))
		return
	}

	logger.Info("Deliveries processed",
		"credited", result.Credited,
		"skipped", result.Skipped,
		"refunded", result.Refunded,
	)
}
