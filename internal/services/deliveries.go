package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
)

// Тема автоматического уведомления платформы о переводе баллов
const transferSubject = "points transfer"

// Строгий формат тела уведомления: "u/<отправитель> sent you <сумма> <актив>."
// Всё, что не совпадает, молча игнорируется: лента содержит и обычную почту.
var transferPattern = regexp.MustCompile(`^u/([A-Za-z0-9_-]+) sent you ([0-9]+) ([a-z]+)\.$`)

type DeliveriesService interface {
	ProcessDeliveries(ctx context.Context, messages []client.Message) (*models.DeliveryResult, error)
}

type Deliveries struct {
	Storage     storage.DeliveriesStorage
	Settings    storage.SettingsStorage
	Queue       storage.QueueStorage
	Points      client.PointsClient
	Chain       client.ChainClient
	Withdrawals WithdrawalsService
	ChainConfig config.ChainConfig
	Asset       string
}

// Создание сервиса
func NewDeliveries(deliveries storage.DeliveriesStorage, settings storage.SettingsStorage, queue storage.QueueStorage,
	points client.PointsClient, chain client.ChainClient, withdrawals WithdrawalsService,
	chainConfig config.ChainConfig, asset string) *Deliveries {
	return &Deliveries{
		Storage:     deliveries,
		Settings:    settings,
		Queue:       queue,
		Points:      points,
		Chain:       chain,
		Withdrawals: withdrawals,
		ChainConfig: chainConfig,
		Asset:       asset,
	}
}

// ParseDelivery — разбор входящего сообщения ленты.
// Возвращает false для сообщений, не являющихся уведомлением о переводе.
func (s *Deliveries) ParseDelivery(message client.Message) (*models.Delivery, bool) {
	if message.Subject != transferSubject {
		return nil, false
	}
	match := transferPattern.FindStringSubmatch(message.Body)
	if match == nil {
		return nil, false
	}
	if match[3] != s.Asset {
		return nil, false
	}
	amount, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil || amount <= 0 {
		return nil, false
	}
	return &models.Delivery{
		MessageID:  message.ID,
		Sender:     match[1],
		Amount:     amount,
		ReceivedAt: message.CreatedAt,
	}, true
}

// ProcessDeliveries — дедупликация и зачисление пачки входящих переводов.
// Каждая доставка независимо либо зачисляется, либо распознаётся как уже
// обработанная: повторное чтение ленты после падения безопасно.
func (s *Deliveries) ProcessDeliveries(ctx context.Context, messages []client.Message) (*models.DeliveryResult, error) {
	settings, err := s.Settings.GetIntakeSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get intake settings: %w", err)
	}

	result := &models.DeliveryResult{}
	for _, message := range messages {
		delivery, ok := s.ParseDelivery(message)
		if !ok {
			continue
		}

		applied, err := s.Storage.CreditIfNotDuplicate(ctx, *delivery)
		if err != nil {
			return result, fmt.Errorf("credit delivery %s: %w", delivery.MessageID, err)
		}
		if !applied {
			// повтор ленты после падения или сетевого ретрая
			logger.Info("Delivery already processed", delivery.MessageID)
			result.Skipped++
			continue
		}
		result.Credited++

		// зеркалим депозит минтом в кастодиальный резерв on-chain
		s.enqueueMint(ctx, delivery.Amount)

		refund := s.refundAmount(settings, delivery.Amount)
		if refund > 0 {
			s.compensate(ctx, delivery, refund)
			result.Refunded++
			continue
		}

		// обычное подтверждение депозита, по принципу best-effort
		if err := s.Points.SendNotification(ctx, delivery.Sender, "Deposit received",
			fmt.Sprintf("Your deposit of %d %s has been credited.", delivery.Amount, s.Asset)); err != nil {
			logger.Warn("Failed to send deposit notification", zap.Error(err))
		}
	}

	return result, nil
}

// размер компенсирующего возврата: всё при выключенном приёме, излишек при превышении лимита
func (s *Deliveries) refundAmount(settings *models.IntakeSettings, amount int64) int64 {
	if !settings.Enabled {
		return amount
	}
	if settings.DepositCap > 0 && amount > settings.DepositCap {
		return amount - settings.DepositCap
	}
	return 0
}

// compensate — автоматический возврат отправителю через ту же исходящую рельсу.
// Возврат идёт через обычный конвейер вывода: списание и перевод остаются
// атомарными и учитываются при сверке балансов.
func (s *Deliveries) compensate(ctx context.Context, delivery *models.Delivery, refund int64) {
	request := models.WithdrawalRequest{
		Asset:       s.Asset,
		Amount:      refund,
		Rail:        models.RailPoints,
		Destination: delivery.Sender,
	}
	if _, err := s.Withdrawals.Withdraw(ctx, delivery.Sender, request); err != nil {
		logger.Error("Failed to refund over-limit delivery", delivery.MessageID, zap.Error(err))
	}

	// текст зависит от причины: приём выключен целиком или превышен лимит
	subject := "Deposit partially returned"
	body := fmt.Sprintf("%d %s from your deposit was returned: the amount exceeds the current intake limit.", refund, s.Asset)
	if refund == delivery.Amount {
		subject = "Deposit returned"
		body = fmt.Sprintf("Your deposit of %d %s was returned: deposits are temporarily disabled.", refund, s.Asset)
	}
	if err := s.Points.SendNotification(ctx, delivery.Sender, subject, body); err != nil {
		logger.Warn("Failed to send refund notification", zap.Error(err))
	}
}

// enqueueMint — постановка минта в последовательную очередь отправки
func (s *Deliveries) enqueueMint(ctx context.Context, amount int64) {
	transaction := models.QueuedTransaction{
		Sender:    s.ChainConfig.CustodyAddr,
		Recipient: s.ChainConfig.ContractAddr,
		Value:     0,
		GasLimit:  s.ChainConfig.GasLimit,
		Payload:   s.Chain.MintPayload(s.ChainConfig.CustodyAddr, amount),
		ChainID:   s.ChainConfig.ChainID,
	}
	if _, err := s.Queue.Enqueue(ctx, transaction); err != nil {
		logger.Error("Failed to enqueue mint transaction", zap.Error(err))
	}
}
