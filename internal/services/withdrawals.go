package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
	"github.com/denmor86/points-bridge/internal/validators"
)

// События аудита жизненного цикла вывода средств
const (
	AuditWithdrawalCreated     = "withdrawal_created"
	AuditWithdrawalSucceeded   = "withdrawal_succeeded"
	AuditWithdrawalRefunded    = "withdrawal_refunded"
	AuditWithdrawalNeedsReview = "withdrawal_needs_review"
)

type WithdrawalsService interface {
	Withdraw(ctx context.Context, login string, request models.WithdrawalRequest) (*models.WithdrawalReceipt, error)
	GetBalance(ctx context.Context, login string) (*models.UserBalance, error)
	GetWithdrawals(ctx context.Context, login string) ([]models.WithdrawalData, error)
	GetWithdrawal(ctx context.Context, login string, withdrawalID string) (*models.WithdrawalData, error)
}

type Withdrawals struct {
	Users   storage.UsersStorage
	Records storage.WithdrawalsStorage
	Audit   storage.AuditStorage
	Points  client.PointsClient
	Chain   client.ChainClient
	Signer  SignerService
	Asset   string
}

// Создание сервиса
func NewWithdrawals(users storage.UsersStorage, records storage.WithdrawalsStorage, audit storage.AuditStorage,
	points client.PointsClient, chain client.ChainClient, signer SignerService, asset string) *Withdrawals {
	return &Withdrawals{
		Users:   users,
		Records: records,
		Audit:   audit,
		Points:  points,
		Chain:   chain,
		Signer:  signer,
		Asset:   asset,
	}
}

// GetBalance возвращает баланс пользователя
func (s *Withdrawals) GetBalance(ctx context.Context, login string) (*models.UserBalance, error) {
	balance, err := s.Users.GetUserBalance(ctx, login)
	if err != nil {
		logger.Error("Failed to get user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// GetWithdrawals возвращает список всех выводов средств пользователя
func (s *Withdrawals) GetWithdrawals(ctx context.Context, login string) ([]models.WithdrawalData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", login)
			return nil, storage.ErrUserNotFound
		}
		logger.Error("Error getting user", zap.Error(err))
		return nil, err
	}

	withdrawals, err := s.Records.GetWithdrawals(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to get withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// GetWithdrawal возвращает одну запись о выводе по её идентификатору.
// Чужие записи неотличимы от несуществующих.
func (s *Withdrawals) GetWithdrawal(ctx context.Context, login string, withdrawalID string) (*models.WithdrawalData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", login)
			return nil, storage.ErrUserNotFound
		}
		logger.Error("Error getting user", zap.Error(err))
		return nil, err
	}

	record, err := s.Records.GetWithdrawal(ctx, withdrawalID)
	if err != nil {
		if errors.Is(err, storage.ErrWithdrawalNotFound) {
			return nil, storage.ErrWithdrawalNotFound
		}
		logger.Error("Failed to get withdrawal", zap.Error(err))
		return nil, err
	}
	if record.UserID != user.UserID {
		return nil, storage.ErrWithdrawalNotFound
	}
	return record, nil
}

// Withdraw — обработка запроса вывода средств от начала до конца:
// списание, отправка по нужной рельсе, возврат или эскалация при сбое.
func (s *Withdrawals) Withdraw(ctx context.Context, login string, request models.WithdrawalRequest) (*models.WithdrawalReceipt, error) {
	if !validators.CheckAmount(request.Amount) {
		return nil, NewSettlementError(FailureValidation, errors.New("invalid withdrawal amount"))
	}
	if !validators.CheckRail(request.Rail) {
		return nil, NewSettlementError(FailureValidation, errors.New("unknown withdrawal rail"))
	}
	if !validators.CheckDestination(request.Rail, request.Destination) {
		return nil, NewSettlementError(FailureValidation, errors.New("invalid withdrawal destination"))
	}

	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	// до любого списания проверяем, что рельса вообще включена
	if request.Rail == models.RailChain {
		enabled, err := s.Chain.WithdrawalsEnabled(ctx)
		if err != nil {
			logger.Error("Failed to check chain withdrawals flag", zap.Error(err))
			return nil, NewSettlementError(FailureRefundable, err)
		}
		if !enabled {
			return nil, NewSettlementError(FailureRailDisabled, errors.New("chain withdrawals are disabled"))
		}
		if user.Balance < request.Amount {
			return nil, NewSettlementError(FailureInsufficientFunds, storage.ErrNotEnoughFunds)
		}
	}

	record := models.WithdrawalData{
		ID:          uuid.NewString(),
		UserID:      user.UserID,
		Asset:       s.Asset,
		Amount:      request.Amount,
		Rail:        request.Rail,
		Destination: request.Destination,
		Status:      models.WithdrawalStatusPending,
	}

	// для рельсы баллов списание атомарно с созданием записи;
	// для блокчейна списание произойдёт вместе с сохранением подписи
	debit := request.Rail == models.RailPoints
	if err := s.Records.AddPendingWithdrawal(ctx, record, debit); err != nil {
		if errors.Is(err, storage.ErrNotEnoughFunds) {
			return nil, NewSettlementError(FailureInsufficientFunds, err)
		}
		logger.Error("Failed to create withdrawal record", zap.Error(err))
		return nil, err
	}
	s.appendAudit(record.ID, AuditWithdrawalCreated, record.Rail)

	receipt, settleErr := s.settle(ctx, user, record)
	if settleErr != nil {
		return nil, s.finalizeFailure(ctx, record, settleErr)
	}

	if err := s.Records.MarkSucceeded(ctx, record.ID, receipt.Receipt); err != nil {
		// запись уже терминальна либо хранилище недоступно: средства ушли,
		// автоматический возврат запрещён
		logger.Error("Failed to mark withdrawal succeeded", zap.Error(err))
		if !errors.Is(err, storage.ErrAlreadyFinal) {
			if reviewErr := s.Records.MarkNeedsReview(ctx, record.ID, err.Error()); reviewErr != nil {
				logger.Error("Failed to mark withdrawal for review", zap.Error(reviewErr))
			}
		}
	} else {
		s.appendAudit(record.ID, AuditWithdrawalSucceeded, receipt.Receipt)
	}

	return receipt, nil
}

// settle — отправка по расчётному пути выбранной рельсы.
// Любая ошибка возвращается уже классифицированной.
func (s *Withdrawals) settle(ctx context.Context, user *models.UserData, record models.WithdrawalData) (*models.WithdrawalReceipt, *SettlementError) {
	switch record.Rail {
	case models.RailPoints:
		return s.settlePoints(ctx, record)
	case models.RailChain:
		return s.settleChain(ctx, user, record)
	}
	return nil, NewSettlementError(FailureValidation, errors.New("unknown withdrawal rail"))
}

// settlePoints — перевод баллов получателю на платформе.
// Недоступность шлюза аутентификации означает, что перевод не состоялся
// и возврат безопасен; остальные ошибки оставляют эффект неизвестным.
func (s *Withdrawals) settlePoints(ctx context.Context, record models.WithdrawalData) (*models.WithdrawalReceipt, *SettlementError) {
	receiptID, err := s.Points.Transfer(ctx, record.Destination, record.Amount)
	if err != nil {
		if errors.Is(err, client.ErrAuthGateway) {
			return nil, NewSettlementError(FailureRefundable, err)
		}
		return nil, NewSettlementError(FailureNeedsReview, err)
	}

	// перевод уже финален: сбой уведомления его не отменяет
	if err := s.Points.SendNotification(ctx, record.Destination, "Points received",
		"You have received "+record.Asset+" points from the bridge."); err != nil {
		logger.Warn("Failed to send transfer notification", zap.Error(err))
	}

	return &models.WithdrawalReceipt{
		WithdrawalID: record.ID,
		Rail:         models.RailPoints,
		Receipt:      receiptID,
	}, nil
}

// settleChain — выдача подписанного вывода для погашения напрямую из контракта
func (s *Withdrawals) settleChain(ctx context.Context, user *models.UserData, record models.WithdrawalData) (*models.WithdrawalReceipt, *SettlementError) {
	signed, err := s.Signer.IssueSignedWithdrawal(ctx, user.UserID, record)
	if err != nil {
		var settlement *SettlementError
		if errors.As(err, &settlement) {
			return nil, settlement
		}
		return nil, NewSettlementError(FailureNeedsReview, err)
	}

	return &models.WithdrawalReceipt{
		WithdrawalID: record.ID,
		Rail:         models.RailChain,
		Receipt:      signed.Nonce,
		Signed:       signed,
	}, nil
}

// finalizeFailure — ровно один терминальный исход на сбойный вывод:
// либо возврат, либо эскалация оператору. Взаимное исключение обеспечивает
// условие status='pending' в хранилище.
func (s *Withdrawals) finalizeFailure(ctx context.Context, record models.WithdrawalData, settleErr *SettlementError) error {
	switch settleErr.Kind {
	case FailureRefundable, FailureInsufficientFunds, FailureRailDisabled, FailureValidation:
		if err := s.Records.RefundWithdrawal(ctx, record, settleErr.Error()); err != nil {
			if errors.Is(err, storage.ErrAlreadyFinal) {
				logger.Error("Refund rejected: withdrawal already finalized", record.ID)
			} else {
				logger.Error("Failed to refund withdrawal", zap.Error(err))
			}
		} else {
			s.appendAudit(record.ID, AuditWithdrawalRefunded, settleErr.Error())
		}
	case FailureNeedsReview:
		if err := s.Records.MarkNeedsReview(ctx, record.ID, settleErr.Error()); err != nil {
			if errors.Is(err, storage.ErrAlreadyFinal) {
				logger.Error("Review flag rejected: withdrawal already finalized", record.ID)
			} else {
				logger.Error("Failed to mark withdrawal for review", zap.Error(err))
			}
		} else {
			s.appendAudit(record.ID, AuditWithdrawalNeedsReview, settleErr.Error())
		}
	}
	return settleErr
}

// запись события аудита, fire-and-forget
func (s *Withdrawals) appendAudit(withdrawalID string, event string, detail string) {
	if err := s.Audit.AppendEvent(context.Background(), withdrawalID, event, detail); err != nil {
		logger.Warn("Failed to append audit event", zap.Error(err))
	}
}
