package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	// message_id — первичный ключ: повторное сообщение молча превращается в no-op
	InsertDelivery = `INSERT INTO DELIVERIES (message_id, sender, amount, received_at)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (message_id) DO NOTHING
						RETURNING message_id;`
	// отправитель может быть ещё не зарегистрирован, баланс заводится по логину
	UpsertSenderBalance = `INSERT INTO USERS (id, login, password, balance)
							VALUES ($1, $2, '', $3)
							ON CONFLICT (login) DO UPDATE SET balance = USERS.balance + $3;`
)

type DeliveryDatabase struct {
	DB *Database
}

// Создание хранилища
func NewDeliveriesStorage(db *Database) DeliveriesStorage {
	return &DeliveryDatabase{DB: db}
}

// CreditIfNotDuplicate — зачисление входящего перевода не более одного раза.
// Вставка ключа дедупликации и зачисление выполняются в одной транзакции:
// любое повторное чтение ленты после падения безопасно повторяет вызов.
func (s *DeliveryDatabase) CreditIfNotDuplicate(ctx context.Context, delivery models.Delivery) (bool, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Delivery. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var messageID string
	err = tx.QueryRow(
		ctx,
		InsertDelivery,
		delivery.MessageID,
		delivery.Sender,
		delivery.Amount,
		delivery.ReceivedAt,
	).Scan(&messageID)

	if errors.Is(err, pgx.ErrNoRows) {
		// доставка уже обработана ранее
		err = nil
		if err = tx.Commit(ctx); err != nil {
			return false, fmt.Errorf("commit failed: %w", err)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert delivery: %w", err)
	}

	_, err = tx.Exec(ctx, UpsertSenderBalance, uuid.NewString(), delivery.Sender, delivery.Amount)
	if err != nil {
		return false, fmt.Errorf("credit sender balance: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit failed: %w", err)
	}
	return true, nil
}
