package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/points-bridge/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	InsertTransaction = `INSERT INTO QUEUED_TRANSACTIONS (sender, recipient, value, gas_limit, payload, chain_id, status, attempts, created_at)
							VALUES ($1, $2, $3, $4, $5, $6, 'queued', 0, NOW())
							RETURNING id;`
	// самая старая незавершённая транзакция; очередь строго последовательная,
	// поэтому берётся ровно одна запись за итерацию
	ClaimOldestTransaction = `UPDATE QUEUED_TRANSACTIONS
							  SET attempts = attempts + 1
							  WHERE id = (
							      SELECT id FROM QUEUED_TRANSACTIONS
							      WHERE status IN ('queued', 'sent', 'confirmed')
							      ORDER BY id
							      LIMIT 1
							      FOR UPDATE SKIP LOCKED
							  )
							  RETURNING id, sender, recipient, value, gas_limit, payload, chain_id, COALESCE(tx_hash, ''), status, attempts, created_at;`

	SetTransactionHash = `UPDATE QUEUED_TRANSACTIONS
						  SET tx_hash = $1, status = 'sent'
						  WHERE id = $2;`
	UpdateTransactionStatus = `UPDATE QUEUED_TRANSACTIONS
							   SET status = $1
							   WHERE id = $2;`
)

type QueueDatabase struct {
	DB *Database
}

// Создание хранилища
func NewQueueStorage(db *Database) QueueStorage {
	return &QueueDatabase{DB: db}
}

func (s *QueueDatabase) Enqueue(ctx context.Context, transaction models.QueuedTransaction) (int64, error) {
	var id int64
	err := s.DB.Pool.QueryRow(
		ctx,
		InsertTransaction,
		transaction.Sender,
		transaction.Recipient,
		transaction.Value,
		transaction.GasLimit,
		transaction.Payload,
		transaction.ChainID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("enqueue transaction: %w", err)
	}
	return id, nil
}

func (s *QueueDatabase) ClaimOldest(ctx context.Context) (*models.QueuedTransaction, error) {
	var (
		transaction models.QueuedTransaction
		createdAt   time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, ClaimOldestTransaction).Scan(
		&transaction.ID,
		&transaction.Sender,
		&transaction.Recipient,
		&transaction.Value,
		&transaction.GasLimit,
		&transaction.Payload,
		&transaction.ChainID,
		&transaction.TxHash,
		&transaction.Status,
		&transaction.Attempts,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQueueEmpty
		}
		return nil, fmt.Errorf("claim oldest transaction: %w", err)
	}
	transaction.CreatedAt = createdAt
	return &transaction, nil
}

func (s *QueueDatabase) SetTransactionHash(ctx context.Context, id int64, hash string) error {
	_, err := s.DB.Pool.Exec(ctx, SetTransactionHash, hash, id)
	if err != nil {
		return fmt.Errorf("set transaction hash: %w", err)
	}
	return nil
}

func (s *QueueDatabase) MarkTransactionConfirmed(ctx context.Context, id int64) error {
	_, err := s.DB.Pool.Exec(ctx, UpdateTransactionStatus, models.TransactionStatusConfirmed, id)
	if err != nil {
		return fmt.Errorf("mark transaction confirmed: %w", err)
	}
	return nil
}

func (s *QueueDatabase) MarkTransactionProcessed(ctx context.Context, id int64) error {
	_, err := s.DB.Pool.Exec(ctx, UpdateTransactionStatus, models.TransactionStatusProcessed, id)
	if err != nil {
		return fmt.Errorf("mark transaction processed: %w", err)
	}
	return nil
}

func (s *QueueDatabase) MarkTransactionDeadLetter(ctx context.Context, id int64) error {
	_, err := s.DB.Pool.Exec(ctx, UpdateTransactionStatus, models.TransactionStatusDeadLetter, id)
	if err != nil {
		return fmt.Errorf("mark transaction dead letter: %w", err)
	}
	return nil
}
