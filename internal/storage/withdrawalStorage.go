package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	InsertWithdrawal = `INSERT INTO WITHDRAWALS (id, user_id, asset, amount, rail, destination, status, created_at, updated_at)
							VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW());`
	// терминальный переход разрешён ровно один раз, только из pending
	UpdateWithdrawalStatus = `UPDATE WITHDRAWALS
							  SET status = $1, receipt = $2, error_text = $3, updated_at = NOW()
							  WHERE id = $4 AND status = 'pending';`
	SelectWithdrawal = `SELECT id, user_id, asset, amount, rail, destination, status,
							   COALESCE(receipt, ''), COALESCE(error_text, ''), created_at, updated_at
						FROM WITHDRAWALS WHERE id=$1;`
	SelectWithdrawals = `SELECT id, user_id, asset, amount, rail, destination, status,
							    COALESCE(receipt, ''), COALESCE(error_text, ''), created_at, updated_at
						 FROM WITHDRAWALS WHERE user_id=$1 ORDER BY created_at;`
	InsertSignature = `INSERT INTO SIGNED_WITHDRAWALS (withdrawal_id, nonce, asset, amount, sig_r, sig_s, sig_v, created_at)
							VALUES ($1, $2, $3, $4, $5, $6, $7, NOW());`
	SelectSignature = `SELECT withdrawal_id, nonce, asset, amount, sig_r, sig_s, sig_v
					   FROM SIGNED_WITHDRAWALS WHERE withdrawal_id=$1;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

// AddPendingWithdrawal — создание записи о выводе средств.
// Для рельсы баллов списание происходит в той же транзакции, что и запись
// (резервируем до отправки). Для блокчейн-рельсы списание отложено до
// сохранения подписи: до этого момента средства кастодию не покидали.
func (s *WithdrawalDatabase) AddPendingWithdrawal(ctx context.Context, withdrawal models.WithdrawalData, debit bool) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Withdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	if debit {
		var result pgconn.CommandTag
		result, err = tx.Exec(ctx, DebitUserBalance, withdrawal.Amount, withdrawal.UserID)
		if err != nil {
			return fmt.Errorf("debit balance: %w", err)
		}
		if result.RowsAffected() == 0 {
			err = ErrNotEnoughFunds
			return err
		}
	}

	_, err = tx.Exec(
		ctx,
		InsertWithdrawal,
		withdrawal.ID,
		withdrawal.UserID,
		withdrawal.Asset,
		withdrawal.Amount,
		withdrawal.Rail,
		withdrawal.Destination,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *WithdrawalDatabase) MarkSucceeded(ctx context.Context, withdrawalID string, receipt string) error {
	result, err := s.DB.Pool.Exec(ctx, UpdateWithdrawalStatus, models.WithdrawalStatusSucceeded, receipt, "", withdrawalID)
	if err != nil {
		return fmt.Errorf("mark succeeded: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAlreadyFinal
	}
	return nil
}

// RefundWithdrawal — возврат средств и терминальный переход в одной транзакции.
// Переход защищён условием status='pending': возврат и needs-review взаимно
// исключены на уровне хранилища, а не по дисциплине вызовов.
func (s *WithdrawalDatabase) RefundWithdrawal(ctx context.Context, withdrawal models.WithdrawalData, errorText string) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Refund. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, UpdateWithdrawalStatus, models.WithdrawalStatusRefunded, "", errorText, withdrawal.ID)
	if err != nil {
		return fmt.Errorf("mark refunded: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrAlreadyFinal
		return err
	}

	// возвращаем средства только если списание уже состоялось
	if withdrawal.Rail == models.RailPoints {
		_, err = tx.Exec(ctx, CreditUserBalance, withdrawal.Amount, withdrawal.UserID)
		if err != nil {
			return fmt.Errorf("credit back balance: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *WithdrawalDatabase) MarkNeedsReview(ctx context.Context, withdrawalID string, errorText string) error {
	result, err := s.DB.Pool.Exec(ctx, UpdateWithdrawalStatus, models.WithdrawalStatusNeedsReview, "", errorText, withdrawalID)
	if err != nil {
		return fmt.Errorf("mark needs review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAlreadyFinal
	}
	return nil
}

func (s *WithdrawalDatabase) GetWithdrawal(ctx context.Context, withdrawalID string) (*models.WithdrawalData, error) {
	withdrawal, err := scanWithdrawal(s.DB.Pool.QueryRow(ctx, SelectWithdrawal, withdrawalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return withdrawal, nil
}

func (s *WithdrawalDatabase) GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error) {
	var withdrawals []models.WithdrawalData
	rows, err := s.DB.Pool.Query(ctx, SelectWithdrawals, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, rows.Err()
}

func (s *WithdrawalDatabase) GetSignedWithdrawal(ctx context.Context, withdrawalID string) (*models.SignedWithdrawal, error) {
	var signed models.SignedWithdrawal
	err := s.DB.Pool.QueryRow(ctx, SelectSignature, withdrawalID).Scan(
		&signed.WithdrawalID,
		&signed.Nonce,
		&signed.Asset,
		&signed.Amount,
		&signed.SigR,
		&signed.SigS,
		&signed.SigV,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSignatureNotFound
		}
		return nil, fmt.Errorf("failed to get signed withdrawal: %w", err)
	}
	return &signed, nil
}

// AttachSignature — сохранение подписи и списание баланса в одной транзакции.
// Это последний шаг выдачи подписанного вывода: после коммита списание
// окончательно, пользователь владеет независимым доказательством авторизации.
func (s *WithdrawalDatabase) AttachSignature(ctx context.Context, userID string, signed models.SignedWithdrawal) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Signature. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, DebitUserBalance, signed.Amount, userID)
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrNotEnoughFunds
		return err
	}

	_, err = tx.Exec(
		ctx,
		InsertSignature,
		signed.WithdrawalID,
		signed.Nonce,
		signed.Asset,
		signed.Amount,
		signed.SigR,
		signed.SigS,
		signed.SigV,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = ErrAlreadyExists
			return err
		}
		return fmt.Errorf("insert signature: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWithdrawal(row rowScanner) (*models.WithdrawalData, error) {
	var (
		withdrawal models.WithdrawalData
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := row.Scan(
		&withdrawal.ID,
		&withdrawal.UserID,
		&withdrawal.Asset,
		&withdrawal.Amount,
		&withdrawal.Rail,
		&withdrawal.Destination,
		&withdrawal.Status,
		&withdrawal.Receipt,
		&withdrawal.ErrorText,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	withdrawal.CreatedAt = createdAt
	withdrawal.UpdatedAt = updatedAt
	return &withdrawal, nil
}
