package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/points-bridge/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	// ожидаемый баланс кастодия: всё зачисленное минус всё успешно выведенное по рельсе баллов
	SelectExpectedBalance = `SELECT
								(SELECT COALESCE(SUM(amount), 0) FROM DELIVERIES) -
								(SELECT COALESCE(SUM(amount), 0) FROM WITHDRAWALS WHERE rail = 'points' AND status = 'succeeded');`
	SelectLastSample = `SELECT id, asset, observed, expected, recorded_at
						FROM RECONCILIATION_SAMPLES
						WHERE asset = $1
						ORDER BY id DESC LIMIT 1;`
	InsertSample = `INSERT INTO RECONCILIATION_SAMPLES (asset, observed, expected, recorded_at)
						VALUES ($1, $2, $3, $4);`
)

type ReconcileDatabase struct {
	DB *Database
}

// Создание хранилища
func NewReconcileStorage(db *Database) ReconcileStorage {
	return &ReconcileDatabase{DB: db}
}

func (s *ReconcileDatabase) ExpectedCustodyBalance(ctx context.Context) (int64, error) {
	var expected int64
	err := s.DB.Pool.QueryRow(ctx, SelectExpectedBalance).Scan(&expected)
	if err != nil {
		return 0, fmt.Errorf("failed to get expected balance: %w", err)
	}
	return expected, nil
}

func (s *ReconcileDatabase) LastSample(ctx context.Context, asset string) (*models.ReconciliationSample, error) {
	var (
		sample     models.ReconciliationSample
		observed   decimal.Decimal
		expected   decimal.Decimal
		recordedAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, SelectLastSample, asset).Scan(
		&sample.ID,
		&sample.Asset,
		&observed,
		&expected,
		&recordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last sample: %w", err)
	}
	sample.Observed = observed
	sample.Expected = expected
	sample.RecordedAt = recordedAt
	return &sample, nil
}

func (s *ReconcileDatabase) AppendSample(ctx context.Context, sample models.ReconciliationSample) error {
	_, err := s.DB.Pool.Exec(ctx, InsertSample, sample.Asset, sample.Observed, sample.Expected, sample.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append sample: %w", err)
	}
	return nil
}
