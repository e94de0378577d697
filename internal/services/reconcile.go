package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
)

type ReconcileService interface {
	Check(ctx context.Context) (*models.ReconciliationSample, error)
}

type Reconcile struct {
	Storage storage.ReconcileStorage
	Points  client.PointsClient
	Asset   string
}

// Создание сервиса
func NewReconcile(store storage.ReconcileStorage, points client.PointsClient, asset string) *Reconcile {
	return &Reconcile{Storage: store, Points: points, Asset: asset}
}

// Check — одна итерация сверки: ожидаемый баланс кастодия против наблюдаемого.
// Монитор только обнаруживает расхождение, никогда не исправляет его сам.
// Нулевое расхождение тоже отмечается в логе: оператор видит, что монитор жив.
func (s *Reconcile) Check(ctx context.Context) (*models.ReconciliationSample, error) {
	expected, err := s.Storage.ExpectedCustodyBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("expected balance: %w", err)
	}
	expectedValue := decimal.NewFromInt(expected)

	observed, err := s.Points.CustodyBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("observed balance: %w", err)
	}

	sample := &models.ReconciliationSample{
		Asset:      s.Asset,
		Observed:   observed,
		Expected:   expectedValue,
		RecordedAt: time.Now(),
	}

	last, err := s.Storage.LastSample(ctx, s.Asset)
	if err != nil {
		return nil, fmt.Errorf("last sample: %w", err)
	}

	// замер добавляется только при изменении значений: журнал хранит
	// полную историю дрейфа, не разрастаясь на каждом тике
	changed := last == nil || !last.Observed.Equal(observed) || !last.Expected.Equal(expectedValue)
	if changed {
		if err := s.Storage.AppendSample(ctx, *sample); err != nil {
			return nil, fmt.Errorf("append sample: %w", err)
		}
	}

	drift := sample.Drift()
	if drift.IsZero() {
		logger.Info("Reconciliation ok", "asset", s.Asset, "balance", observed.String())
	} else {
		logger.Error("Custody balance drift detected",
			zap.String("asset", s.Asset),
			zap.String("observed", observed.String()),
			zap.String("expected", expectedValue.String()),
			zap.String("drift", drift.String()),
		)
	}

	return sample, nil
}
