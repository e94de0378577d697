package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationSample - модель замера сверки балансов.
// Добавляется только при изменении наблюдаемого или ожидаемого значения,
// чтобы журнал не рос без ограничений.
type ReconciliationSample struct {
	ID         int64
	Asset      string
	Observed   decimal.Decimal
	Expected   decimal.Decimal
	RecordedAt time.Time
}

// Drift - расхождение между наблюдаемым и ожидаемым балансом
func (s *ReconciliationSample) Drift() decimal.Decimal {
	return s.Observed.Sub(s.Expected)
}
