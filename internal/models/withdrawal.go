package models

import "time"

// Рельсы вывода средств
const (
	RailPoints = "points"
	RailChain  = "chain"
)

// Статусы записи о выводе средств
const (
	WithdrawalStatusPending     = "pending"
	WithdrawalStatusSucceeded   = "succeeded"
	WithdrawalStatusRefunded    = "failed_refunded"
	WithdrawalStatusNeedsReview = "failed_needs_review"
)

// WithdrawalRequest - модель запроса вывода средств, приходит извне
type WithdrawalRequest struct {
	Asset       string `json:"asset"`
	Amount      int64  `json:"amount"`
	Rail        string `json:"rail"`
	Destination string `json:"destination,omitempty"`
}

// WithdrawalData - модель хранения записи о выводе средств.
// Сумма и назначение неизменны после создания, статус меняется
// ровно один раз: из pending в терминальный.
type WithdrawalData struct {
	ID          string
	UserID      string
	Asset       string
	Amount      int64
	Rail        string
	Destination string
	Status      string
	Receipt     string
	ErrorText   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WithdrawalReceipt - результат успешного вывода средств
type WithdrawalReceipt struct {
	WithdrawalID string            `json:"withdrawal_id"`
	Rail         string            `json:"rail"`
	Receipt      string            `json:"receipt,omitempty"`
	Signed       *SignedWithdrawal `json:"signed_withdrawal,omitempty"`
}

// WithdrawalResponse — структура ответа со списком выводов средств
type WithdrawalResponse struct {
	ID          string `json:"id"`
	Asset       string `json:"asset"`
	Amount      int64  `json:"amount"`
	Rail        string `json:"rail"`
	Destination string `json:"destination,omitempty"`
	Status      string `json:"status"`
	ProcessedAt string `json:"processed_at"`
}
