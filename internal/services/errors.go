package services

import "fmt"

// FailureKind - закрытая классификация ошибок расчётного пути.
// Дискриминант явный: обработка переключается по значению исчерпывающе,
// без утиных признаков на ошибках.
type FailureKind int

const (
	// FailureValidation - некорректный ввод, побочных эффектов нет
	FailureValidation FailureKind = iota
	// FailureInsufficientFunds - нехватка средств, побочных эффектов нет
	FailureInsufficientFunds
	// FailureRailDisabled - рельса выключена, побочных эффектов нет
	FailureRailDisabled
	// FailureRefundable - внешний вызов заведомо не состоялся, возврат безопасен
	FailureRefundable
	// FailureNeedsReview - эффект внешнего вызова неизвестен, разрешает только оператор
	FailureNeedsReview
)

func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureInsufficientFunds:
		return "insufficient_funds"
	case FailureRailDisabled:
		return "rail_disabled"
	case FailureRefundable:
		return "refundable"
	case FailureNeedsReview:
		return "needs_review"
	}
	return "unknown"
}

// SettlementError - классифицированная ошибка вывода средств
type SettlementError struct {
	Kind FailureKind
	Err  error
}

func (e *SettlementError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Err.Error())
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}

func NewSettlementError(kind FailureKind, err error) *SettlementError {
	return &SettlementError{Kind: kind, Err: err}
}
