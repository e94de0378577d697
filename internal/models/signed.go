package models

// Длины hex-полей подписанного вывода
const (
	NonceHexLen      = 64
	SignaturePartLen = 64
	RecoveryHexLen   = 2
)

// SignedWithdrawal - модель подписанного вывода средств.
// Нонс уникален для каждой выдачи, подпись разложена на компоненты r/s/v.
// После сохранения запись постоянна: повторная выдача по тому же выводу запрещена.
type SignedWithdrawal struct {
	WithdrawalID string `json:"withdrawal_id"`
	Nonce        string `json:"nonce"`
	Asset        string `json:"asset"`
	Amount       int64  `json:"amount"`
	SigR         string `json:"r"`
	SigS         string `json:"s"`
	SigV         string `json:"v"`
}
