package models

import "time"

// Статусы транзакции в очереди отправки
const (
	TransactionStatusQueued     = "queued"
	TransactionStatusSent       = "sent"
	TransactionStatusConfirmed  = "confirmed"
	TransactionStatusProcessed  = "processed"
	TransactionStatusDeadLetter = "dead_letter"
)

// QueuedTransaction - модель неподписанной транзакции в очереди.
// TxHash заполняется сразу после отправки в сеть, чтобы падение процесса
// не теряло уже отправленную транзакцию.
type QueuedTransaction struct {
	ID        int64
	Sender    string
	Recipient string
	Value     int64
	GasLimit  int64
	Payload   []byte
	ChainID   int64
	TxHash    string
	Status    string
	Attempts  int
	CreatedAt time.Time
}
