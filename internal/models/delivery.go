package models

import "time"

// Delivery - модель входящего перевода баллов.
// MessageID - ключ дедупликации: одна доставка зачисляется не более одного раза.
type Delivery struct {
	MessageID  string
	Sender     string
	Amount     int64
	ReceivedAt time.Time
}

// DeliveryResult - итог обработки пачки входящих сообщений
type DeliveryResult struct {
	Credited int
	Skipped  int
	Refunded int
}
