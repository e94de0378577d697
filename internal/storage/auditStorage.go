package storage

import (
	"context"
	"fmt"
)

const (
	InsertAuditEvent = `INSERT INTO AUDIT_EVENTS (withdrawal_id, event, detail, created_at)
							VALUES ($1, $2, $3, NOW());`
)

type AuditDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAuditStorage(db *Database) AuditStorage {
	return &AuditDatabase{DB: db}
}

// AppendEvent — запись события аудита. Вызывается по принципу fire-and-forget:
// ошибка записи не влияет на атомарность самого вывода средств.
func (s *AuditDatabase) AppendEvent(ctx context.Context, withdrawalID string, event string, detail string) error {
	_, err := s.DB.Pool.Exec(ctx, InsertAuditEvent, withdrawalID, event, detail)
	if err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}
