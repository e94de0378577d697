package storage

import (
	"context"
	"errors"

	"github.com/denmor86/points-bridge/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
	GetUserBalance(ctx context.Context, login string) (*models.UserBalance, error)
}

type WithdrawalsStorage interface {
	AddPendingWithdrawal(ctx context.Context, withdrawal models.WithdrawalData, debit bool) error
	MarkSucceeded(ctx context.Context, withdrawalID string, receipt string) error
	RefundWithdrawal(ctx context.Context, withdrawal models.WithdrawalData, errorText string) error
	MarkNeedsReview(ctx context.Context, withdrawalID string, errorText string) error
	GetWithdrawal(ctx context.Context, withdrawalID string) (*models.WithdrawalData, error)
	GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error)
	GetSignedWithdrawal(ctx context.Context, withdrawalID string) (*models.SignedWithdrawal, error)
	AttachSignature(ctx context.Context, userID string, signed models.SignedWithdrawal) error
}

type QueueStorage interface {
	Enqueue(ctx context.Context, transaction models.QueuedTransaction) (int64, error)
	ClaimOldest(ctx context.Context) (*models.QueuedTransaction, error)
	SetTransactionHash(ctx context.Context, id int64, hash string) error
	MarkTransactionConfirmed(ctx context.Context, id int64) error
	MarkTransactionProcessed(ctx context.Context, id int64) error
	MarkTransactionDeadLetter(ctx context.Context, id int64) error
}

type DeliveriesStorage interface {
	CreditIfNotDuplicate(ctx context.Context, delivery models.Delivery) (bool, error)
}

type SettingsStorage interface {
	GetIntakeSettings(ctx context.Context) (*models.IntakeSettings, error)
	GetDeliveryCursor(ctx context.Context) (string, error)
	SetDeliveryCursor(ctx context.Context, cursor string) error
}

type ReconcileStorage interface {
	ExpectedCustodyBalance(ctx context.Context) (int64, error)
	LastSample(ctx context.Context, asset string) (*models.ReconciliationSample, error)
	AppendSample(ctx context.Context, sample models.ReconciliationSample) error
}

type AuditStorage interface {
	AppendEvent(ctx context.Context, withdrawalID string, event string, detail string) error
}

type Storage struct {
	Users       UsersStorage
	Withdrawals WithdrawalsStorage
	Queue       QueueStorage
	Deliveries  DeliveriesStorage
	Settings    SettingsStorage
	Reconcile   ReconcileStorage
	Audit       AuditStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:       NewUsersStorage(db),
		Withdrawals: NewWithdrawalsStorage(db),
		Queue:       NewQueueStorage(db),
		Deliveries:  NewDeliveriesStorage(db),
		Settings:    NewSettingsStorage(db),
		Reconcile:   NewReconcileStorage(db),
		Audit:       NewAuditStorage(db),
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrSignatureNotFound  = errors.New("signed withdrawal not found")
	ErrQueueEmpty         = errors.New("transaction queue is empty")

	ErrAlreadyExists  = errors.New("already exists")
	ErrAlreadyFinal   = errors.New("withdrawal already in terminal status")
	ErrNotEnoughFunds = errors.New("not enough funds on balance")
)
