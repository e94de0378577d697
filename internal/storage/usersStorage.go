package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/points-bridge/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertUser = `INSERT INTO USERS (id, login, password, balance)
						VALUES ($1, $2, $3, 0)
						ON CONFLICT (login) DO NOTHING
						RETURNING login;`
	GetUser = `SELECT id, password, login, balance FROM USERS WHERE login=$1;`

	GetUserBalance = `SELECT USERS.balance AS balance,
					         COALESCE(SUM(WITHDRAWALS.amount) FILTER (WHERE WITHDRAWALS.status = 'succeeded'), 0) AS withdrawn
					  FROM
					      USERS
					  LEFT JOIN
					      WITHDRAWALS ON USERS.id = WITHDRAWALS.user_id
					  WHERE
					      USERS.login = $1
					  GROUP BY
					      USERS.balance;`

	CreditUserBalance = `UPDATE USERS
						  SET balance = balance + $1
						  WHERE id = $2;`
	// условное списание: ноль затронутых строк означает нехватку средств
	DebitUserBalance = `UPDATE USERS
						  SET balance = balance - $1
						  WHERE id = $2 AND balance >= $1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) AddUser(ctx context.Context, login string, password string) error {
	var dbLogin string
	err := s.DB.Pool.QueryRow(ctx, InsertUser, uuid.NewString(), login, password).Scan(&dbLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add user: %w", err)
	}
	return nil
}

func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	var (
		userID   string
		password string
		dbLogin  string
		balance  int64
	)
	err := s.DB.Pool.QueryRow(ctx, GetUser, login).Scan(&userID, &password, &dbLogin, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &models.UserData{
		UserID:       userID,
		Login:        dbLogin,
		PasswordHash: password,
		Balance:      balance,
	}, nil
}

func (s *UserDatabase) GetUserBalance(ctx context.Context, login string) (*models.UserBalance, error) {
	var (
		balance   int64
		withdrawn int64
	)
	err := s.DB.Pool.QueryRow(ctx, GetUserBalance, login).Scan(&balance, &withdrawn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user balance: %w", err)
	}

	return &models.UserBalance{Current: balance, Withdrawn: withdrawn}, nil
}
