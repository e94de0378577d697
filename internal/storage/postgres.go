package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const checkDatabaseExists = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`

type Database struct {
	Pool *pgxpool.Pool
	DSN  string
}

// Создание пула соединений. База из DSN может ещё не существовать,
// это разрешается на шаге Initialize.
func NewDatabase(dsn string) (*Database, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	return &Database{Pool: pool, DSN: dsn}, nil
}

// Initialize — подготовка хранилища: база создаётся при первом запуске,
// затем накатываются миграции
func (s *Database) Initialize() error {
	if err := s.ensureDatabase(context.Background()); err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}
	if err := s.migrate(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *Database) Close() error {
	s.Pool.Close()
	return nil
}

// ensureDatabase — создание базы из DSN, если её ещё нет.
// Миграции базу создавать не умеют: при недоступности целевой базы
// заходим в служебную postgres и создаём её оттуда.
func (s *Database) ensureDatabase(ctx context.Context) error {
	cfg, err := pgx.ParseConfig(s.DSN)
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err == nil {
		return conn.Close(ctx)
	}

	service := cfg.Copy()
	service.Database = `postgres`
	conn, err = pgx.ConnectConfig(ctx, service)
	if err != nil {
		return fmt.Errorf("connect service database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, checkDatabaseExists, cfg.Database).Scan(&exists); err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE %s`, cfg.Database)); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.Database, err)
	}
	return nil
}

// миграции зашиты в бинарь: раскатка не зависит от рабочей директории
func (s *Database) migrate() error {
	db, err := sql.Open("pgx", s.DSN)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
