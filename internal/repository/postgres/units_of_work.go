package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogly-service/internal/logger"
	"blogly-service/internal/metrics"
	post_repository "blogly-service/internal/repository/post"
	post_repository_postgres "blogly-service/internal/repository/post/postgres"
	user_repository "blogly-service/internal/repository/user"
	user_repository_postgres "blogly-service/internal/repository/user/postgres"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../mocks/postgres --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../mocks/postgres --outpkg mocks --filename Transaction.go
type Transaction interface {
	UserRepository() user_repository.Repository
	PostRepository() post_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log *logger.Logger, metrics metrics.MetricsProvider) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) UserRepository() user_repository.Repository {
	return user_repository_postgres.NewUserRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}
