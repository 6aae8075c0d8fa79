package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/metrics"
	"blogly-service/internal/model"
	"blogly-service/internal/repository/postgres/db"
)

type UserRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("create_user", time.Since(start))
	}()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"image_url":  user.ImageURL,
		"created_at": now,
	}

	query := `
		INSERT INTO users (first_name, last_name, image_url, created_at)
		VALUES (@first_name, @last_name, @image_url, @created_at)
		RETURNING id, first_name, last_name, image_url, created_at`

	var createdUser model.User
	err := r.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.FirstName,
		&createdUser.LastName,
		&createdUser.ImageURL,
		&createdUser.CreatedAt,
	)

	if err != nil {
		r.metrics.IncrementDatabaseQueries("create_user", false)
		r.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("create_user", true)
	return &createdUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("get_user", time.Since(start))
	}()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, first_name, last_name, image_url, created_at
				FROM users WHERE id = @id`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.ImageURL,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id", slog.Int64("id", id))
			r.metrics.IncrementDatabaseQueries("get_user", true)
			return nil, custom_errors.ErrUserNotFound
		}
		r.metrics.IncrementDatabaseQueries("get_user", false)
		r.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("get_user", true)
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("list_users", time.Since(start))
	}()

	query := `SELECT id, first_name, last_name, image_url, created_at
				FROM users ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("list_users", false)
		r.log.Error("Error listing users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.ImageURL,
			&user.CreatedAt,
		)
		if err != nil {
			r.metrics.IncrementDatabaseQueries("list_users", false)
			r.log.Error("Error scanning user during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		r.metrics.IncrementDatabaseQueries("list_users", false)
		r.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("list_users", true)
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("update_user", time.Since(start))
	}()

	args := pgx.NamedArgs{
		"id":         id,
		"first_name": update.FirstName,
		"last_name":  update.LastName,
		"image_url":  update.ImageURL,
	}

	query := `
		UPDATE users
		SET first_name = @first_name, last_name = @last_name, image_url = @image_url
		WHERE id = @id
		RETURNING id, first_name, last_name, image_url, created_at`

	var updatedUser model.User
	err := r.db.QueryRow(ctx, query, args).Scan(
		&updatedUser.ID,
		&updatedUser.FirstName,
		&updatedUser.LastName,
		&updatedUser.ImageURL,
		&updatedUser.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id during Update", slog.Int64("id", id))
			r.metrics.IncrementDatabaseQueries("update_user", true)
			return nil, custom_errors.ErrUserNotFound
		}
		r.metrics.IncrementDatabaseQueries("update_user", false)
		r.log.Error("Error updating user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("update_user", true)
	return &updatedUser, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("delete_user", time.Since(start))
	}()

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM users WHERE id = @id`

	result, err := r.db.Exec(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("delete_user", false)
		r.log.Error("Error deleting user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		r.metrics.IncrementDatabaseQueries("delete_user", true)
		return custom_errors.ErrUserNotFound
	}

	r.metrics.IncrementDatabaseQueries("delete_user", true)
	return nil
}
