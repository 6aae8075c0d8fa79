package post_repository_postgres

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

type PostRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("create_post", time.Since(start))
	}()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"user_id":    post.UserID,
		"title":      post.Title,
		"content":    post.Content,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (user_id, title, content, created_at, updated_at)
		VALUES (@user_id, @title, @content, @created_at, @updated_at)
		RETURNING id, user_id, title, content, created_at, updated_at`

	var createdPost model.Post
	err := r.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.UserID,
		&createdPost.Title,
		&createdPost.Content,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)

	if err != nil {
		r.metrics.IncrementDatabaseQueries("create_post", false)
		r.log.Error("Error creating post", slog.Int64("user_id", post.UserID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("create_post", true)
	return &createdPost, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("get_post", time.Since(start))
	}()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, user_id, title, content, created_at, updated_at
				FROM posts WHERE id = @id`

	post := &model.Post{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Post not found by id", slog.Int64("id", id))
			r.metrics.IncrementDatabaseQueries("get_post", true)
			return nil, custom_errors.ErrPostNotFound
		}
		r.metrics.IncrementDatabaseQueries("get_post", false)
		r.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("get_post", true)
	return post, nil
}

func (r *PostRepository) GetByUser(ctx context.Context, userID int64) ([]*model.Post, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("get_posts_by_user", time.Since(start))
	}()

	args := pgx.NamedArgs{"user_id": userID}
	query := `SELECT id, user_id, title, content, created_at, updated_at
				FROM posts WHERE user_id = @user_id ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("get_posts_by_user", false)
		r.log.Error("Error getting posts by user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			r.metrics.IncrementDatabaseQueries("get_posts_by_user", false)
			r.log.Error("Error scanning post during GetByUser", slog.Int64("user_id", userID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		r.metrics.IncrementDatabaseQueries("get_posts_by_user", false)
		r.log.Error("Error iterating rows during GetByUser", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("get_posts_by_user", true)
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("update_post", time.Since(start))
	}()

	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"id":         id,
		"title":      update.Title,
		"content":    update.Content,
		"updated_at": updatedAt,
	}

	query := `
		UPDATE posts
		SET title = @title, content = @content, updated_at = @updated_at
		WHERE id = @id
		RETURNING id, user_id, title, content, created_at, updated_at`

	var updatedPost model.Post
	err := r.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.UserID,
		&updatedPost.Title,
		&updatedPost.Content,
		&updatedPost.CreatedAt,
		&updatedPost.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			r.metrics.IncrementDatabaseQueries("update_post", true)
			return nil, custom_errors.ErrPostNotFound
		}
		r.metrics.IncrementDatabaseQueries("update_post", false)
		r.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("update_post", true)
	return &updatedPost, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("delete_post", time.Since(start))
	}()

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := r.db.Exec(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("delete_post", false)
		r.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		r.metrics.IncrementDatabaseQueries("delete_post", true)
		return custom_errors.ErrPostNotFound
	}

	r.metrics.IncrementDatabaseQueries("delete_post", true)
	return nil
}

// DeleteByUser removes every post owned by the user. Zero rows is not an
// error: a user with no posts is a valid delete target.
func (r *PostRepository) DeleteByUser(ctx context.Context, userID int64) error {
	start := time.Now()
	defer func() {
		r.metrics.RecordDatabaseQueryDuration("delete_posts_by_user", time.Since(start))
	}()

	args := pgx.NamedArgs{"user_id": userID}
	query := `DELETE FROM posts WHERE user_id = @user_id`

	result, err := r.db.Exec(ctx, query, args)
	if err != nil {
		r.metrics.IncrementDatabaseQueries("delete_posts_by_user", false)
		r.log.Error("Error deleting posts by user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("delete_posts_by_user", true)
	r.log.Debug("Deleted posts by user", slog.Int64("user_id", userID), slog.Int64("count", result.RowsAffected()))
	return nil
}
