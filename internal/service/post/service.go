package post_service

import (
	"context"
	"log/slog"
	"strings"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/metrics"
	"blogly-service/internal/model"
	post_repository "blogly-service/internal/repository/post"
	"blogly-service/internal/repository/postgres"
	user_repository "blogly-service/internal/repository/user"
)

type PostService struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		uow:      uow,
		log:      log,
		metrics:  metrics,
	}
}

// CreatePost verifies the owner exists before writing, so a post can never
// be created against a deleted or unknown user.
func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	_, err := s.userRepo.GetByID(ctx, post.UserID)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if err != custom_errors.ErrUserNotFound {
			s.log.Error("Failed to check post owner", slog.Int64("user_id", post.UserID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	newPost := &model.Post{
		UserID:  post.UserID,
		Title:   post.Title,
		Content: post.Content,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Error("Failed to create post", slog.Int64("user_id", post.UserID), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created",
		slog.Int64("id", createdPost.ID),
		slog.Int64("user_id", createdPost.UserID))
	return createdPost, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		return nil, err
	}

	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

func (s *PostService) GetPostsByUser(ctx context.Context, userID int64) ([]*model.Post, error) {
	posts, err := s.postRepo.GetByUser(ctx, userID)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to get posts by user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	updatedPost, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		if err != custom_errors.ErrPostNotFound {
			s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.metrics.IncrementPostOperations("update", true)
	return updatedPost, nil
}

// DeletePost reads and removes the post in one transaction and returns the
// deleted post, so the handler still knows the owner to redirect to.
func (s *PostService) DeletePost(ctx context.Context, id int64) (result *model.Post, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !strings.Contains(rollbackErr.Error(), "tx is closed") {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	postRepo := tx.PostRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		return nil, err
	}

	if err := postRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		s.log.Error("Failed to commit transaction", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Info("Post deleted", slog.Int64("id", id), slog.Int64("user_id", post.UserID))
	return post, nil
}
