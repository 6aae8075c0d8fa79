package user_service

import (
	"context"
	"log/slog"
	"strings"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/metrics"
	"blogly-service/internal/model"
	"blogly-service/internal/repository/postgres"
	user_repository "blogly-service/internal/repository/user"
)

type UserService struct {
	userRepo user_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewUserService(
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		log:      log,
		metrics:  metrics,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error) {
	newUser := &model.User{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ImageURL:  user.ImageURL,
	}

	createdUser, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		s.metrics.IncrementUserOperations("create", false)
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementUserOperations("create", true)
	s.log.Info("User created",
		slog.Int64("id", createdUser.ID),
		slog.String("last_name", createdUser.LastName))
	return createdUser, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementUserOperations("get", false)
		return nil, err
	}

	s.metrics.IncrementUserOperations("get", true)
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.metrics.IncrementUserOperations("list", false)
		s.log.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementUserOperations("list", true)
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	updatedUser, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		s.metrics.IncrementUserOperations("update", false)
		if err != custom_errors.ErrUserNotFound {
			s.log.Error("Failed to update user", slog.Int64("id", id), slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.metrics.IncrementUserOperations("update", true)
	return updatedUser, nil
}

// DeleteUser removes the user and every post they own in a single
// transaction, so readers never observe an orphaned post.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
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

	userRepo := tx.UserRepository()
	postRepo := tx.PostRepository()

	if err := postRepo.DeleteByUser(ctx, id); err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		s.log.Error("Failed to delete user's posts", slog.Int64("user_id", id), slog.String("error", err.Error()))
		return err
	}

	if err := userRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		if err != custom_errors.ErrUserNotFound {
			s.log.Error("Failed to delete user", slog.Int64("id", id), slog.String("error", err.Error()))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		s.log.Error("Failed to commit transaction", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementUserOperations("delete", true)
	s.log.Info("User deleted with posts", slog.Int64("id", id))
	return nil
}
