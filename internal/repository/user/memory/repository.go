package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newUser := &model.User{
		ID:        r.nextID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ImageURL:  user.ImageURL,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	r.nextID++

	r.users[newUser.ID] = newUser

	result := *newUser
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		r.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		userCopy := *user
		result = append(result, &userCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].LastName != result[j].LastName {
			return result[i].LastName < result[j].LastName
		}
		return result[i].FirstName < result[j].FirstName
	})

	return result, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.ImageURL = update.ImageURL

	result := *user
	return &result, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return custom_errors.ErrUserNotFound
	}

	delete(r.users, id)
	return nil
}
