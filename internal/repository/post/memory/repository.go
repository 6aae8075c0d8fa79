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

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        r.nextID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++

	r.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		r.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (r *PostRepository) GetByUser(ctx context.Context, userID int64) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}

	// Insertion order, same as the postgres ORDER BY created_at.
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	post.Title = update.Title
	post.Content = update.Content
	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(r.posts, id)
	return nil
}

func (r *PostRepository) DeleteByUser(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, post := range r.posts {
		if post.UserID == userID {
			delete(r.posts, id)
		}
	}

	return nil
}
