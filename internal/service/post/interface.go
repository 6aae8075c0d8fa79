package post_service

import (
	"context"

	"blogly-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	GetPostsByUser(ctx context.Context, userID int64) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) (*model.Post, error)
}
