package post_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	prometheus_metrics "blogly-service/internal/metrics/prometheus"
	"blogly-service/internal/model"
	mockpost "blogly-service/mocks/post"
	mockpostgres "blogly-service/mocks/postgres"
	mockuser "blogly-service/mocks/user"
)

func newTestService(postRepo *mockpost.Repository, userRepo *mockuser.Repository, uow *mockpostgres.UnitOfWork) *PostService {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	return NewPostService(postRepo, userRepo, uow, log, metrics)
}

func TestPostService_CreatePost(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(postRepo *mockpost.Repository, userRepo *mockuser.Repository)
		dto         *model.CreatePostDTO
		want        *model.Post
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *mockpost.Repository, userRepo *mockuser.Repository) {
				userRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.User{ID: 1, FirstName: "Tom", LastName: "Test"}, nil)
				postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return p.UserID == 1 && p.Title == "My Post" && p.Content == "Lorem Ipsum Delorem"
				})).Return(&model.Post{ID: 1, UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"}, nil)
			},
			dto:  &model.CreatePostDTO{UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"},
			want: &model.Post{ID: 1, UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"},
		},
		{
			name: "Owner does not exist",
			mocks: func(postRepo *mockpost.Repository, userRepo *mockuser.Repository) {
				userRepo.On("GetByID", mock.Anything, int64(999999)).
					Return(nil, custom_errors.ErrUserNotFound)
			},
			dto:         &model.CreatePostDTO{UserID: 999999, Title: "My Post", Content: "Lorem Ipsum Delorem"},
			wantErrType: custom_errors.ErrUserNotFound,
		},
		{
			name: "Repository error",
			mocks: func(postRepo *mockpost.Repository, userRepo *mockuser.Repository) {
				userRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.User{ID: 1, FirstName: "Tom", LastName: "Test"}, nil)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Return(nil, custom_errors.ErrDatabaseQuery)
			},
			dto:         &model.CreatePostDTO{UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(mockpost.Repository)
			userRepo := new(mockuser.Repository)
			uow := new(mockpostgres.UnitOfWork)
			tt.mocks(postRepo, userRepo)

			svc := newTestService(postRepo, userRepo, uow)
			got, err := svc.CreatePost(context.Background(), tt.dto)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
				if errors.Is(tt.wantErrType, custom_errors.ErrUserNotFound) {
					postRepo.AssertNotCalled(t, "Create")
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			postRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		postRepo := new(mockpost.Repository)
		userRepo := new(mockuser.Repository)
		uow := new(mockpostgres.UnitOfWork)
		postRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&model.Post{ID: 1, UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"}, nil)

		svc := newTestService(postRepo, userRepo, uow)
		got, err := svc.GetPostByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "My Post", got.Title)
	})

	t.Run("Not found", func(t *testing.T) {
		postRepo := new(mockpost.Repository)
		userRepo := new(mockuser.Repository)
		uow := new(mockpostgres.UnitOfWork)
		postRepo.On("GetByID", mock.Anything, int64(999999)).
			Return(nil, custom_errors.ErrPostNotFound)

		svc := newTestService(postRepo, userRepo, uow)
		got, err := svc.GetPostByID(context.Background(), 999999)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostService_GetPostsByUser(t *testing.T) {
	postRepo := new(mockpost.Repository)
	userRepo := new(mockuser.Repository)
	uow := new(mockpostgres.UnitOfWork)
	postRepo.On("GetByUser", mock.Anything, int64(1)).Return([]*model.Post{
		{ID: 1, UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"},
	}, nil)

	svc := newTestService(postRepo, userRepo, uow)
	got, err := svc.GetPostsByUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "My Post", got[0].Title)
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		postRepo := new(mockpost.Repository)
		userRepo := new(mockuser.Repository)
		uow := new(mockpostgres.UnitOfWork)
		update := &model.UpdatePostDTO{Title: "My Edited Post", Content: "Lorem Ipsum Delorem"}
		postRepo.On("Update", mock.Anything, int64(1), update).
			Return(&model.Post{ID: 1, UserID: 1, Title: "My Edited Post", Content: "Lorem Ipsum Delorem"}, nil)

		svc := newTestService(postRepo, userRepo, uow)
		got, err := svc.UpdatePost(context.Background(), 1, update)

		assert.NoError(t, err)
		assert.Equal(t, "My Edited Post", got.Title)
	})

	t.Run("Not found", func(t *testing.T) {
		postRepo := new(mockpost.Repository)
		userRepo := new(mockuser.Repository)
		uow := new(mockpostgres.UnitOfWork)
		update := &model.UpdatePostDTO{Title: "x", Content: "y"}
		postRepo.On("Update", mock.Anything, int64(999999), update).
			Return(nil, custom_errors.ErrPostNotFound)

		svc := newTestService(postRepo, userRepo, uow)
		got, err := svc.UpdatePost(context.Background(), 999999, update)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(postRepo *mockpost.Repository, uow *mockpostgres.UnitOfWork, tx *mockpostgres.Transaction)
		want        *model.Post
		wantErrType error
	}{
		{
			name: "Success returns the deleted post",
			mocks: func(postRepo *mockpost.Repository, uow *mockpostgres.UnitOfWork, tx *mockpostgres.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, UserID: 7, Title: "My Post", Content: "Lorem Ipsum Delorem"}, nil)
				postRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			want: &model.Post{ID: 1, UserID: 7, Title: "My Post", Content: "Lorem Ipsum Delorem"},
		},
		{
			name: "Not found rolls back",
			mocks: func(postRepo *mockpost.Repository, uow *mockpostgres.UnitOfWork, tx *mockpostgres.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(nil, custom_errors.ErrPostNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Transaction begin error",
			mocks: func(postRepo *mockpost.Repository, uow *mockpostgres.UnitOfWork, tx *mockpostgres.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(mockpost.Repository)
			userRepo := new(mockuser.Repository)
			uow := new(mockpostgres.UnitOfWork)
			tx := new(mockpostgres.Transaction)
			tt.mocks(postRepo, uow, tx)

			svc := newTestService(postRepo, userRepo, uow)
			got, err := svc.DeletePost(context.Background(), 1)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
			postRepo.AssertExpectations(t)
		})
	}
}
