package post_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/model"
	post_repository "blogly-service/internal/repository/post"
	"blogly-service/internal/repository/post/memory"
)

func setupPostTest(t *testing.T) post_repository.Repository {
	t.Helper()
	log := logger.New("test")
	return memory.NewPostRepository(log)
}

func TestPostRepository_Create(t *testing.T) {
	repo := setupPostTest(t)

	got, err := repo.Create(context.Background(), &model.Post{
		UserID:  1,
		Title:   "My Post",
		Content: "Lorem Ipsum Delorem",
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotZero(t, got.ID)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "My Post", got.Title)
	assert.Equal(t, "Lorem Ipsum Delorem", got.Content)
	assert.True(t, got.CreatedAt.Valid)
	assert.True(t, got.UpdatedAt.Valid)
}

func TestPostRepository_GetByID(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"})
	require.NoError(t, err)

	t.Run("existing post", func(t *testing.T) {
		got, err := repo.GetByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "My Post", got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := repo.GetByID(context.Background(), 999999)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostRepository_GetByUser(t *testing.T) {
	repo := setupPostTest(t)

	first, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "First", Content: "a"})
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "Second", Content: "b"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &model.Post{UserID: 2, Title: "Other", Content: "c"})
	require.NoError(t, err)

	posts, err := repo.GetByUser(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID)
	assert.Equal(t, second.ID, posts[1].ID)
}

func TestPostRepository_Update(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"})
	require.NoError(t, err)

	t.Run("overwrites title and content", func(t *testing.T) {
		got, err := repo.Update(context.Background(), created.ID, &model.UpdatePostDTO{
			Title:   "My Edited Post",
			Content: "New content",
		})

		require.NoError(t, err)
		assert.Equal(t, "My Edited Post", got.Title)
		assert.Equal(t, "New content", got.Content)
		assert.Equal(t, created.UserID, got.UserID)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := repo.Update(context.Background(), 999999, &model.UpdatePostDTO{Title: "x", Content: "y"})

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"})
	require.NoError(t, err)

	t.Run("existing post", func(t *testing.T) {
		err := repo.Delete(context.Background(), created.ID)
		require.NoError(t, err)

		_, err = repo.GetByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := repo.Delete(context.Background(), 999999)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostRepository_DeleteByUser(t *testing.T) {
	repo := setupPostTest(t)

	mine, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "Mine", Content: "a"})
	require.NoError(t, err)
	alsoMine, err := repo.Create(context.Background(), &model.Post{UserID: 1, Title: "Also mine", Content: "b"})
	require.NoError(t, err)
	theirs, err := repo.Create(context.Background(), &model.Post{UserID: 2, Title: "Theirs", Content: "c"})
	require.NoError(t, err)

	err = repo.DeleteByUser(context.Background(), 1)
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), mine.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	_, err = repo.GetByID(context.Background(), alsoMine.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	kept, err := repo.GetByID(context.Background(), theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Theirs", kept.Title)

	// A user with no posts is a valid target.
	assert.NoError(t, repo.DeleteByUser(context.Background(), 42))
}
