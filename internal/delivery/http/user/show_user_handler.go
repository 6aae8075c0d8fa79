package user_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type UserPostsGetter interface {
	GetPostsByUser(ctx context.Context, userID int64) ([]*model.Post, error)
}

type ShowUserHandler struct {
	userService UserGetter
	postService UserPostsGetter
	log         *logger.Logger
}

func NewShowUserHandler(userService UserGetter, postService UserPostsGetter, log *logger.Logger) *ShowUserHandler {
	return &ShowUserHandler{
		userService: userService,
		postService: postService,
		log:         log,
	}
}

func (h *ShowUserHandler) Handle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to get user", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	posts, err := h.postService.GetPostsByUser(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get user's posts", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "users/show", gin.H{
		"User":  user,
		"Posts": posts,
	})
}
