package post_http

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

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type ShowPostHandler struct {
	postService PostGetter
	userService UserGetter
	log         *logger.Logger
}

func NewShowPostHandler(postService PostGetter, userService UserGetter, log *logger.Logger) *ShowPostHandler {
	return &ShowPostHandler{
		postService: postService,
		userService: userService,
		log:         log,
	}
}

func (h *ShowPostHandler) Handle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to get post", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	author, err := h.userService.GetUserByID(c.Request.Context(), post.UserID)
	if err != nil {
		h.log.Error("Failed to get post author", slog.Int64("user_id", post.UserID), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "posts/show", gin.H{
		"Post":   post,
		"Author": author,
	})
}
