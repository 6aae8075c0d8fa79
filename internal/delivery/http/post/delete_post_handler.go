package post_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) (*model.Post, error)
}

type DeletePostHandler struct {
	postService PostDeleter
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) Handle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	deletedPost, err := h.postService.DeletePost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", deletedPost.UserID))
}
