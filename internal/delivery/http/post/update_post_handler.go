package post_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type PostUpdater interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type updatePostRequest struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

func (h *UpdatePostHandler) ShowForm(c *gin.Context) {
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
		h.log.Error("Failed to get post for edit", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "posts/edit", gin.H{
		"PostID": post.ID,
		"Form": updatePostRequest{
			Title:   post.Title,
			Content: post.Content,
		},
	})
}

func (h *UpdatePostHandler) Handle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	var req updatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "posts/edit", gin.H{
			"PostID": id,
			"Form":   req,
			"Error":  "Title and content are required.",
		})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := h.validate.Struct(req); err != nil {
		c.HTML(http.StatusBadRequest, "posts/edit", gin.H{
			"PostID": id,
			"Form":   req,
			"Error":  "Title and content are required.",
		})
		return
	}

	dto := &model.UpdatePostDTO{
		Title:   req.Title,
		Content: req.Content,
	}

	updatedPost, err := h.postService.UpdatePost(c.Request.Context(), id, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", updatedPost.UserID))
}
