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

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type CreatePostHandler struct {
	postService PostCreator
	userService UserGetter
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, userService UserGetter, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type createPostRequest struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

func (h *CreatePostHandler) ShowForm(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to get user for post form", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "posts/new", gin.H{
		"User": user,
		"Form": createPostRequest{},
	})
}

func (h *CreatePostHandler) Handle(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to get user for post create", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	var req createPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "posts/new", gin.H{
			"User":  user,
			"Form":  req,
			"Error": "Title and content are required.",
		})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := h.validate.Struct(req); err != nil {
		c.HTML(http.StatusBadRequest, "posts/new", gin.H{
			"User":  user,
			"Form":  req,
			"Error": "Title and content are required.",
		})
		return
	}

	dto := &model.CreatePostDTO{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	if _, err := h.postService.CreatePost(c.Request.Context(), dto); err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to create post", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", userID))
}
