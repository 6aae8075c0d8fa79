package user_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type UserUpdater interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error)
}

type UpdateUserHandler struct {
	userService UserUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdateUserHandler(userService UserUpdater, validate *validator.Validate, log *logger.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type updateUserRequest struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	ImageURL  string `form:"image_url"`
}

func (h *UpdateUserHandler) ShowForm(c *gin.Context) {
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
		h.log.Error("Failed to get user for edit", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	form := updateUserRequest{
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.ImageURL != nil {
		form.ImageURL = *user.ImageURL
	}

	c.HTML(http.StatusOK, "users/edit", gin.H{
		"UserID": user.ID,
		"Form":   form,
	})
}

func (h *UpdateUserHandler) Handle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "users/edit", gin.H{
			"UserID": id,
			"Form":   req,
			"Error":  "First and last name are required.",
		})
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := h.validate.Struct(req); err != nil {
		c.HTML(http.StatusBadRequest, "users/edit", gin.H{
			"UserID": id,
			"Form":   req,
			"Error":  "First and last name are required.",
		})
		return
	}

	dto := &model.UpdateUserDTO{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  imageURLOrNil(req.ImageURL),
	}

	if _, err := h.userService.UpdateUser(c.Request.Context(), id, dto); err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to update user", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}
