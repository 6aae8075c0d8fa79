package user_http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type UserCreator interface {
	CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
}

type CreateUserHandler struct {
	userService UserCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreateUserHandler(userService UserCreator, validate *validator.Validate, log *logger.Logger) *CreateUserHandler {
	return &CreateUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type createUserRequest struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	ImageURL  string `form:"image_url"`
}

func (h *CreateUserHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "users/new", gin.H{"Form": createUserRequest{}})
}

func (h *CreateUserHandler) Handle(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "users/new", gin.H{
			"Form":  req,
			"Error": "First and last name are required.",
		})
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := h.validate.Struct(req); err != nil {
		c.HTML(http.StatusBadRequest, "users/new", gin.H{
			"Form":  req,
			"Error": "First and last name are required.",
		})
		return
	}

	dto := &model.CreateUserDTO{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  imageURLOrNil(req.ImageURL),
	}

	if _, err := h.userService.CreateUser(c.Request.Context(), dto); err != nil {
		h.log.Error("Failed to create user", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

// imageURLOrNil stores a blank avatar field as NULL so the placeholder
// image is substituted at render time.
func imageURLOrNil(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
