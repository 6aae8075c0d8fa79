package user_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogly-service/internal/custom_errors"
	"blogly-service/internal/logger"
)

type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

type DeleteUserHandler struct {
	userService UserDeleter
	log         *logger.Logger
}

func NewDeleteUserHandler(userService UserDeleter, log *logger.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *DeleteUserHandler) Handle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error/404", gin.H{})
			return
		}
		h.log.Error("Failed to delete user", slog.Int64("id", id), slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}
