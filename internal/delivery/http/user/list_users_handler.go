package user_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogly-service/internal/logger"
	"blogly-service/internal/model"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
}

type ListUsersHandler struct {
	userService UserLister
	log         *logger.Logger
}

func NewListUsersHandler(userService UserLister, log *logger.Logger) *ListUsersHandler {
	return &ListUsersHandler{
		userService: userService,
		log:         log,
	}
}

func (h *ListUsersHandler) Handle(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list users", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error/500", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "users/list", gin.H{"Users": users})
}
