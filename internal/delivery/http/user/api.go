package user_http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogly-service/internal/logger"
	post_service "blogly-service/internal/service/post"
	user_service "blogly-service/internal/service/user"
)

var validate = validator.New()

type UserHTTPService struct {
	log               *logger.Logger
	listUsersHandler  *ListUsersHandler
	createUserHandler *CreateUserHandler
	showUserHandler   *ShowUserHandler
	updateUserHandler *UpdateUserHandler
	deleteUserHandler *DeleteUserHandler
}

func NewUserHTTPService(userService user_service.Service, postService post_service.Service, log *logger.Logger) *UserHTTPService {
	return &UserHTTPService{
		log:               log,
		listUsersHandler:  NewListUsersHandler(userService, log),
		createUserHandler: NewCreateUserHandler(userService, validate, log),
		showUserHandler:   NewShowUserHandler(userService, postService, log),
		updateUserHandler: NewUpdateUserHandler(userService, validate, log),
		deleteUserHandler: NewDeleteUserHandler(userService, log),
	}
}

func (s *UserHTTPService) Register(router gin.IRouter) {
	router.GET("/users", s.listUsersHandler.Handle)
	router.GET("/users/new", s.createUserHandler.ShowForm)
	router.POST("/users/new", s.createUserHandler.Handle)
	router.GET("/users/:id", s.showUserHandler.Handle)
	router.GET("/users/:id/edit", s.updateUserHandler.ShowForm)
	router.POST("/users/:id/edit", s.updateUserHandler.Handle)
	router.POST("/users/:id/delete", s.deleteUserHandler.Handle)
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
