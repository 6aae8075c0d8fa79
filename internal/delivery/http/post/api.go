package post_http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogly-service/internal/logger"
	post_service "blogly-service/internal/service/post"
	user_service "blogly-service/internal/service/user"
)

var validate = validator.New()

type PostHTTPService struct {
	log               *logger.Logger
	createPostHandler *CreatePostHandler
	showPostHandler   *ShowPostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, userService user_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		log:               log,
		createPostHandler: NewCreatePostHandler(postService, userService, validate, log),
		showPostHandler:   NewShowPostHandler(postService, userService, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
	}
}

func (s *PostHTTPService) Register(router gin.IRouter) {
	router.GET("/users/:id/posts/new", s.createPostHandler.ShowForm)
	router.POST("/users/:id/posts/new", s.createPostHandler.Handle)
	router.GET("/posts/:id", s.showPostHandler.Handle)
	router.GET("/posts/:id/edit", s.updatePostHandler.ShowForm)
	router.POST("/posts/:id/edit", s.updatePostHandler.Handle)
	router.POST("/posts/:id/delete", s.deletePostHandler.Handle)
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
