package delivery_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	post_http "blogly-service/internal/delivery/http/post"
	user_http "blogly-service/internal/delivery/http/user"
	"blogly-service/internal/logger"
	"blogly-service/internal/metrics"
	post_service "blogly-service/internal/service/post"
	user_service "blogly-service/internal/service/user"
)

// NewRouter assembles the full HTML route table over the user and post
// services. Every response is a rendered page or a redirect.
func NewRouter(
	env string,
	userService user_service.Service,
	postService post_service.Service,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *gin.Engine {
	switch env {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))
	router.Use(RequestMetrics(metrics))
	router.SetHTMLTemplate(mustLoadTemplates())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	userAPI := user_http.NewUserHTTPService(userService, postService, log)
	userAPI.Register(router)

	postAPI := post_http.NewPostHTTPService(postService, userService, log)
	postAPI.Register(router)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error/404", gin.H{})
	})

	return router
}
