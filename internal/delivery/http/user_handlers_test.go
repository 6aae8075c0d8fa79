package delivery_http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogly-service/internal/custom_errors"
	delivery_http "blogly-service/internal/delivery/http"
	"blogly-service/internal/logger"
	prometheus_metrics "blogly-service/internal/metrics/prometheus"
	"blogly-service/internal/model"
	post_service "blogly-service/internal/service/post"
	user_service "blogly-service/internal/service/user"
	mockpost "blogly-service/mocks/post"
	mockuser "blogly-service/mocks/user"
)

func setupRouter(userService user_service.Service, postService post_service.Service) http.Handler {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	return delivery_http.NewRouter("test", userService, postService, log, metrics)
}

func performRequest(router http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHomeRedirectsToUserList(t *testing.T) {
	router := setupRouter(new(mockuser.Service), new(mockpost.Service))

	resp := performRequest(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/users", resp.Header().Get("Location"))
}

func TestListUsers(t *testing.T) {
	t.Run("renders users sorted by the service", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("ListUsers", mock.Anything).Return([]*model.User{
			{ID: 2, FirstName: "Alice", LastName: "Miller"},
			{ID: 1, FirstName: "Tom", LastName: "Test"},
		}, nil)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		body := resp.Body.String()
		assert.Contains(t, body, "Alice Miller")
		assert.Contains(t, body, "Tom Test")
		assert.Less(t, strings.Index(body, "Alice Miller"), strings.Index(body, "Tom Test"))
		userSvc.AssertExpectations(t)
	})

	t.Run("service failure renders 500 page", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("ListUsers", mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("form page", func(t *testing.T) {
		router := setupRouter(new(mockuser.Service), new(mockpost.Service))

		resp := performRequest(router, http.MethodGet, "/users/new", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `name="first_name"`)
	})

	t.Run("blank image is stored as absent", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("CreateUser", mock.Anything, mock.MatchedBy(func(dto *model.CreateUserDTO) bool {
			return dto.FirstName == "Tom" && dto.LastName == "Test" && dto.ImageURL == nil
		})).Return(&model.User{ID: 1, FirstName: "Tom", LastName: "Test"}, nil)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodPost, "/users/new", url.Values{
			"first_name": {"Tom"},
			"last_name":  {"Test"},
			"image_url":  {""},
		})

		assert.Equal(t, http.StatusSeeOther, resp.Code)
		assert.Equal(t, "/users", resp.Header().Get("Location"))
		userSvc.AssertExpectations(t)
	})

	t.Run("missing required field is rejected", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodPost, "/users/new", url.Values{
			"first_name": {""},
			"last_name":  {"Test"},
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "required")
		userSvc.AssertNotCalled(t, "CreateUser")
	})
}

func TestShowUser(t *testing.T) {
	t.Run("profile lists the user's posts", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		postSvc := new(mockpost.Service)
		userSvc.On("GetUserByID", mock.Anything, int64(1)).
			Return(&model.User{ID: 1, FirstName: "Tom", LastName: "Test"}, nil)
		postSvc.On("GetPostsByUser", mock.Anything, int64(1)).Return([]*model.Post{
			{ID: 5, UserID: 1, Title: "My Post", Content: "Lorem Ipsum Delorem"},
		}, nil)
		router := setupRouter(userSvc, postSvc)

		resp := performRequest(router, http.MethodGet, "/users/1", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		body := resp.Body.String()
		assert.Contains(t, body, "Tom Test")
		assert.Contains(t, body, "My Post")
		assert.Contains(t, body, model.DefaultImageURL)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("GetUserByID", mock.Anything, int64(999999)).
			Return(nil, custom_errors.ErrUserNotFound)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodGet, "/users/999999", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("non-numeric id returns 404", func(t *testing.T) {
		router := setupRouter(new(mockuser.Service), new(mockpost.Service))

		resp := performRequest(router, http.MethodGet, "/users/abc", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("edit form is prefilled", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("GetUserByID", mock.Anything, int64(1)).
			Return(&model.User{ID: 1, FirstName: "Tom", LastName: "Test"}, nil)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodGet, "/users/1/edit", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `value="Tom"`)
	})

	t.Run("successful edit redirects to the list", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("UpdateUser", mock.Anything, int64(1), mock.MatchedBy(func(dto *model.UpdateUserDTO) bool {
			return dto.FirstName == "Teresa" && dto.LastName == "Test"
		})).Return(&model.User{ID: 1, FirstName: "Teresa", LastName: "Test"}, nil)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodPost, "/users/1/edit", url.Values{
			"first_name": {"Teresa"},
			"last_name":  {"Test"},
		})

		assert.Equal(t, http.StatusSeeOther, resp.Code)
		assert.Equal(t, "/users", resp.Header().Get("Location"))
		userSvc.AssertExpectations(t)
	})

	t.Run("editing an unknown user returns 404", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("UpdateUser", mock.Anything, int64(999999), mock.AnythingOfType("*model.UpdateUserDTO")).
			Return(nil, custom_errors.ErrUserNotFound)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodPost, "/users/999999/edit", url.Values{
			"first_name": {"Teresa"},
			"last_name":  {"Test"},
		})

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("successful delete redirects to the list", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("DeleteUser", mock.Anything, int64(1)).Return(nil)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodPost, "/users/1/delete", nil)

		require.Equal(t, http.StatusSeeOther, resp.Code)
		assert.Equal(t, "/users", resp.Header().Get("Location"))
		userSvc.AssertExpectations(t)
	})

	t.Run("deleting an unknown user returns 404", func(t *testing.T) {
		userSvc := new(mockuser.Service)
		userSvc.On("DeleteUser", mock.Anything, int64(999999)).
			Return(custom_errors.ErrUserNotFound)
		router := setupRouter(userSvc, new(mockpost.Service))

		resp := performRequest(router, http.MethodPost, "/users/999999/delete", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
