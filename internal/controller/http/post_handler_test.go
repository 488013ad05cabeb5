package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/entity"
	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(userID, title, content string) (*entity.Post, error) {
	args := m.Called(userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID, userID string) (*entity.Post, int64, bool, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, 0, false, args.Error(3)
	}
	return args.Get(0).(*entity.Post), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockPostUseCase) ListPosts(search string, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(postID, userID string, title, content *string) (*entity.Post, error) {
	args := m.Called(postID, userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockPostUseCase) IsAuthor(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser("user-123", handler.CreatePost))

	mockPost := &entity.Post{ID: "post-1", AuthorID: "user-123", Title: "Hello", Content: "World"}
	mockUseCase.On("CreatePost", "user-123", "Hello", "World").Return(mockPost, nil)

	body := `{"title":"Hello","content":"World"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

// A client-supplied author field is ignored: the stored author is always the
// authenticated caller.
func TestCreatePost_AuthorFieldIgnored(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser("user-123", handler.CreatePost))

	mockPost := &entity.Post{ID: "post-1", AuthorID: "user-123", Title: "Hello", Content: "World"}
	mockUseCase.On("CreatePost", "user-123", "Hello", "World").Return(mockPost, nil)

	body := `{"title":"Hello","content":"World","author_id":"someone-else"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	post := response["post"].(map[string]interface{})
	assert.Equal(t, "user-123", post["author_id"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MissingTitle(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser("user-123", handler.CreatePost))

	body := `{"content":"no title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost")
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockPost := &entity.Post{ID: "post-123", AuthorID: "author-1", Title: "Hello"}
	mockUseCase.On("GetPost", "post-123", "").Return(mockPost, int64(4), false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(4), response["likes_count"])

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockUseCase.On("GetPost", "post-gone", "").Return(nil, int64(0), false, entity.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-gone", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", asUser("mallory", handler.UpdatePost))

	title := "New Title"
	mockUseCase.On("UpdatePost", "post-123", "mallory", &title, (*string)(nil)).Return(nil, entity.ErrForbidden)

	body := `{"title":"New Title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/post-123", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", asUser("author-1", handler.UpdatePost))

	title := "New Title"
	mockPost := &entity.Post{ID: "post-123", AuthorID: "author-1", Title: title}
	mockUseCase.On("UpdatePost", "post-123", "author-1", &title, (*string)(nil)).Return(mockPost, nil)

	body := `{"title":"New Title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/post-123", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", asUser("mallory", handler.DeletePost))

	mockUseCase.On("DeletePost", "post-123", "mallory").Return(entity.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockPosts := []*entity.Post{
		{ID: "post-1", AuthorID: "author-1", Title: "Post 1"},
		{ID: "post-2", AuthorID: "author-2", Title: "Post 2"},
	}
	mockUseCase.On("ListPosts", "", 20, 0).Return(mockPosts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["posts"].([]interface{})
	assert.Equal(t, 2, len(posts))

	mockUseCase.AssertExpectations(t)
}
