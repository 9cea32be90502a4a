package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/internal/auth"
	"blog-api/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// List handles GET /api/v1/posts?page=N
func (h *PostHandler) List(c *gin.Context) {
	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgBadPage})
			return
		}
		page = n
	}

	result, err := h.postService.List(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostListResponse(result))
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	obj, err := readObject(c)
	if err != nil {
		writeError(c, err)
		return
	}
	in, err := decodeCreatePost(obj)
	if err != nil {
		writeError(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), auth.CurrentUser(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(post))
}

// Get handles GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// Update handles PUT /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	obj, err := readObject(c)
	if err != nil {
		writeError(c, err)
		return
	}
	patch, err := decodeUpdatePost(obj)
	if err != nil {
		writeError(c, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), auth.CurrentUser(c), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), auth.CurrentUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
