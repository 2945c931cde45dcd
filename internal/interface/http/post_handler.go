package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

const maxCoverSize = 10 << 20 // 10 MiB

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func publicPost(p *entity.Post) gin.H {
	return gin.H{
		"id":        p.ID,
		"title":     p.Title,
		"content":   p.Content,
		"cover_url": p.CoverURL,
		"author": gin.H{
			"id":    p.AuthorID,
			"name":  p.AuthorName,
			"email": p.AuthorEmail,
		},
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// writePostError maps service errors to status codes: missing post answers
// 404 before ownership is ever reported, so 403 only appears for posts that
// exist.
func (h *PostHandler) writePostError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, application.ErrPostNotFound):
		response.Error[any](c, http.StatusNotFound, "post not found", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "not authorized to "+action+" this post", nil)
	default:
		h.Logger.WithError(err).Error(action + " post failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to "+action+" post", nil)
	}
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		out = append(out, publicPost(&posts[i]))
	}
	response.Success(c, http.StatusOK, out, "posts", gin.H{"count": len(out)})
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writePostError(c, err, "get")
		return
	}
	response.Success(c, http.StatusOK, publicPost(p), "post", nil)
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), uid, req.Title, req.Content)
	if err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}
	// The join fields are not populated on insert; the caller is the author.
	p.AuthorName = c.GetString(middleware.CtxUserNameKey)
	p.AuthorEmail = c.GetString(middleware.CtxUserEmailKey)
	response.Success(c, http.StatusCreated, publicPost(p), "post created", nil)
}

// Update PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, application.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writePostError(c, err, "update")
		return
	}
	response.Success(c, http.StatusOK, publicPost(p), "post updated", nil)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		h.writePostError(c, err, "delete")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{}, "post deleted", nil)
}

// UploadCover POST /api/posts/:id/cover (multipart field "cover")
func (h *PostHandler) UploadCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cover file required", nil)
		return
	}
	if file.Size > maxCoverSize {
		response.Error[any](c, http.StatusBadRequest, "cover file too large", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read cover file", nil)
		return
	}
	defer func() { _ = src.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	url, err := h.Svc.UploadCover(c.Request.Context(), c.Param("id"), uid, src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		h.writePostError(c, err, "update")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cover_url": url}, "cover uploaded", nil)
}

// Search GET /api/posts/search?q=
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size := 10
	if s := c.Query("size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			size = n
		}
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("post search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
