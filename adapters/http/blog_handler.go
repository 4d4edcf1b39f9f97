package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blogUC "github.com/hrahman/profilio/internal/application/usecase/blog"
	"github.com/hrahman/profilio/pkg/apperror"
)

type BlogHandler struct {
	blogUseCase *blogUC.BlogUseCase
}

func NewBlogHandler(uc *blogUC.BlogUseCase) *BlogHandler {
	return &BlogHandler{blogUseCase: uc}
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	post, err := h.blogUseCase.CreatePost(c.Request.Context(), blogUC.PostInput{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToBlogPostDTO(post))
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	post, err := h.blogUseCase.GetPost(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToBlogPostDTO(post))
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	posts, err := h.blogUseCase.ListPosts(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]BlogPostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToBlogPostDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	post, err := h.blogUseCase.UpdatePost(c.Request.Context(), blogUC.PostInput{
		ID:      id,
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToBlogPostDTO(post))
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid post ID", err))
		return
	}

	if err := h.blogUseCase.DeletePost(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
