package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/rest/request"
	"github.com/Guyuepp/blog-comment-thread/internal/rest/response"
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// AddComment posts a root comment, or a reply when replying_to is set
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUser(c)
	if !ok {
		return
	}
	blogID, ok := paramID(c)
	if !ok {
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), req.ToDomain(blogID, uid))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewAddedCommentFromDomain(&added))
}

// DeleteComment removes a comment with all of its replies
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteComment(c.Request.Context(), id, uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "done"})
}

// ListRoots will fetch a page of root comments of a blog
func (h *CommentHandler) ListRoots(c *gin.Context) {
	blogID, ok := paramID(c)
	if !ok {
		return
	}
	page := queryInt64(c, "page", 1)
	size := queryInt64(c, "size", domain.DefaultCommentPageSize)

	list, err := h.Service.ListRoots(c.Request.Context(), blogID, page, size)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": response.NewCommentsFromDomain(list)})
}

// ListReplies will fetch the direct replies of a comment
func (h *CommentHandler) ListReplies(c *gin.Context) {
	parentID, ok := paramID(c)
	if !ok {
		return
	}
	skip := queryInt64(c, "skip", 0)
	size := queryInt64(c, "size", domain.DefaultCommentPageSize)

	list, err := h.Service.ListReplies(c.Request.Context(), parentID, skip, size)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"replies": response.NewCommentsFromDomain(list)})
}
