package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/rest/response"
)

type BlogHandler struct {
	Service domain.BlogUsecase
}

func NewBlogHandler(svc domain.BlogUsecase) *BlogHandler {
	return &BlogHandler{
		Service: svc,
	}
}

// GetActivity returns the comment counters of a blog
func (h *BlogHandler) GetActivity(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	blog, err := h.Service.GetActivity(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewActivityFromDomain(&blog))
}
