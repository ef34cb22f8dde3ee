package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/rest/response"
)

type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

// List returns a page of the caller's notifications
func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	page := queryInt64(c, "page", 1)
	deleted := queryInt64(c, "deleted_doc_count", 0)

	list, err := h.Service.List(c.Request.Context(), uid, c.Query("filter"), page, deleted)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": response.NewNotificationsFromDomain(list)})
}

func (h *NotificationHandler) Count(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	total, err := h.Service.Count(c.Request.Context(), uid, c.Query("filter"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *NotificationHandler) HasNew(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	has, err := h.Service.HasNew(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"new_notification_available": has})
}
