package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/domain/mocks"
	"github.com/Guyuepp/blog-comment-thread/internal/rest"
)

func newNotificationRouter(svc domain.NotificationUsecase, uid int64) *gin.Engine {
	h := rest.NewNotificationHandler(svc)
	r := gin.New()
	g := r.Group("/", withUser(uid))
	g.GET("/notifications", h.List)
	g.GET("/notifications/count", h.Count)
	g.GET("/notifications/new", h.HasNew)
	return r
}

func TestNotificationList(t *testing.T) {
	svc := mocks.NewNotificationUsecase(t)
	r := newNotificationRouter(svc, 2)

	svc.On("List", mock.Anything, int64(2), "reply", int64(3), int64(2)).Return([]domain.Notification{
		{ID: 9, RecipientID: 2, ActorID: 4, BlogID: 7, CommentID: 12, Type: domain.NotificationReply,
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}, nil).Once()
	svc.On("List", mock.Anything, int64(2), "mentions", int64(1), int64(0)).Return(nil, domain.ErrBadParamInput).Once()

	rec := serve(r, http.MethodGet, "/notifications?filter=reply&page=3&deleted_doc_count=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Notifications []map[string]any `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Notifications, 1)
	assert.Equal(t, "reply", body.Notifications[0]["type"])

	rec = serve(r, http.MethodGet, "/notifications?filter=mentions", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationCountAndNew(t *testing.T) {
	svc := mocks.NewNotificationUsecase(t)
	r := newNotificationRouter(svc, 2)

	svc.On("Count", mock.Anything, int64(2), "").Return(int64(4), nil).Once()
	svc.On("HasNew", mock.Anything, int64(2)).Return(true, nil).Once()

	rec := serve(r, http.MethodGet, "/notifications/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":4}`, rec.Body.String())

	rec = serve(r, http.MethodGet, "/notifications/new", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"new_notification_available":true}`, rec.Body.String())
}

func TestNotificationRequiresUser(t *testing.T) {
	r := newNotificationRouter(mocks.NewNotificationUsecase(t), 0)
	for _, target := range []string{"/notifications", "/notifications/count", "/notifications/new"} {
		rec := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
