package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	notificationModel := model.NewNotificationFromDomain(n)
	if err := conn(ctx, r.DB).Create(notificationModel).Error; err != nil {
		return translateError(err)
	}
	n.ID = notificationModel.ID
	n.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (r *notificationRepository) DeleteByCommentIDs(ctx context.Context, commentIDs []int64) error {
	if len(commentIDs) == 0 {
		return nil
	}
	err := conn(ctx, r.DB).Where("comment_id IN ?", commentIDs).Delete(&model.Notification{}).Error
	return translateError(err)
}

func (r *notificationRepository) Fetch(ctx context.Context, recipientID int64, filter string, skip, limit int64) ([]domain.Notification, error) {
	var rows []model.Notification
	err := r.scope(conn(ctx, r.DB), recipientID, filter).
		Order("created_at DESC").
		Order("id DESC").
		Offset(int(skip)).
		Limit(int(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *notificationRepository) Count(ctx context.Context, recipientID int64, filter string) (int64, error) {
	var count int64
	err := r.scope(conn(ctx, r.DB), recipientID, filter).Count(&count).Error
	return count, translateError(err)
}

func (r *notificationRepository) HasUnseen(ctx context.Context, recipientID int64) (bool, error) {
	var ids []int64
	err := conn(ctx, r.DB).Model(&model.Notification{}).
		Where("recipient_id = ? AND seen = ?", recipientID, false).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, translateError(err)
	}
	return len(ids) > 0, nil
}

func (r *notificationRepository) MarkSeen(ctx context.Context, recipientID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	err := conn(ctx, r.DB).Model(&model.Notification{}).
		Where("recipient_id = ? AND id IN ?", recipientID, ids).
		UpdateColumn("seen", true).Error
	return translateError(err)
}

func (r *notificationRepository) scope(db *gorm.DB, recipientID int64, filter string) *gorm.DB {
	db = db.Model(&model.Notification{}).Where("recipient_id = ?", recipientID)
	if filter != "" && filter != domain.NotificationFilterAll {
		db = db.Where("type = ?", filter)
	}
	return db
}
