package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository/mysql/model"
)

type commentRepository struct {
	DB            *gorm.DB
	notifications domain.NotificationRepository
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 评论存储。级联删除时通过 notifications 清理通知
func NewCommentRepository(db *gorm.DB, notifications domain.NotificationRepository) *commentRepository {
	return &commentRepository{
		DB:            db,
		notifications: notifications,
	}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	return runInTx(ctx, r.DB, func(ctx context.Context, tx *gorm.DB) error {
		if c.ParentID != 0 {
			var parent model.Comment
			err := tx.Select("id, blog_id").Where("id = ?", c.ParentID).Limit(1).Find(&parent).Error
			if err != nil {
				return translateError(err)
			}
			if parent.ID == 0 || parent.BlogID != c.BlogID {
				return domain.ErrNotFound
			}
		}

		commentModel := model.NewCommentFromDomain(c)
		if err := tx.Create(commentModel).Error; err != nil {
			return translateError(err)
		}

		if c.ParentID != 0 {
			link := &model.CommentChild{ParentID: c.ParentID, ChildID: commentModel.ID}
			if err := tx.Create(link).Error; err != nil {
				return translateError(err)
			}
		}

		c.ID = commentModel.ID
		c.CreatedAt = commentModel.CreatedAt
		c.IsReply = c.ParentID != 0
		if c.Children == nil {
			c.Children = []int64{}
		}
		return nil
	})
}

func (r *commentRepository) DeleteSubtree(ctx context.Context, id int64) (domain.SubtreeRemoval, error) {
	var res domain.SubtreeRemoval
	err := runInTx(ctx, r.DB, func(ctx context.Context, tx *gorm.DB) error {
		var root model.Comment
		if err := tx.Select("id, blog_id, parent_id").Where("id = ?", id).Limit(1).Find(&root).Error; err != nil {
			return translateError(err)
		}
		// already gone, nothing to repair
		if root.ID == 0 {
			return nil
		}

		removed := []int64{root.ID}
		frontier := []int64{root.ID}
		for len(frontier) > 0 {
			var next []int64
			err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Order("id").
				Pluck("id", &next).Error
			if err != nil {
				return translateError(err)
			}
			removed = append(removed, next...)
			frontier = next
		}

		if err := r.notifications.DeleteByCommentIDs(ctx, removed); err != nil {
			return err
		}

		// drops the subtree root from its own parent's children as well
		err := tx.Where("child_id IN ? OR parent_id IN ?", removed, removed).
			Delete(&model.CommentChild{}).Error
		if err != nil {
			return translateError(err)
		}

		if err := tx.Where("id IN ?", removed).Delete(&model.Comment{}).Error; err != nil {
			return translateError(err)
		}

		res = domain.SubtreeRemoval{
			BlogID:      root.BlogID,
			RemovedIDs:  removed,
			RootRemoved: root.ParentID == 0,
		}
		return nil
	})
	if err != nil {
		return domain.SubtreeRemoval{}, err
	}
	return res, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	db := conn(ctx, r.DB)
	var comment model.Comment
	if err := db.Where("id = ?", id).Limit(1).Find(&comment).Error; err != nil {
		return domain.Comment{}, translateError(err)
	}
	if comment.ID == 0 {
		return domain.Comment{}, domain.ErrNotFound
	}

	res, err := r.withChildren(db, []model.Comment{comment})
	if err != nil {
		return domain.Comment{}, err
	}
	return res[0], nil
}

func (r *commentRepository) FetchRoots(ctx context.Context, blogID int64, skip, limit int64) ([]domain.Comment, error) {
	db := conn(ctx, r.DB)
	var comments []model.Comment
	err := db.Where("blog_id = ? AND parent_id = 0", blogID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(int(skip)).
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.withChildren(db, comments)
}

func (r *commentRepository) FetchChildren(ctx context.Context, parentID int64, skip, limit int64) ([]domain.Comment, error) {
	db := conn(ctx, r.DB)
	var comments []model.Comment
	err := db.Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(int(skip)).
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.withChildren(db, comments)
}

// withChildren converts the models and loads every children list with one query.
func (r *commentRepository) withChildren(db *gorm.DB, comments []model.Comment) ([]domain.Comment, error) {
	res := make([]domain.Comment, 0, len(comments))
	if len(comments) == 0 {
		return res, nil
	}

	ids := make([]int64, len(comments))
	for i := range comments {
		ids[i] = comments[i].ID
	}

	var links []model.CommentChild
	if err := db.Where("parent_id IN ?", ids).Order("id").Find(&links).Error; err != nil {
		return nil, translateError(err)
	}
	childMap := make(map[int64][]int64, len(ids))
	for _, l := range links {
		childMap[l.ParentID] = append(childMap[l.ParentID], l.ChildID)
	}

	for i := range comments {
		c := comments[i].ToDomain()
		if children, ok := childMap[c.ID]; ok {
			c.Children = children
		}
		res = append(res, c)
	}
	return res, nil
}
