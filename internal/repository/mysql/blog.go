package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository/mysql/model"
)

type blogRepository struct {
	DB *gorm.DB
}

var _ domain.BlogAggregateStore = (*blogRepository)(nil)

// NewBlogRepository 博客计数器存储
func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) GetByID(ctx context.Context, id int64) (res domain.Blog, err error) {
	var blog model.Blog
	err = conn(ctx, m.DB).First(&blog, "id = ?", id).Error
	if err != nil {
		return res, translateError(err)
	}
	res = blog.ToDomain()
	return
}

func (m *blogRepository) Incr(ctx context.Context, blogID int64, delta domain.CounterDelta) error {
	if delta.IsZero() {
		return nil
	}
	result := conn(ctx, m.DB).Model(&model.Blog{}).
		Where("id = ?", blogID).
		UpdateColumns(map[string]any{
			"total_comments":        gorm.Expr("total_comments + ?", delta.Comments),
			"total_parent_comments": gorm.Expr("total_parent_comments + ?", delta.ParentComments),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *blogRepository) Recount(ctx context.Context, blogID int64) error {
	return runInTx(ctx, m.DB, func(_ context.Context, tx *gorm.DB) error {
		var total, roots int64
		if err := tx.Model(&model.Comment{}).Where("blog_id = ?", blogID).Count(&total).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Model(&model.Comment{}).Where("blog_id = ? AND parent_id = 0", blogID).Count(&roots).Error; err != nil {
			return translateError(err)
		}

		err := tx.Model(&model.Blog{}).
			Where("id = ?", blogID).
			UpdateColumns(map[string]any{
				"total_comments":        total,
				"total_parent_comments": roots,
			}).Error
		return translateError(err)
	})
}

func (m *blogRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = conn(ctx, m.DB).
		Model(&model.Blog{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return ids, translateError(err)
}
