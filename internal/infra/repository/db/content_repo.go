package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type IContentRepository interface {
	CreatePage(ctx context.Context, page *model.Page) error
	GetPageBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Page, error)
	GetAllPages(ctx context.Context, publishedOnly bool) ([]model.Page, error)
	UpdatePage(ctx context.Context, page *model.Page) error
	DeletePage(ctx context.Context, id uint) error
	PageSlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)

	CreateBlogPost(ctx context.Context, post *model.BlogPost) error
	GetBlogPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.BlogPost, error)
	GetBlogPostsPaginated(ctx context.Context, publishedOnly bool, page, pageSize int) ([]model.BlogPost, int64, error)
	UpdateBlogPost(ctx context.Context, post *model.BlogPost) error
	DeleteBlogPost(ctx context.Context, id uint) error
	BlogSlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)

	CreateFAQ(ctx context.Context, faq *model.FAQ) error
	GetAllFAQs(ctx context.Context, activeOnly bool) ([]model.FAQ, error)
	UpdateFAQ(ctx context.Context, faq *model.FAQ) error
	DeleteFAQ(ctx context.Context, id uint) error
}

type ContentRepo struct {
	db *DbDao
}

func NewContentRepo(db *DbDao) *ContentRepo {
	return &ContentRepo{db: db}
}

func (r *ContentRepo) CreatePage(ctx context.Context, page *model.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *ContentRepo) GetPageBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Page, error) {
	var page model.Page
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = true")
	}
	err := query.First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *ContentRepo) GetAllPages(ctx context.Context, publishedOnly bool) ([]model.Page, error) {
	var pages []model.Page
	query := r.db.WithContext(ctx).Order("title")
	if publishedOnly {
		query = query.Where("published = true")
	}
	err := query.Find(&pages).Error
	return pages, err
}

func (r *ContentRepo) UpdatePage(ctx context.Context, page *model.Page) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *ContentRepo) DeletePage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("page_id = ?", id).Delete(&model.Page{}).Error
}

func (r *ContentRepo) PageSlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Page{}).
		Where("slug = ? AND page_id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *ContentRepo) CreateBlogPost(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *ContentRepo) GetBlogPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.BlogPost, error) {
	var post model.BlogPost
	query := r.db.WithContext(ctx).Preload("Author").Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = true")
	}
	err := query.First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ContentRepo) GetBlogPostsPaginated(ctx context.Context, publishedOnly bool, page, pageSize int) ([]model.BlogPost, int64, error) {
	var posts []model.BlogPost
	var total int64

	offset := (page - 1) * pageSize
	query := r.db.WithContext(ctx).Model(&model.BlogPost{})
	if publishedOnly {
		query = query.Where("published = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("published_at DESC NULLS LAST, created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&posts).Error

	return posts, total, err
}

func (r *ContentRepo) UpdateBlogPost(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *ContentRepo) DeleteBlogPost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("post_id = ?", id).Delete(&model.BlogPost{}).Error
}

func (r *ContentRepo) BlogSlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("slug = ? AND post_id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *ContentRepo) CreateFAQ(ctx context.Context, faq *model.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *ContentRepo) GetAllFAQs(ctx context.Context, activeOnly bool) ([]model.FAQ, error) {
	var faqs []model.FAQ
	query := r.db.WithContext(ctx).Order(`"order", created_at DESC`)
	if activeOnly {
		query = query.Where("active = true")
	}
	err := query.Find(&faqs).Error
	return faqs, err
}

func (r *ContentRepo) UpdateFAQ(ctx context.Context, faq *model.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r *ContentRepo) DeleteFAQ(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("faq_id = ?", id).Delete(&model.FAQ{}).Error
}
