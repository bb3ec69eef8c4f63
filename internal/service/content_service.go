package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type IContentService interface {
	// staffView=true 可見未發佈內容
	GetPages(ctx context.Context, staffView bool) ([]model.Page, error)
	GetPageBySlug(ctx context.Context, slug string, staffView bool) (*model.Page, error)
	CreatePage(ctx context.Context, page *model.Page) error
	UpdatePage(ctx context.Context, page *model.Page) error
	DeletePage(ctx context.Context, id uint) error

	GetBlogPosts(ctx context.Context, staffView bool, page, pageSize int) ([]model.BlogPost, int64, error)
	GetBlogPostBySlug(ctx context.Context, slug string, staffView bool) (*model.BlogPost, error)
	CreateBlogPost(ctx context.Context, post *model.BlogPost) error
	UpdateBlogPost(ctx context.Context, post *model.BlogPost) error
	DeleteBlogPost(ctx context.Context, id uint) error

	GetFAQs(ctx context.Context, staffView bool) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, faq *model.FAQ) error
	UpdateFAQ(ctx context.Context, faq *model.FAQ) error
	DeleteFAQ(ctx context.Context, id uint) error
}

type ContentService struct {
	contentRepo db.IContentRepository
}

func NewContentService(contentRepo db.IContentRepository) IContentService {
	if contentRepo == nil {
		panic("contentRepo cannot be nil")
	}
	return &ContentService{contentRepo: contentRepo}
}

func (s *ContentService) GetPages(ctx context.Context, staffView bool) ([]model.Page, error) {
	return s.contentRepo.GetAllPages(ctx, !staffView)
}

func (s *ContentService) GetPageBySlug(ctx context.Context, slug string, staffView bool) (*model.Page, error) {
	page, err := s.contentRepo.GetPageBySlug(ctx, slug, !staffView)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "page not found")
		}
		return nil, err
	}
	return page, nil
}

func (s *ContentService) CreatePage(ctx context.Context, page *model.Page) error {
	if page.Title == "" {
		return er.New(er.BadRequestCode, "page title is required")
	}

	slug, err := uniqueSlug(ctx, util.Slugify(page.Title), 0, s.contentRepo.PageSlugExists)
	if err != nil {
		return err
	}
	page.Slug = slug

	return s.contentRepo.CreatePage(ctx, page)
}

func (s *ContentService) UpdatePage(ctx context.Context, page *model.Page) error {
	slug, err := uniqueSlug(ctx, util.Slugify(page.Title), page.PageID, s.contentRepo.PageSlugExists)
	if err != nil {
		return err
	}
	page.Slug = slug
	return s.contentRepo.UpdatePage(ctx, page)
}

func (s *ContentService) DeletePage(ctx context.Context, id uint) error {
	return s.contentRepo.DeletePage(ctx, id)
}

func (s *ContentService) GetBlogPosts(ctx context.Context, staffView bool, page, pageSize int) ([]model.BlogPost, int64, error) {
	return s.contentRepo.GetBlogPostsPaginated(ctx, !staffView, page, pageSize)
}

func (s *ContentService) GetBlogPostBySlug(ctx context.Context, slug string, staffView bool) (*model.BlogPost, error) {
	post, err := s.contentRepo.GetBlogPostBySlug(ctx, slug, !staffView)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "blog post not found")
		}
		return nil, err
	}
	return post, nil
}

func (s *ContentService) CreateBlogPost(ctx context.Context, post *model.BlogPost) error {
	if post.Title == "" {
		return er.New(er.BadRequestCode, "post title is required")
	}

	slug, err := uniqueSlug(ctx, util.Slugify(post.Title), 0, s.contentRepo.BlogSlugExists)
	if err != nil {
		return err
	}
	post.Slug = slug

	stampPublishedAt(post)

	return s.contentRepo.CreateBlogPost(ctx, post)
}

func (s *ContentService) UpdateBlogPost(ctx context.Context, post *model.BlogPost) error {
	slug, err := uniqueSlug(ctx, util.Slugify(post.Title), post.PostID, s.contentRepo.BlogSlugExists)
	if err != nil {
		return err
	}
	post.Slug = slug

	stampPublishedAt(post)

	return s.contentRepo.UpdateBlogPost(ctx, post)
}

func (s *ContentService) DeleteBlogPost(ctx context.Context, id uint) error {
	return s.contentRepo.DeleteBlogPost(ctx, id)
}

func (s *ContentService) GetFAQs(ctx context.Context, staffView bool) ([]model.FAQ, error) {
	return s.contentRepo.GetAllFAQs(ctx, !staffView)
}

func (s *ContentService) CreateFAQ(ctx context.Context, faq *model.FAQ) error {
	if faq.Question == "" || faq.Answer == "" {
		return er.New(er.BadRequestCode, "question and answer are required")
	}
	return s.contentRepo.CreateFAQ(ctx, faq)
}

func (s *ContentService) UpdateFAQ(ctx context.Context, faq *model.FAQ) error {
	return s.contentRepo.UpdateFAQ(ctx, faq)
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id uint) error {
	return s.contentRepo.DeleteFAQ(ctx, id)
}

// 首次發佈時補上發佈時間
func stampPublishedAt(post *model.BlogPost) {
	if post.Published && post.PublishedAt == nil {
		now := nowFunc()
		post.PublishedAt = &now
	}
}
