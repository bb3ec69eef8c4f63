package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type ICatalogService interface {
	GetBrands(ctx context.Context) ([]model.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*model.Brand, error)
	CreateBrand(ctx context.Context, brand *model.Brand) error
	UpdateBrand(ctx context.Context, brand *model.Brand) error
	DeleteBrand(ctx context.Context, id uint) error

	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	GetSeasons(ctx context.Context) ([]model.Season, error)
	CreateSeason(ctx context.Context, season *model.Season) error
	DeleteSeason(ctx context.Context, id uint) error

	GetSizes(ctx context.Context) ([]model.Size, error)
	CreateSize(ctx context.Context, size *model.Size) error
	DeleteSize(ctx context.Context, id uint) error
}

type CatalogService struct {
	catalogRepo db.ICatalogRepository
}

func NewCatalogService(catalogRepo db.ICatalogRepository) ICatalogService {
	if catalogRepo == nil {
		panic("catalogRepo cannot be nil")
	}
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) GetBrands(ctx context.Context) ([]model.Brand, error) {
	return s.catalogRepo.GetAllBrands(ctx)
}

func (s *CatalogService) GetBrandBySlug(ctx context.Context, slug string) (*model.Brand, error) {
	brand, err := s.catalogRepo.GetBrandBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "brand not found")
		}
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, brand *model.Brand) error {
	if brand.Name == "" {
		return er.New(er.BadRequestCode, "brand name is required")
	}

	slug, err := uniqueSlug(ctx, util.Slugify(brand.Name), 0, s.catalogRepo.BrandSlugExists)
	if err != nil {
		return err
	}
	brand.Slug = slug

	if err := s.catalogRepo.CreateBrand(ctx, brand); err != nil {
		if errors.Is(err, db.ErrDuplicateEntry) {
			return er.New(er.ConflictCode, "brand already exists")
		}
		return err
	}
	return nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, brand *model.Brand) error {
	slug, err := uniqueSlug(ctx, util.Slugify(brand.Name), brand.BrandID, s.catalogRepo.BrandSlugExists)
	if err != nil {
		return err
	}
	brand.Slug = slug
	return s.catalogRepo.UpdateBrand(ctx, brand)
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id uint) error {
	return s.catalogRepo.DeleteBrand(ctx, id)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]model.Category, error) {
	return s.catalogRepo.GetAllCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return er.New(er.BadRequestCode, "category name is required")
	}

	// 巢狀分類僅支援一層父子關係
	if category.ParentID != nil {
		parent, err := s.catalogRepo.GetCategoryByID(ctx, *category.ParentID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return er.New(er.BadRequestCode, "parent category not found")
			}
			return err
		}
		if parent.ParentID != nil {
			return er.New(er.BadRequestCode, "nested categories deeper than one level are not supported")
		}
	}

	slug, err := uniqueSlug(ctx, util.Slugify(category.Name), 0, s.catalogRepo.CategorySlugExists)
	if err != nil {
		return err
	}
	category.Slug = slug

	return s.catalogRepo.CreateCategory(ctx, category)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category *model.Category) error {
	slug, err := uniqueSlug(ctx, util.Slugify(category.Name), category.CategoryID, s.catalogRepo.CategorySlugExists)
	if err != nil {
		return err
	}
	category.Slug = slug
	return s.catalogRepo.UpdateCategory(ctx, category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.catalogRepo.DeleteCategory(ctx, id)
}

func (s *CatalogService) GetSeasons(ctx context.Context) ([]model.Season, error) {
	return s.catalogRepo.GetAllSeasons(ctx)
}

func (s *CatalogService) CreateSeason(ctx context.Context, season *model.Season) error {
	if season.SeasonType != model.SeasonSpringSummer && season.SeasonType != model.SeasonFallWinter {
		return er.New(er.BadRequestCode, "invalid season type")
	}
	return s.catalogRepo.CreateSeason(ctx, season)
}

func (s *CatalogService) DeleteSeason(ctx context.Context, id uint) error {
	return s.catalogRepo.DeleteSeason(ctx, id)
}

func (s *CatalogService) GetSizes(ctx context.Context) ([]model.Size, error) {
	return s.catalogRepo.GetAllSizes(ctx)
}

func (s *CatalogService) CreateSize(ctx context.Context, size *model.Size) error {
	if err := s.catalogRepo.CreateSize(ctx, size); err != nil {
		if errors.Is(err, db.ErrDuplicateEntry) {
			return er.New(er.ConflictCode, "size already exists")
		}
		return err
	}
	return nil
}

func (s *CatalogService) DeleteSize(ctx context.Context, id uint) error {
	return s.catalogRepo.DeleteSize(ctx, id)
}

// uniqueSlug slug重複時以 -1, -2 ... 後綴遞增避開
func uniqueSlug(ctx context.Context, base string, excludeID uint, exists func(context.Context, string, uint) (bool, error)) (string, error) {
	slug := base
	for i := 1; ; i++ {
		ok, err := exists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !ok {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
