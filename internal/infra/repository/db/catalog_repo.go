package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

// 目錄參考資料 Brand/Category/Season/Size
// read-mostly，寫入只開放給後台
type ICatalogRepository interface {
	CreateBrand(ctx context.Context, brand *model.Brand) error
	GetBrandByID(ctx context.Context, id uint) (*model.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*model.Brand, error)
	GetAllBrands(ctx context.Context) ([]model.Brand, error)
	UpdateBrand(ctx context.Context, brand *model.Brand) error
	DeleteBrand(ctx context.Context, id uint) error
	BrandSlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)

	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategoryByID(ctx context.Context, id uint) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error
	CategorySlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)

	CreateSeason(ctx context.Context, season *model.Season) error
	GetAllSeasons(ctx context.Context) ([]model.Season, error)
	DeleteSeason(ctx context.Context, id uint) error

	CreateSize(ctx context.Context, size *model.Size) error
	GetAllSizes(ctx context.Context) ([]model.Size, error)
	DeleteSize(ctx context.Context, id uint) error
}

type CatalogRepo struct {
	db *DbDao
}

func NewCatalogRepo(db *DbDao) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) CreateBrand(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *CatalogRepo) GetBrandByID(ctx context.Context, id uint) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.WithContext(ctx).First(&brand, "brand_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *CatalogRepo) GetBrandBySlug(ctx context.Context, slug string) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *CatalogRepo) GetAllBrands(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.WithContext(ctx).Order("name").Find(&brands).Error
	return brands, err
}

func (r *CatalogRepo) UpdateBrand(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *CatalogRepo) DeleteBrand(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("brand_id = ?", id).Delete(&model.Brand{}).Error
}

func (r *CatalogRepo) BrandSlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Brand{}).
		Where("slug = ? AND brand_id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CatalogRepo) GetCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Preload("Children").First(&category, "category_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CatalogRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("category_id = ?", id).Delete(&model.Category{}).Error
}

func (r *CatalogRepo) CategorySlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("slug = ? AND category_id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepo) CreateSeason(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *CatalogRepo) GetAllSeasons(ctx context.Context) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).Order("year DESC, season_type").Find(&seasons).Error
	return seasons, err
}

func (r *CatalogRepo) DeleteSeason(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("season_id = ?", id).Delete(&model.Season{}).Error
}

func (r *CatalogRepo) CreateSize(ctx context.Context, size *model.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *CatalogRepo) GetAllSizes(ctx context.Context) ([]model.Size, error) {
	var sizes []model.Size
	err := r.db.WithContext(ctx).Order("category, value").Find(&sizes).Error
	return sizes, err
}

func (r *CatalogRepo) DeleteSize(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("size_id = ?", id).Delete(&model.Size{}).Error
}
