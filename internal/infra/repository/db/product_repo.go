package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type ProductFilter struct {
	BrandID     *uint
	CategoryID  *uint
	IsAvailable *bool
	IsFeatured  *bool
}

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	GetProductsPaginated(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int64, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	AddProductImage(ctx context.Context, image *model.ProductImage) error
	DeleteProductImage(ctx context.Context, productID, imageID uint) error
	SetPrimaryImage(ctx context.Context, productID, imageID uint) error
}

type ProductDBRepo struct {
	db *DbDao
}

func NewProductDBRepo(db *DbDao) *ProductDBRepo {
	return &ProductDBRepo{db: db}
}

func (r *ProductDBRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductDBRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").Preload("Images").
		First(&product, "product_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductDBRepo) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").Preload("Images").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// 分頁查詢商品
func (r *ProductDBRepo) GetProductsPaginated(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	offset := (page - 1) * pageSize
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}

	// 計算總數
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Brand").Preload("Category").Preload("Images").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&products).Error

	return products, total, err
}

func (r *ProductDBRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductDBRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.Product{}).Error
}

func (r *ProductDBRepo) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("slug = ? AND product_id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductDBRepo) AddProductImage(ctx context.Context, image *model.ProductImage) error {
	if !image.IsPrimary {
		return r.db.WithContext(ctx).Create(image).Error
	}
	// 主圖唯一，同交易內先清掉舊主圖
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		if err := tx.Model(&model.ProductImage{}).
			Where("product_id = ? AND is_primary = true", image.ProductID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Create(image).Error
	})
}

func (r *ProductDBRepo) DeleteProductImage(ctx context.Context, productID, imageID uint) error {
	return r.db.WithContext(ctx).
		Where("image_id = ? AND product_id = ?", imageID, productID).
		Delete(&model.ProductImage{}).Error
}

// SetPrimaryImage 維持單商品單一主圖invariant
func (r *ProductDBRepo) SetPrimaryImage(ctx context.Context, productID, imageID uint) error {
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		if err := tx.Model(&model.ProductImage{}).
			Where("product_id = ? AND image_id <> ? AND is_primary = true", productID, imageID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.ProductImage{}).
			Where("image_id = ? AND product_id = ?", imageID, productID).
			Update("is_primary", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}
