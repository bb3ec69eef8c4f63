package redis_decorator

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
商品讀多寫少，以cache-aside包住db repo
讀取先走redis，miss才回db並回填；寫入後失效對應key
cache故障時直接走db，不影響主流程
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	cache redis_repo.IProductCacheRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, cache redis_repo.IProductCacheRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, cache: cache}
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	product, err := p.cache.GetProduct(ctx, id)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, redis_repo.ErrCacheMiss) {
		log.Warn().Err(err).Uint("product_id", id).Msg("product cache read failed, fallback to db")
	}

	product, err = p.IProductRepository.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := p.cache.SetProduct(ctx, product); cacheErr != nil {
		log.Warn().Err(cacheErr).Uint("product_id", id).Msg("failed to backfill product cache")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	product, err := p.cache.GetProductBySlug(ctx, slug)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, redis_repo.ErrCacheMiss) {
		log.Warn().Err(err).Str("slug", slug).Msg("product cache read failed, fallback to db")
	}

	product, err = p.IProductRepository.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if cacheErr := p.cache.SetProduct(ctx, product); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("slug", slug).Msg("failed to backfill product cache")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	err := p.IProductRepository.UpdateProduct(ctx, product)
	if err != nil {
		return err
	}
	if cacheErr := p.cache.DeleteProduct(ctx, product.ProductID, product.Slug); cacheErr != nil {
		log.Warn().Err(cacheErr).Uint("product_id", product.ProductID).Msg("failed to invalidate product cache")
	}
	return nil
}

// 商品圖片內嵌在快取的商品資料裡，異動圖片也要讓快取失效
func (p *CacheAsideProductRepo) AddProductImage(ctx context.Context, image *model.ProductImage) error {
	if err := p.IProductRepository.AddProductImage(ctx, image); err != nil {
		return err
	}
	p.invalidate(ctx, image.ProductID)
	return nil
}

func (p *CacheAsideProductRepo) DeleteProductImage(ctx context.Context, productID, imageID uint) error {
	if err := p.IProductRepository.DeleteProductImage(ctx, productID, imageID); err != nil {
		return err
	}
	p.invalidate(ctx, productID)
	return nil
}

func (p *CacheAsideProductRepo) SetPrimaryImage(ctx context.Context, productID, imageID uint) error {
	if err := p.IProductRepository.SetPrimaryImage(ctx, productID, imageID); err != nil {
		return err
	}
	p.invalidate(ctx, productID)
	return nil
}

func (p *CacheAsideProductRepo) invalidate(ctx context.Context, productID uint) {
	slug := ""
	if product, err := p.IProductRepository.GetProductByID(ctx, productID); err == nil {
		slug = product.Slug
	}
	if err := p.cache.DeleteProduct(ctx, productID, slug); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("failed to invalidate product cache")
	}
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	product, err := p.IProductRepository.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if err := p.IProductRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if cacheErr := p.cache.DeleteProduct(ctx, id, product.Slug); cacheErr != nil {
		log.Warn().Err(cacheErr).Uint("product_id", id).Msg("failed to invalidate product cache")
	}
	return nil
}
