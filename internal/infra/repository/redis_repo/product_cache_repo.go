package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type CacheRepoError error

var ErrCacheMiss CacheRepoError = errors.New("cache miss")

// 商品快取TTL，read-through用途不做主動淘汰
const productCacheTTL = 10 * time.Minute

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

type IProductCacheRepository interface {
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	SetProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint, slug string) error
}

type ProductCacheRepo struct {
	cache *redis.Client
}

func NewProductCacheRepo(cache *redis.Client) *ProductCacheRepo {
	return &ProductCacheRepo{cache: cache}
}

func generateProductKey(productID uint) string {
	return fmt.Sprintf("product:%d", productID)
}

func generateProductSlugKey(slug string) string {
	return fmt.Sprintf("product:slug:%s", slug)
}

func (r *ProductCacheRepo) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	return r.get(ctx, generateProductKey(productID))
}

func (r *ProductCacheRepo) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return r.get(ctx, generateProductSlugKey(slug))
}

func (r *ProductCacheRepo) get(ctx context.Context, key string) (*model.Product, error) {
	data, err := r.cache.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product cache: %w", err)
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("invalid product cache payload: %w", err)
	}
	return &product, nil
}

// 同商品以id與slug兩把key存放
func (r *ProductCacheRepo) SetProduct(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	pipe := r.cache.Pipeline()
	pipe.Set(ctx, generateProductKey(product.ProductID), data, productCacheTTL)
	pipe.Set(ctx, generateProductSlugKey(product.Slug), data, productCacheTTL)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set product cache: %w", err)
	}
	return nil
}

func (r *ProductCacheRepo) DeleteProduct(ctx context.Context, productID uint, slug string) error {
	pipe := r.cache.Pipeline()
	pipe.Del(ctx, generateProductKey(productID))
	if slug != "" {
		pipe.Del(ctx, generateProductSlugKey(slug))
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete product cache: %w", err)
	}
	return nil
}
