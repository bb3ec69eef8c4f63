package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/storage"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type IProductService interface {
	GetProducts(ctx context.Context, filter db.ProductFilter, page, pageSize int) ([]model.Product, int64, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	UploadProductImage(ctx context.Context, productID uint, fileName string, file io.Reader, isPrimary bool) (*model.ProductImage, error)
	DeleteProductImage(ctx context.Context, productID, imageID uint) error
	SetPrimaryImage(ctx context.Context, productID, imageID uint) error
}

type ProductService struct {
	productRepo db.IProductRepository
	catalogRepo db.ICatalogRepository
	mediaStore  storage.IMediaStore
}

func NewProductService(productRepo db.IProductRepository, catalogRepo db.ICatalogRepository, mediaStore storage.IMediaStore) IProductService {
	if productRepo == nil {
		panic("productRepo cannot be nil")
	}
	if catalogRepo == nil {
		panic("catalogRepo cannot be nil")
	}
	return &ProductService{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		mediaStore:  mediaStore,
	}
}

func (s *ProductService) GetProducts(ctx context.Context, filter db.ProductFilter, page, pageSize int) ([]model.Product, int64, error) {
	return s.productRepo.GetProductsPaginated(ctx, filter, page, pageSize)
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	product, err := s.productRepo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if product.Name == "" {
		return er.New(er.BadRequestCode, "product name is required")
	}

	base, err := s.slugBase(ctx, product)
	if err != nil {
		return err
	}
	slug, err := uniqueSlug(ctx, base, 0, s.productRepo.SlugExists)
	if err != nil {
		return err
	}
	product.Slug = slug

	return s.productRepo.CreateProduct(ctx, product)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product) error {
	existing, err := s.GetProductByID(ctx, product.ProductID)
	if err != nil {
		return err
	}

	// 名稱或品牌變更時重新產生slug
	if product.Name != existing.Name || product.BrandID != existing.BrandID {
		base, err := s.slugBase(ctx, product)
		if err != nil {
			return err
		}
		slug, err := uniqueSlug(ctx, base, product.ProductID, s.productRepo.SlugExists)
		if err != nil {
			return err
		}
		product.Slug = slug
	} else {
		product.Slug = existing.Slug
	}

	return s.productRepo.UpdateProduct(ctx, product)
}

// slugBase 商品slug以 "<品牌> <商品名>" 為底
func (s *ProductService) slugBase(ctx context.Context, product *model.Product) (string, error) {
	brand, err := s.catalogRepo.GetBrandByID(ctx, product.BrandID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return "", er.New(er.BadRequestCode, "brand not found")
		}
		return "", err
	}
	return util.Slugify(brand.Name + " " + product.Name), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.GetProductByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.DeleteProduct(ctx, id)
}

func (s *ProductService) UploadProductImage(ctx context.Context, productID uint, fileName string, file io.Reader, isPrimary bool) (*model.ProductImage, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	relPath, err := s.mediaStore.Save(storage.DirProducts, fileName, file)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileName) {
			return nil, er.New(er.BadRequestCode, "invalid file name")
		}
		return nil, fmt.Errorf("save product image: %w", err)
	}

	// 第一張圖自動設為主圖
	if len(product.Images) == 0 {
		isPrimary = true
	}

	image := &model.ProductImage{
		ProductID: productID,
		Image:     relPath,
		IsPrimary: isPrimary,
		Order:     uint(len(product.Images)),
	}
	if err := s.productRepo.AddProductImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ProductService) DeleteProductImage(ctx context.Context, productID, imageID uint) error {
	return s.productRepo.DeleteProductImage(ctx, productID, imageID)
}

func (s *ProductService) SetPrimaryImage(ctx context.Context, productID, imageID uint) error {
	err := s.productRepo.SetPrimaryImage(ctx, productID, imageID)
	if errors.Is(err, db.ErrRecordNotFound) {
		return er.New(er.NotFoundCode, "image not found")
	}
	return err
}
