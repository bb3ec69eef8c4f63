package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
)

type ICartService interface {
	// GetCart 取得使用者購物車，不存在時自動建立
	GetCart(ctx context.Context, userID uint) (*model.Cart, error)
	// AddItem 加入商品，已存在時數量累加
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error)
	// UpdateItemQuantity 直接設定數量
	UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) ICartService {
	if cartRepo == nil {
		panic("cartRepo cannot be nil")
	}
	if productRepo == nil {
		panic("productRepo cannot be nil")
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		return nil, err
	}
	return s.cartRepo.GetOrCreateCart(ctx, userID)
}

func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, er.New(er.BadRequestCode, "quantity must be at least 1")
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, err
	}
	if !product.IsAvailable {
		return nil, er.New(er.BadRequestCode, "product is not available")
	}

	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.cartRepo.AddItem(ctx, cart.CartID, productID, quantity)
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, er.New(er.BadRequestCode, "quantity must be at least 1")
	}

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.cartRepo.RemoveItem(ctx, itemID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return er.New(er.NotFoundCode, "cart not found")
		}
		return err
	}
	return s.cartRepo.ClearCart(ctx, cart.CartID)
}

// ownedItem 確認item屬於該使用者的購物車
func (s *CartService) ownedItem(ctx context.Context, userID, itemID uint) (*model.CartItem, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "cart not found")
		}
		return nil, err
	}

	item, err := s.cartRepo.GetCartItem(ctx, cart.CartID, itemID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "cart item not found")
		}
		return nil, err
	}
	return item, nil
}
