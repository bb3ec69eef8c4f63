package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint) error
	GetWishlist(ctx context.Context, userID uint) ([]model.Product, error)
	AddToWishlist(ctx context.Context, userID, productID uint) error
	RemoveFromWishlist(ctx context.Context, userID, productID uint) error
	IsInWishlist(ctx context.Context, userID, productID uint) (bool, error)
}

type UserRepo struct {
	db *DbDao
}

func NewUserRepo(db *DbDao) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// 軟刪除
func (r *UserRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepo) GetWishlist(ctx context.Context, userID uint) ([]model.Product, error) {
	user := model.User{UserID: userID}
	var products []model.Product
	err := r.db.WithContext(ctx).Model(&user).Association("Wishlist").Find(&products)
	return products, err
}

func (r *UserRepo) AddToWishlist(ctx context.Context, userID, productID uint) error {
	user := model.User{UserID: userID}
	return r.db.WithContext(ctx).Model(&user).
		Association("Wishlist").Append(&model.Product{ProductID: productID})
}

func (r *UserRepo) RemoveFromWishlist(ctx context.Context, userID, productID uint) error {
	user := model.User{UserID: userID}
	return r.db.WithContext(ctx).Model(&user).
		Association("Wishlist").Delete(&model.Product{ProductID: productID})
}

func (r *UserRepo) IsInWishlist(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("user_wishlist").
		Where("user_user_id = ? AND product_product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
