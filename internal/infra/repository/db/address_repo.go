package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type IAddressRepository interface {
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	GetAddressByID(ctx context.Context, id uint) (*model.Address, error)
	GetUserAddress(ctx context.Context, userID, addressID uint) (*model.Address, error)
	ListAddressesByUserID(ctx context.Context, userID uint) ([]model.Address, error)
	UpdateAddress(ctx context.Context, address *model.Address) error
	DeleteAddress(ctx context.Context, id uint) error
	SetDefaultAddress(ctx context.Context, userID, addressID uint) error
}

type AddressRepo struct {
	db *DbDao
}

func NewAddressRepo(db *DbDao) *AddressRepo {
	return &AddressRepo{db: db}
}

// 若建立時標記預設，需先清掉同用戶其他預設
func (r *AddressRepo) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	err := r.db.ExecTx(ctx, func(tx *DbDao) error {
		if address.IsDefault {
			if err := tx.Model(&model.Address{}).
				Where("user_id = ? AND is_default = true", address.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (r *AddressRepo) GetAddressByID(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).First(&address, "address_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// 限定本人的地址
func (r *AddressRepo) GetUserAddress(ctx context.Context, userID, addressID uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		First(&address, "address_id = ? AND user_id = ?", addressID, userID).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepo) ListAddressesByUserID(ctx context.Context, userID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepo) UpdateAddress(ctx context.Context, address *model.Address) error {
	if !address.IsDefault {
		return r.db.WithContext(ctx).Save(address).Error
	}
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		if err := tx.Model(&model.Address{}).
			Where("user_id = ? AND address_id <> ? AND is_default = true", address.UserID, address.AddressID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Save(address).Error
	})
}

func (r *AddressRepo) DeleteAddress(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("address_id = ?", id).Delete(&model.Address{}).Error
}

// SetDefaultAddress 維持單一預設地址invariant
// 同一交易內先清除其他預設，再設定目標地址
func (r *AddressRepo) SetDefaultAddress(ctx context.Context, userID, addressID uint) error {
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		if err := tx.Model(&model.Address{}).
			Where("user_id = ? AND address_id <> ? AND is_default = true", userID, addressID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Address{}).
			Where("address_id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}
