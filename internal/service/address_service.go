package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
)

type IAddressService interface {
	ListAddresses(ctx context.Context, userID uint) ([]model.Address, error)
	GetAddress(ctx context.Context, userID, addressID uint) (*model.Address, error)
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, userID uint, address *model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uint) error
	// SetDefault 單一預設地址，同交易內先取消其他地址的預設
	SetDefault(ctx context.Context, userID, addressID uint) error
}

type AddressService struct {
	addressRepo db.IAddressRepository
}

func NewAddressService(addressRepo db.IAddressRepository) IAddressService {
	if addressRepo == nil {
		panic("addressRepo cannot be nil")
	}
	return &AddressService{addressRepo: addressRepo}
}

func (s *AddressService) ListAddresses(ctx context.Context, userID uint) ([]model.Address, error) {
	return s.addressRepo.ListAddressesByUserID(ctx, userID)
}

func (s *AddressService) GetAddress(ctx context.Context, userID, addressID uint) (*model.Address, error) {
	address, err := s.addressRepo.GetUserAddress(ctx, userID, addressID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "address not found")
		}
		return nil, err
	}
	return address, nil
}

func (s *AddressService) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if address.FullName == "" || address.AddressLine1 == "" || address.City == "" || address.Country == "" {
		return nil, er.New(er.BadRequestCode, "full_name, address_line1, city and country are required")
	}
	return s.addressRepo.CreateAddress(ctx, address)
}

func (s *AddressService) UpdateAddress(ctx context.Context, userID uint, address *model.Address) (*model.Address, error) {
	if _, err := s.GetAddress(ctx, userID, address.AddressID); err != nil {
		return nil, err
	}
	address.UserID = userID
	if err := s.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, err
	}
	return s.GetAddress(ctx, userID, address.AddressID)
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID uint) error {
	if _, err := s.GetAddress(ctx, userID, addressID); err != nil {
		return err
	}
	return s.addressRepo.DeleteAddress(ctx, addressID)
}

func (s *AddressService) SetDefault(ctx context.Context, userID, addressID uint) error {
	err := s.addressRepo.SetDefaultAddress(ctx, userID, addressID)
	if errors.Is(err, db.ErrRecordNotFound) {
		return er.New(er.NotFoundCode, "address not found")
	}
	return err
}
