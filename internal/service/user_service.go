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
	"github.com/rs/zerolog"
)

// RegisterParams 註冊參數
type RegisterParams struct {
	UserName   string
	Email      string
	Password   string
	Phone      string
	Newsletter bool
}

// UpdateProfileParams 可更新的個人資料欄位
type UpdateProfileParams struct {
	UserName   *string
	Phone      *string
	Newsletter *bool
}

type IUserService interface {
	// Register 建立帳號並發送歡迎信任務
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*model.User, error)
	UploadAvatar(ctx context.Context, userID uint, fileName string, file io.Reader) (*model.User, error)

	GetWishlist(ctx context.Context, userID uint) ([]model.Product, error)
	AddToWishlist(ctx context.Context, userID, productID uint) error
	RemoveFromWishlist(ctx context.Context, userID, productID uint) error
}

type UserService struct {
	userRepo            db.IUserRepository
	productRepo         db.IProductRepository
	mediaStore          storage.IMediaStore
	notificationService INotificationService
	logger              *zerolog.Logger
}

func NewUserService(
	userRepo db.IUserRepository,
	productRepo db.IProductRepository,
	mediaStore storage.IMediaStore,
	notificationService INotificationService,
	logger *zerolog.Logger,
) IUserService {
	if userRepo == nil || productRepo == nil {
		panic("user service dependencies cannot be nil")
	}
	return &UserService{
		userRepo:            userRepo,
		productRepo:         productRepo,
		mediaStore:          mediaStore,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (s *UserService) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	if params.Email == "" || params.Password == "" {
		return nil, er.New(er.BadRequestCode, "email and password are required")
	}
	if len(params.Password) < 8 {
		return nil, er.New(er.BadRequestCode, "password must be at least 8 characters")
	}

	hashedPassword, err := util.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:       params.UserName,
		Email:          params.Email,
		Phone:          params.Phone,
		HashedPassword: hashedPassword,
		Newsletter:     params.Newsletter,
		Role:           model.RoleCustomer,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEntry) {
			return nil, er.New(er.ConflictCode, "email already registered")
		}
		return nil, err
	}

	if s.notificationService != nil {
		if err := s.notificationService.EnqueueRegistrationEmail(ctx, created.UserID, created.Email); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Uint("user_id", created.UserID).Msg("failed to enqueue registration email")
		}
	}

	return created, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.UserName != nil {
		user.UserName = *params.UserName
	}
	if params.Phone != nil {
		user.Phone = *params.Phone
	}
	if params.Newsletter != nil {
		user.Newsletter = *params.Newsletter
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UploadAvatar(ctx context.Context, userID uint, fileName string, file io.Reader) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.mediaStore == nil {
		return nil, er.New(er.InternalErrorCode, "media store is not configured")
	}

	relPath, err := s.mediaStore.Save(storage.DirAvatars, fileName, file)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileName) {
			return nil, er.New(er.BadRequestCode, "invalid file name")
		}
		return nil, fmt.Errorf("save avatar: %w", err)
	}

	user.Avatar = relPath
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetWishlist(ctx context.Context, userID uint) ([]model.Product, error) {
	return s.userRepo.GetWishlist(ctx, userID)
}

func (s *UserService) AddToWishlist(ctx context.Context, userID, productID uint) error {
	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return er.New(er.NotFoundCode, "product not found")
		}
		return err
	}

	exists, err := s.userRepo.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.userRepo.AddToWishlist(ctx, userID, productID)
}

func (s *UserService) RemoveFromWishlist(ctx context.Context, userID, productID uint) error {
	return s.userRepo.RemoveFromWishlist(ctx, userID, productID)
}
