package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

// LoginResult 登入成功的回傳內容
type LoginResult struct {
	AccessToken string
	Payload     *token.Payload
	User        *model.User
}

type IAuthService interface {
	// Login 以信箱密碼登入，成功回傳access token
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type AuthService struct {
	userRepo   db.IUserRepository
	tokenMaker token.Maker
}

func NewAuthService(userRepo db.IUserRepository, tokenMaker token.Maker) IAuthService {
	if userRepo == nil {
		panic("userRepo cannot be nil")
	}
	if tokenMaker == nil {
		panic("tokenMaker cannot be nil")
	}
	return &AuthService{
		userRepo:   userRepo,
		tokenMaker: tokenMaker,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, er.New(er.BadRequestCode, "email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// 不洩漏帳號是否存在
			return nil, er.New(er.UnauthenticatedCode, "invalid email or password")
		}
		return nil, err
	}

	if err := util.CheckPassword(password, user.HashedPassword); err != nil {
		return nil, er.New(er.UnauthenticatedCode, "invalid email or password")
	}

	duration := time.Duration(constants.AccessTokenDuration) * time.Hour
	accessToken, payload, err := s.tokenMaker.CreateToken(user.UserID, user.Email, string(user.Role), duration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		Payload:     payload,
		User:        user,
	}, nil
}
