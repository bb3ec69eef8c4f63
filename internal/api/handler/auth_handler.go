package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
	userService service.IUserService
}

func NewAuthHandler(authService service.IAuthService, userService service.IUserService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register POST /auth/register
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if !decodeJSON(w, r, &registerDTO) {
		return
	}

	user, err := a.userService.Register(r.Context(), service.RegisterParams{
		UserName:   registerDTO.UserName,
		Email:      registerDTO.Email,
		Password:   registerDTO.Password,
		Phone:      registerDTO.Phone,
		Newsletter: registerDTO.Newsletter,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	api.CreatedJSON(w, dto.ConvertUserModelToDTO(user))
}

// Login POST /auth/login
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if !decodeJSON(w, r, &loginDTO) {
		return
	}

	loginRes, err := a.authService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: dto.ConvertUserModelToDTO(loginRes.User),
	}, nil)
}
