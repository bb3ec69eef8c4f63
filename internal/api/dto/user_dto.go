package dto

import "github.com/RoyceAzure/lab/shopcenter/internal/domain/model"

// UserDTO 表示用戶資訊
type UserDTO struct {
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
	Newsletter bool   `json:"newsletter_subscription"`
	Role       string `json:"role"`
}

func ConvertUserModelToDTO(user *model.User) UserDTO {
	return UserDTO{
		UserID:     user.UserID,
		UserName:   user.UserName,
		Email:      user.Email,
		Phone:      user.Phone,
		Avatar:     user.Avatar,
		Newsletter: user.Newsletter,
		Role:       string(user.Role),
	}
}

type UpdateProfileDTO struct {
	UserName   *string `json:"user_name"`
	Phone      *string `json:"phone"`
	Newsletter *bool   `json:"newsletter_subscription"`
}

type WishlistItemDTO struct {
	ProductID uint `json:"product_id"`
}

type AddressDTO struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	IsDefault    bool   `json:"is_default"`
}
