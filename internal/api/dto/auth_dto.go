package dto

// TokenInfo 表示令牌資訊
type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

type RegisterDTO struct {
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	Password   string `json:"password"` //密碼明文
	Phone      string `json:"phone"`
	Newsletter bool   `json:"newsletter_subscription"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken TokenInfo `json:"access_token"`
	User        UserDTO   `json:"user"`
}
