package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken 表示 token 無效
	ErrInvalidToken = errors.New("token is invalid")
	// ErrExpiredToken 表示 token 已過期
	ErrExpiredToken = errors.New("token has expired")
)

// Payload 代表 token 內的授權資料
type Payload struct {
	ID        uuid.UUID `json:"id"`
	UserID    uint      `json:"user_id"`
	UPN       string    `json:"upn"` // 使用者信箱
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

// NewPayload 建立新的 token payload
func NewPayload(userID uint, upn string, role string, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID,
		UserID:    userID,
		UPN:       upn,
		Role:      role,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}, nil
}

// Valid 檢查 payload 是否仍在有效期限內
func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}

// Maker token 產生與驗證介面
type Maker interface {
	// CreateToken 為指定使用者建立 token
	CreateToken(userID uint, upn string, role string, duration time.Duration) (string, *Payload, error)
	// VerifyToken 驗證 token 並回傳 payload
	VerifyToken(token string) (*Payload, error)
}
