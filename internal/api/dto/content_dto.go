package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PageDTO struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description"`
	Published       bool   `json:"published"`
}

type BlogPostDTO struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
	Published bool   `json:"published"`
}

type FAQDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    uint   `json:"order"`
	Active   bool   `json:"active"`
}

type CouponDTO struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	ValidFrom     time.Time       `json:"valid_from"`
	ValidTo       time.Time       `json:"valid_to"`
	Active        bool            `json:"active"`
	UsageLimit    *uint           `json:"usage_limit"`
}
