package dto

import "github.com/shopspring/decimal"

type BrandDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

type SeasonDTO struct {
	Name       string `json:"name"`
	SeasonType string `json:"season_type"`
	Year       int    `json:"year"`
}

type SizeDTO struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

type ProductDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BrandID     uint            `json:"brand_id"`
	CategoryID  uint            `json:"category_id"`
	SeasonID    *uint           `json:"season_id"`
	SizeID      *uint           `json:"size_id"`
	Condition   string          `json:"condition"`
	Color       string          `json:"color"`
	Material    string          `json:"material"`
	Price       decimal.Decimal `json:"price"`
	IsFeatured  bool            `json:"is_featured"`
	IsAvailable bool            `json:"is_available"`
}
