package model

import (
	"github.com/shopspring/decimal"
)

type SeasonType string

const (
	SeasonSpringSummer SeasonType = "SS"
	SeasonFallWinter   SeasonType = "FW"
)

type SizeCategory string

const (
	SizeCategoryClothing    SizeCategory = "clothing"
	SizeCategoryShoes       SizeCategory = "shoes"
	SizeCategoryAccessories SizeCategory = "accessories"
)

type ProductCondition string

const (
	ConditionNew       ProductCondition = "new"
	ConditionExcellent ProductCondition = "excellent"
	ConditionGood      ProductCondition = "good"
	ConditionFair      ProductCondition = "fair"
)

type Brand struct {
	BrandID     uint      `gorm:"primaryKey" json:"brand_id"`
	Name        string    `gorm:"not null;type:varchar(100);unique" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Logo        string    `gorm:"type:varchar(255)" json:"logo"` // media root 下的相對路徑
	Slug        string    `gorm:"not null;type:varchar(100);unique" json:"slug"`
	Products    []Product `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"-"`
	BaseModel
}

// Category 支援巢狀分類
type Category struct {
	CategoryID uint       `gorm:"primaryKey" json:"category_id"`
	Name       string     `gorm:"not null;type:varchar(100)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Slug       string     `gorm:"not null;type:varchar(100);unique" json:"slug"`
	ParentID   *uint      `gorm:"null" json:"parent_id"`
	Children   []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	BaseModel
}

type Season struct {
	SeasonID   uint       `gorm:"primaryKey" json:"season_id"`
	Name       string     `gorm:"not null;type:varchar(50);unique" json:"name"`
	SeasonType SeasonType `gorm:"not null;type:varchar(2)" json:"season_type"`
	Year       int        `gorm:"not null" json:"year"`
	BaseModel
}

type Size struct {
	SizeID   uint         `gorm:"primaryKey" json:"size_id"`
	Category SizeCategory `gorm:"not null;type:varchar(20);uniqueIndex:idx_size_category_value" json:"category"`
	Value    string       `gorm:"not null;type:varchar(10);uniqueIndex:idx_size_category_value" json:"value"`
	BaseModel
}

type Product struct {
	ProductID   uint             `gorm:"primaryKey" json:"product_id"`
	Name        string           `gorm:"not null;type:varchar(255)" json:"name"`
	Description string           `gorm:"not null;type:text" json:"description"`
	BrandID     uint             `gorm:"not null;index:idx_product_brand_category" json:"brand_id"`
	Brand       *Brand           `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CategoryID  uint             `gorm:"not null;index:idx_product_brand_category" json:"category_id"`
	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SeasonID    *uint            `gorm:"null" json:"season_id"`
	SizeID      *uint            `gorm:"null" json:"size_id"`
	Condition   ProductCondition `gorm:"not null;type:varchar(20);default:good" json:"condition"`
	Color       string           `gorm:"type:varchar(50)" json:"color"`
	Material    string           `gorm:"type:varchar(100)" json:"material"`
	Price       decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"price"`
	IsFeatured  bool             `gorm:"not null;default:false" json:"is_featured"`
	IsAvailable bool             `gorm:"not null;default:true;index" json:"is_available"`
	Slug        string           `gorm:"not null;type:varchar(255);unique" json:"slug"`
	Images      []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	BaseModel
}

type ProductImage struct {
	ImageID   uint   `gorm:"primaryKey" json:"image_id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Image     string `gorm:"not null;type:varchar(255)" json:"image"`
	Order     uint   `gorm:"not null;default:0" json:"order"`
	IsPrimary bool   `gorm:"not null;default:false" json:"is_primary"`
	BaseModel
}
