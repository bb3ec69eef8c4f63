package model

import "time"

type Page struct {
	PageID          uint   `gorm:"primaryKey" json:"page_id"`
	Title           string `gorm:"not null;type:varchar(200)" json:"title"`
	Slug            string `gorm:"not null;type:varchar(200);unique" json:"slug"`
	Content         string `gorm:"not null;type:text" json:"content"`
	MetaDescription string `gorm:"type:varchar(160)" json:"meta_description"`
	Published       bool   `gorm:"not null;default:true" json:"published"`
	BaseModel
}

type BlogPost struct {
	PostID        uint       `gorm:"primaryKey" json:"post_id"`
	AuthorID      uint       `gorm:"not null" json:"author_id"`
	Author        *User      `gorm:"foreignKey:AuthorID" json:"-"`
	Title         string     `gorm:"not null;type:varchar(200)" json:"title"`
	Slug          string     `gorm:"not null;type:varchar(200);unique" json:"slug"`
	Content       string     `gorm:"not null;type:text" json:"content"`
	FeaturedImage string     `gorm:"type:varchar(255)" json:"featured_image"`
	Tags          string     `gorm:"type:varchar(200)" json:"tags"` // 逗號分隔
	Published     bool       `gorm:"not null;default:false" json:"published"`
	PublishedAt   *time.Time `gorm:"null" json:"published_at"`
	BaseModel
}

type FAQ struct {
	FAQID    uint   `gorm:"primaryKey" json:"faq_id"`
	Question string `gorm:"not null;type:varchar(255)" json:"question"`
	Answer   string `gorm:"not null;type:text" json:"answer"`
	Order    uint   `gorm:"not null;default:0" json:"order"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	BaseModel
}
