package model

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
)

// IsStaff manager與admin視為後台人員
func (r UserRole) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

type User struct {
	UserID         uint      `gorm:"primaryKey" json:"user_id"`
	UserName       string    `gorm:"not null;type:varchar(50)" json:"user_name"`
	Email          string    `gorm:"not null;type:varchar(100);unique" json:"email"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone"`
	HashedPassword string    `gorm:"not null;type:varchar(255)" json:"-"`
	Avatar         string    `gorm:"type:varchar(255)" json:"avatar"`
	Newsletter     bool      `gorm:"not null;default:false" json:"newsletter_subscription"`
	Role           UserRole  `gorm:"not null;type:varchar(20);default:customer" json:"role"`
	Addresses      []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Wishlist       []Product `gorm:"many2many:user_wishlist" json:"-"`
	BaseModel
}

type Address struct {
	AddressID    uint   `gorm:"primaryKey" json:"address_id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	FullName     string `gorm:"not null;type:varchar(100)" json:"full_name"`
	Phone        string `gorm:"not null;type:varchar(20)" json:"phone"`
	Country      string `gorm:"not null;type:varchar(50)" json:"country"`
	City         string `gorm:"not null;type:varchar(50)" json:"city"`
	PostalCode   string `gorm:"not null;type:varchar(20)" json:"postal_code"`
	AddressLine1 string `gorm:"not null;type:varchar(255)" json:"address_line1"`
	AddressLine2 string `gorm:"type:varchar(255)" json:"address_line2"`
	IsDefault    bool   `gorm:"not null;default:false" json:"is_default"`
	BaseModel
}
