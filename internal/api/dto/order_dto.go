package dto

// OrderCreateDTO 建立訂單的請求內容
type OrderCreateDTO struct {
	ShippingAddressID uint   `json:"shipping_address_id"`
	BillingAddressID  *uint  `json:"billing_address_id"`
	ShippingMethod    string `json:"shipping_method"`
	PaymentMethod     string `json:"payment_method"`
	CouponCode        string `json:"coupon_code"`
}

// BulkStatusDTO staff批次轉移訂單狀態
type BulkStatusDTO struct {
	OrderIDs []uint `json:"order_ids"`
	Status   string `json:"status"`
	Note     string `json:"note"`
}

type SetTrackingDTO struct {
	TrackingNumber string `json:"tracking_number"`
}

// CheckoutDTO 直接結帳請求
type CheckoutDTO struct {
	PaymentMethodID   string `json:"payment_method_id"`
	ShippingAddressID uint   `json:"shipping_address_id"`
	BillingAddressID  *uint  `json:"billing_address_id"`
	CouponCode        string `json:"coupon_code"`
}

type CreateIntentDTO struct {
	OrderID uint `json:"order_id"`
}
