package dto

import (
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/shopspring/decimal"
)

type AddCartItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemDTO struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

type RemoveCartItemDTO struct {
	ItemID uint `json:"item_id"`
}

// CartResponse 帶衍生總計的購物車
type CartResponse struct {
	Cart       *model.Cart     `json:"cart"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalItems int             `json:"total_items"`
}

func ConvertCartToResponse(cart *model.Cart) CartResponse {
	return CartResponse{
		Cart:       cart,
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.TotalItems(),
	}
}

type CouponValidateDTO struct {
	Code string `json:"code"`
}
