package api

import "github.com/RoyceAzure/lab/shopcenter/internal/api/handler"

type Server struct {
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	AddressHandler  *handler.AddressHandler
	CatalogHandler  *handler.CatalogHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CouponHandler   *handler.CouponHandler
	OrderHandler    *handler.OrderHandler
	CheckoutHandler *handler.CheckoutHandler
	PaymentHandler  *handler.PaymentHandler
	ContentHandler  *handler.ContentHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	addressHandler *handler.AddressHandler,
	catalogHandler *handler.CatalogHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	couponHandler *handler.CouponHandler,
	orderHandler *handler.OrderHandler,
	checkoutHandler *handler.CheckoutHandler,
	paymentHandler *handler.PaymentHandler,
	contentHandler *handler.ContentHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		AddressHandler:  addressHandler,
		CatalogHandler:  catalogHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		CouponHandler:   couponHandler,
		OrderHandler:    orderHandler,
		CheckoutHandler: checkoutHandler,
		PaymentHandler:  paymentHandler,
		ContentHandler:  contentHandler,
	}
}
