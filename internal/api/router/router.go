package router

import (
	"net/http"
	"path/filepath"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker, mediaRoot string, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	// 上傳的圖片等媒體檔案
	if mediaRoot != "" {
		fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(filepath.Clean(mediaRoot))))
		r.Get("/media/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Auth相關路由
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/login", server.AuthHandler.Login)
		})

		// 使用者
		r.Route("/users", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/me", server.UserHandler.Me)
			r.Put("/me", server.UserHandler.UpdateProfile)
			r.Post("/me/avatar", server.UserHandler.UploadAvatar)
			r.Get("/me/wishlist", server.UserHandler.Wishlist)
			r.Post("/me/wishlist", server.UserHandler.AddToWishlist)
			r.Delete("/me/wishlist/{productID}", server.UserHandler.RemoveFromWishlist)
		})

		// 收件地址
		r.Route("/addresses", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.AddressHandler.List)
			r.Post("/", server.AddressHandler.Create)
			r.Get("/{id}", server.AddressHandler.Get)
			r.Put("/{id}", server.AddressHandler.Update)
			r.Delete("/{id}", server.AddressHandler.Delete)
			r.Put("/{id}/default", server.AddressHandler.SetDefault)
		})

		// 目錄：公開讀取，staff維護
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListBrands)
			r.Get("/{slug}", server.CatalogHandler.GetBrand)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.CatalogHandler.CreateBrand)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Put("/{id}", server.CatalogHandler.UpdateBrand)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.CatalogHandler.DeleteBrand)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListCategories)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.CatalogHandler.CreateCategory)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Put("/{id}", server.CatalogHandler.UpdateCategory)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.CatalogHandler.DeleteCategory)
		})
		r.Route("/seasons", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListSeasons)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.CatalogHandler.CreateSeason)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.CatalogHandler.DeleteSeason)
		})
		r.Route("/sizes", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListSizes)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.CatalogHandler.CreateSize)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.CatalogHandler.DeleteSize)
		})

		// 商品
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{slug}", server.ProductHandler.GetProduct)
			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware, m.StaffMiddleware)
				r.Post("/", server.ProductHandler.CreateProduct)
				r.Put("/{id}", server.ProductHandler.UpdateProduct)
				r.Delete("/{id}", server.ProductHandler.DeleteProduct)
				r.Post("/{id}/images", server.ProductHandler.UploadImage)
				r.Delete("/{id}/images/{imageID}", server.ProductHandler.DeleteImage)
				r.Put("/{id}/images/{imageID}/primary", server.ProductHandler.SetPrimaryImage)
			})
		})

		// 購物車
		r.Route("/cart", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.CartHandler.GetCart)
			r.Delete("/", server.CartHandler.ClearCart)
			r.Post("/items", server.CartHandler.AddItem)
			r.Put("/items/{itemID}", server.CartHandler.UpdateItem)
			r.Delete("/items/{itemID}", server.CartHandler.RemoveItem)
		})

		// 折扣碼
		r.Route("/coupons", func(r chi.Router) {
			r.With(m.AuthMiddleware).Post("/validate", server.CouponHandler.Validate)
			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware, m.StaffMiddleware)
				r.Get("/", server.CouponHandler.List)
				r.Post("/", server.CouponHandler.Create)
				r.Put("/{id}", server.CouponHandler.Update)
				r.Delete("/{id}", server.CouponHandler.Delete)
			})
		})

		// 訂單
		r.Route("/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.OrderHandler.List)
			r.Post("/", server.OrderHandler.Create)
			r.Get("/{id}", server.OrderHandler.Get)
			r.Post("/{id}/cancel", server.OrderHandler.Cancel)
		})

		// 結帳
		r.Route("/checkout", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/quote", server.CheckoutHandler.Quote)
			r.Post("/", server.CheckoutHandler.Checkout)
		})

		// 付款，webhook不需驗證登入
		r.Route("/payments", func(r chi.Router) {
			r.Post("/webhook", server.PaymentHandler.StripeWebhook)
			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware)
				r.Get("/", server.PaymentHandler.List)
				r.Post("/create_intent", server.PaymentHandler.CreateIntent)
			})
		})

		// 內容
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", server.ContentHandler.ListPages)
			r.Get("/{slug}", server.ContentHandler.GetPage)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.ContentHandler.CreatePage)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Put("/{id}", server.ContentHandler.UpdatePage)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.ContentHandler.DeletePage)
		})
		r.Route("/blog", func(r chi.Router) {
			r.Get("/", server.ContentHandler.ListBlogPosts)
			r.Get("/{slug}", server.ContentHandler.GetBlogPost)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.ContentHandler.CreateBlogPost)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Put("/{id}", server.ContentHandler.UpdateBlogPost)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.ContentHandler.DeleteBlogPost)
		})
		r.Route("/faqs", func(r chi.Router) {
			r.Get("/", server.ContentHandler.ListFAQs)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Post("/", server.ContentHandler.CreateFAQ)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Put("/{id}", server.ContentHandler.UpdateFAQ)
			r.With(m.AuthMiddleware, m.StaffMiddleware).Delete("/{id}", server.ContentHandler.DeleteFAQ)
		})

		// staff後台
		r.Route("/admin/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware, m.StaffMiddleware)
			r.Get("/", server.OrderHandler.AdminList)
			r.Post("/bulk_status", server.OrderHandler.BulkStatus)
			r.Put("/{id}/tracking", server.OrderHandler.SetTracking)
		})
	})

	return r
}
