package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/config"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/handlers"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/handlers/admin"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/sessioncookie"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/auth"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/cart"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/checkout"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/discounts"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/orders"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/photos"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/users"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/wishlist"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/storage"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/templates"
)

// RouterDeps carries everything the route tree needs.
type RouterDeps struct {
	Cfg   config.Config
	API   *backend.Client
	Store storage.Storage
	Log   *slog.Logger
}

// NewRouter builds the full middleware chain and route tree.
func NewRouter(d RouterDeps) (*gin.Engine, error) {
	tpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}

	flashCodec := flash.NewCodec(d.Cfg.Cookies.Secret, "flash", d.Cfg.Cookies.Secure)
	cartCodec := sessioncookie.NewCartCount(d.Cfg.Cookies.Secret, "cart_count", d.Cfg.Cookies.Secure)

	productsSvc := products.NewService(d.API)
	photosSvc := photos.NewService(d.API)
	discountsSvc := discounts.NewService(d.API)
	ordersSvc := orders.NewService(d.API)
	cartSvc := cart.NewService(d.API)
	wishlistSvc := wishlist.NewService(d.API)
	checkoutSvc := checkout.NewService(d.API)
	usersSvc := users.NewService(d.API)
	authSvc := auth.NewService(d.API)

	home := handlers.NewHomeHandler(productsSvc)
	productList := handlers.NewProductsHandler(productsSvc)
	productDetail := handlers.NewProductDetailHandler(d.API, productsSvc, photosSvc, wishlistSvc)
	cartH := handlers.NewCartHandler(cartSvc, flashCodec, cartCodec, productDetail)
	wishlistH := handlers.NewWishlistHandler(wishlistSvc, flashCodec)
	checkoutH := handlers.NewCheckoutHandler(cartSvc, checkoutSvc, ordersSvc, flashCodec, cartCodec)
	accountOrders := handlers.NewAccountOrdersHandler(ordersSvc, flashCodec)
	authH := handlers.NewAuthHandler(authSvc, d.API, flashCodec, cartCodec, middleware.NewLoginRateLimiter(), d.Cfg.Cookies.Secure)

	dashboard := &admin.DashboardHandler{Products: productsSvc, Orders: ordersSvc, Users: usersSvc, Log: d.Log}
	adminUsers := admin.NewUsersHandler(usersSvc, flashCodec)
	adminProducts := admin.NewProductsHandler(productsSvc, flashCodec)
	adminCoupons := admin.NewCouponsHandler(discountsSvc, flashCodec)
	adminOrders := admin.NewOrdersHandler(ordersSvc, flashCodec)
	adminPhotos := admin.NewPhotosHandler(photosSvc, productsSvc, d.Store, flashCodec, d.Log)
	adminStock := admin.NewStockHandler(d.API, productsSvc, flashCodec)

	r := gin.New()
	r.SetHTMLTemplate(tpl)

	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.ErrorHandler(d.Log))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.Session(middleware.SessionCfg{API: d.API, Log: d.Log}))
	r.Use(middleware.CartCount(cartCodec))

	if d.Cfg.Storage.Driver == "local" {
		r.Static(d.Cfg.Storage.LocalURLPrefix, d.Cfg.Storage.LocalDir)
	}

	r.GET("/", home.Index)
	r.GET("/products", productList.List)
	r.GET("/search", productList.Search)
	r.GET("/products/:id", productDetail.Show)
	r.GET("/login", authH.LoginGet)
	r.POST("/login", authH.LoginPost)
	r.POST("/logout", authH.Logout)

	authed := r.Group("", middleware.RequireAuth(flashCodec))
	{
		authed.GET("/cart", cartH.Show)
		authed.POST("/cart/add", cartH.Add)
		authed.GET("/wishlist", wishlistH.Show)
		authed.POST("/wishlist/toggle", wishlistH.Toggle)
		authed.GET("/checkout", checkoutH.Get)
		authed.POST("/checkout/coupon", checkoutH.ApplyCoupon)
		authed.POST("/checkout", checkoutH.Post)
		authed.GET("/checkout/confirmation/:id", checkoutH.Confirmation)
		authed.GET("/account/orders", accountOrders.List)
	}

	adm := r.Group("/admin", middleware.RequireAuth(flashCodec), middleware.RequireAdmin(flashCodec))
	{
		adm.GET("", dashboard.Show)

		adm.GET("/users", adminUsers.List)
		adm.GET("/users/:id/edit", adminUsers.Edit)
		adm.POST("/users/:id", adminUsers.Update)
		adm.POST("/users/:id/role", adminUsers.ToggleRole)
		adm.POST("/users/:id/delete", adminUsers.Delete)

		adm.GET("/products", adminProducts.List)
		adm.GET("/products/:id/edit", adminProducts.Edit)
		adm.POST("/products", adminProducts.Create)
		adm.POST("/products/:id", adminProducts.Update)
		adm.POST("/products/:id/delete", adminProducts.Delete)

		adm.GET("/coupons", adminCoupons.List)
		adm.GET("/coupons/:id/edit", adminCoupons.Edit)
		adm.POST("/coupons", adminCoupons.Create)
		adm.POST("/coupons/:id", adminCoupons.Update)
		adm.POST("/coupons/:id/delete", adminCoupons.Delete)

		adm.GET("/orders", adminOrders.List)
		adm.GET("/orders/pending", adminOrders.Pending)
		adm.GET("/orders/:id", adminOrders.Show)
		adm.POST("/orders/:id/status", adminOrders.UpdateStatus)
		adm.POST("/orders/:id/address", adminOrders.UpdateAddress)

		adm.GET("/photos", adminPhotos.Index)
		adm.POST("/photos/url", adminPhotos.AddByURL)
		adm.POST("/photos/upload", adminPhotos.Upload)
		adm.POST("/photos/:id/primary", adminPhotos.SetPrimary)
		adm.POST("/photos/:id/delete", adminPhotos.Delete)

		adm.GET("/stock", adminStock.Index)
	}

	return r, nil
}
