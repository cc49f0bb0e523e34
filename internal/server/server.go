package server

import (
	"spicestore-backend/internal/handler"
	appmiddleware "spicestore-backend/internal/middleware"
	"spicestore-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	productHandler  *handler.ProductHandler
	wishlistHandler *handler.WishlistHandler
	quoteHandler    *handler.QuoteHandler
}

func NewServer(
	jwtSecret string,
	checkoutService service.CheckoutService,
	cartService service.CartService,
	orderService service.OrderService,
	catalogService service.CatalogService,
	wishlistService service.WishlistService,
	quoteService service.QuoteService,
) *Server {
	e := echo.New()

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.AuthMiddleware(jwtSecret))

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		cartHandler:     handler.NewCartHandler(cartService),
		orderHandler:    handler.NewOrderHandler(orderService),
		productHandler:  handler.NewProductHandler(catalogService),
		wishlistHandler: handler.NewWishlistHandler(wishlistService),
		quoteHandler:    handler.NewQuoteHandler(quoteService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog (public) --------
	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:slug", s.productHandler.GetProduct)

	// -------- cart --------
	cart := api.Group("/cart")
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("", s.cartHandler.AddItem)
	cart.DELETE("", s.cartHandler.ClearCart)
	cart.PATCH("/:itemId", s.cartHandler.UpdateItem)
	cart.DELETE("/:itemId", s.cartHandler.RemoveItem)

	// -------- checkout / orders --------
	api.POST("/checkout", s.checkoutHandler.Checkout)
	api.GET("/orders", s.orderHandler.ListOrders)
	api.GET("/orders/:orderId", s.orderHandler.GetOrder)

	// -------- wishlist --------
	wishlist := api.Group("/wishlist")
	wishlist.GET("", s.wishlistHandler.GetWishlist)
	wishlist.POST("", s.wishlistHandler.AddItem)
	wishlist.DELETE("/:itemId", s.wishlistHandler.RemoveItem)

	// -------- b2b portal --------
	b2b := api.Group("/b2b")
	b2b.GET("/quotes", s.quoteHandler.ListQuotes)
	b2b.POST("/quotes", s.quoteHandler.CreateQuote)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
