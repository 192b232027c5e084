package routes

import (
	"colohub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathPackages = "/packages"
	PathCatalog  = "/catalog"
	PathQuotes   = "/quotes"
	PathOrders   = "/orders"
	PathSession  = "/session"
)

func addCommerceRoutes(
	rg *gin.RouterGroup,
	cartHandler *handlers.CartHandler,
	catalogHandler *handlers.CatalogHandler,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
		cart.PATCH("/items/:id/quantity", cartHandler.UpdateCartQuantity)
		cart.POST("/clear", cartHandler.ClearCart)
	}

	packages := rg.Group(PathPackages)
	{
		packages.GET("", cartHandler.GetPackages)
		packages.POST("/items", cartHandler.AddPackageItem)
		packages.DELETE("/items/:id", cartHandler.RemovePackageItem)
		packages.PATCH("/items/:id/quantity", cartHandler.UpdatePackageQuantity)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListProducts)
		catalog.GET("/:key", catalogHandler.GetProduct)
		catalog.POST("/:key/price", catalogHandler.PreviewPrice)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/decline", quoteHandler.DeclineQuote)
		quotes.POST("/:id/items/:index/configuration", quoteHandler.ConfigureItem)
		quotes.POST("/:id/order", orderHandler.CreateOrder)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	session := rg.Group(PathSession)
	{
		session.GET("", cartHandler.GetSession)
		session.PATCH("", cartHandler.UpdateSession)
	}
}
