package stubapi

import (
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/clients"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds a gin engine serving the stub API under the variant's
// base path.
func NewRouter(variant clients.Variant, logger ...*zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, NewHandler(variant, logger...), variant)
	return router
}

func RegisterRoutes(r gin.IRouter, h *Handler, variant clients.Variant) {
	carts := r.Group(variant.BasePath)
	{
		carts.POST("", h.CreateShopcart)
		carts.GET("", h.ListShopcarts)
		carts.GET("/:shopcartId", h.GetShopcart)
		carts.PUT("/:shopcartId", h.UpdateShopcart)
		carts.DELETE("/:shopcartId", h.DeleteShopcart)
		carts.POST("/:shopcartId/checkout", h.Checkout)
		carts.PUT("/:shopcartId/reset", h.ResetShopcart)
		carts.POST("/:shopcartId/items", h.AddItem)
		carts.GET("/:shopcartId/items", h.ListItems)
		carts.GET("/:shopcartId/items/:itemId", h.GetItem)
		carts.PUT("/:shopcartId/items/:itemId", h.UpdateItem)
		carts.DELETE("/:shopcartId/items/:itemId", h.DeleteItem)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
}
