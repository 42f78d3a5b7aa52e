package server

import (
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health  *handler.HealthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
}

// /api 配下を登録。セッションが要るのはcartとordersだけ。
func RegisterRoutes(e *echo.Echo, h Handlers, session echo.MiddlewareFunc) {
	api := e.Group("/api")

	h.Health.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api, session)
	h.Order.RegisterRoutes(api, session)

	api.Any("", handler.NotFound)
	api.Any("/*", handler.NotFound)
}
