package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// OAS: PlaceOrderRequest
type OrderCreateRequest struct {
	Name            string `json:"name"`
	CreditCard      string `json:"creditCard"`
	ShippingAddress string `json:"shippingAddress"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group, session echo.MiddlewareFunc) {
	g.POST("/orders", h.create, session)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, usecase.InvalidArgument("invalid body"))
	}

	out, sess, err := h.uc.PlaceOrder(c.Request().Context(), middleware.CurrentSession(c), usecase.PlaceOrderInput{
		Name:            req.Name,
		CreditCard:      req.CreditCard,
		ShippingAddress: req.ShippingAddress,
	})
	if serr := middleware.SaveSession(c, sess); serr != nil {
		return writeError(c, serr)
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
