package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cart のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// OAS: AddToCartRequest
type AddCartRequest struct {
	ProductID productIDField `json:"productId"`
}

// productIdは数値でも数字の文字列でも受け付ける
type productIDField string

func (p *productIDField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = productIDField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = productIDField(n.String())
	return nil
}

// /api/cart を登録（sessionはセッションミドルウェア）
func (h *CartHandler) RegisterRoutes(g *echo.Group, session echo.MiddlewareFunc) {
	g.GET("/cart", h.getCart, session)
	g.POST("/cart", h.addToCart, session)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, usecase.InvalidArgument("invalid body"))
	}

	//DBに触る前にIDを検証
	productID, err := usecase.ParseProductID(string(req.ProductID))
	if err != nil {
		return writeError(c, err)
	}

	out, sess, err := h.uc.AddToCart(c.Request().Context(), middleware.CurrentSession(c), productID)
	//失敗時もカートの紐づけを外すことがあるので先に保存
	if serr := middleware.SaveSession(c, sess); serr != nil {
		return writeError(c, serr)
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
