package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

const unexpectedMessage = "an unexpected error occurred"

// HTTPErrorはそのまま返す。それ以外は中身をログにだけ出して500。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	req := c.Request()
	slog.ErrorContext(req.Context(), "unexpected error",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("err", err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: unexpectedMessage})
}

// ErrorHandlerはechoの共通エラーハンドラ。
// /api配下でルートが無いときは "cannot METHOD uri" の404にする。
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		req := c.Request()
		switch {
		case isAPI(req.URL.Path) && (ee.Code == http.StatusNotFound || ee.Code == http.StatusMethodNotAllowed):
			err = usecase.RouteNotFound(req.Method, req.RequestURI)
		case ee.Code < http.StatusInternalServerError:
			msg, ok := ee.Message.(string)
			if !ok {
				msg = http.StatusText(ee.Code)
			}
			err = usecase.NewHTTPError(ee.Code, msg)
		}
	}

	_ = writeError(c, err)
}

func isAPI(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// 該当ルートなし（/api/* のcatch-all）
func NotFound(c echo.Context) error {
	return usecase.RouteNotFound(c.Request().Method, c.Request().RequestURI)
}
