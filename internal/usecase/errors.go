package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// 呼び出し側が errors.Is で判定するための種類
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrRouteNotFound   = errors.New("route not found")
)

// クライアント起因のエラー。Statusでそのまま返す。
// それ以外のエラーは500扱い（詳細はログにだけ出す）。
type HTTPError struct {
	Status  int
	Message string
	Kind    error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Kind
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 400 不正な入力
func InvalidArgument(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, Kind: ErrInvalidArgument}
}

// 404 参照先が無い
func NotFound(message string) error {
	return &HTTPError{Status: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// 400 セッションの状態が足りない
func InvalidState(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, Kind: ErrInvalidState}
}

// 404 /api 配下で該当ルートなし
func RouteNotFound(method string, uri string) error {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("cannot %s %s", method, uri),
		Kind:    ErrRouteNotFound,
	}
}
