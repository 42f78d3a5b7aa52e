package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/handler"
	"storefront/internal/infra/messaging"
	"storefront/internal/infra/session"
	"storefront/internal/middleware"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CartItemDTO struct {
	CartItemID int64   `json:"cartItemId"`
	ProductID  int64   `json:"productId"`
	Price      float64 `json:"price"`
	Name       string  `json:"name"`
}

type OrderDTO struct {
	OrderID         int64  `json:"orderId"`
	CartID          int64  `json:"cartId"`
	Name            string `json:"name"`
	CreditCard      string `json:"creditCard"`
	ShippingAddress string `json:"shippingAddress"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// 全部入りのサーバーをメモリ上のDBとminiredisで立てる
func newTestServer(t *testing.T, publicDir string) (*httptest.Server, *memDB) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	mem := newMemDB()
	log := discardLogger()

	e := server.New(server.Handlers{
		Health:  handler.NewHealthHandler(mem),
		Product: handler.NewProductHandler(usecase.NewProductUsecase(memProducts{mem})),
		Cart:    handler.NewCartHandler(usecase.NewCartUsecase(mem, memItems{mem})),
		Order:   handler.NewOrderHandler(usecase.NewOrderUsecase(memOrders{mem}, messaging.NopOrderPublisher{}, log)),
	}, server.Options{
		Log: log,
		Session: middleware.Session(
			session.NewRedisStore(rdb, time.Hour),
			session.NewTokenCodec("test-secret", time.Hour),
			middleware.SessionOptions{CookieName: "storefront.sid", TTL: time.Hour, LockTimeout: time.Second, Log: log},
		),
		PublicDir: publicDir,
	})

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts, mem
}

// cookieを持ち回るクライアント（1訪問者）
func NewTestClient(t *testing.T, ts *httptest.Server) *TestClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &TestClient{
		BaseURL: ts.URL,
		HTTP:    &http.Client{Jar: jar, Timeout: 5 * time.Second},
	}
}

func (c *TestClient) doJSON(t *testing.T, method string, path string, body string) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	return mustDecode[ErrorResponse](t, body)
}
