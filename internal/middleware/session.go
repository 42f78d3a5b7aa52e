package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/session"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const ctxSessionKey = "session"

// セッションの保存先（session.RedisStore）
type SessionStore interface {
	Load(ctx context.Context, sid string) (model.Session, error)
	Save(ctx context.Context, sid string, sess model.Session) error
	Lock(ctx context.Context, sid string) (func(context.Context) error, error)
}

// cookieに載せるセッションIDの署名/検証（session.TokenCodec）
type SessionTokens interface {
	Issue(sid string, now time.Time) (string, error)
	Parse(raw string) (string, error)
}

type SessionOptions struct {
	CookieName  string
	TTL         time.Duration
	LockTimeout time.Duration // POSTがロックを待つ上限
	Secure      bool
	Log         *slog.Logger
}

// リクエスト中のセッション
type sessionState struct {
	sid   string
	fresh bool // cookieが無い/無効で新しく振ったID
	sess  model.Session

	store  SessionStore
	tokens SessionTokens
	opts   SessionOptions
}

// Sessionはcookieからセッションを読み込んでcontextに置く。
// 同じセッションの更新系リクエスト（POST）はロックで1本ずつ処理する。
func Session(store SessionStore, tokens SessionTokens, opts SessionOptions) echo.MiddlewareFunc {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			//cookieからセッションIDを取り出す（無効なら新規）
			sid, fresh := "", true
			if ck, err := c.Cookie(opts.CookieName); err == nil && ck.Value != "" {
				if parsed, err := tokens.Parse(ck.Value); err == nil {
					sid, fresh = parsed, false
				}
			}
			if fresh {
				sid = uuid.NewString()
			}

			//新規IDは他のリクエストと競合しないのでロック不要
			if !fresh && isMutating(c.Request().Method) {
				lockCtx, cancel := context.WithTimeout(ctx, opts.LockTimeout)
				unlock, err := store.Lock(lockCtx, sid)
				cancel()
				if errors.Is(err, session.ErrBusy) {
					return usecase.NewHTTPError(http.StatusServiceUnavailable, "session busy")
				}
				if err != nil {
					return fmt.Errorf("lock session: %w", err)
				}
				defer func() {
					if err := unlock(context.WithoutCancel(ctx)); err != nil {
						opts.Log.WarnContext(ctx, "unlock session failed", slog.Any("err", err))
					}
				}()
			}

			var sess model.Session
			if !fresh {
				loaded, err := store.Load(ctx, sid)
				if err != nil {
					return fmt.Errorf("load session: %w", err)
				}
				sess = loaded
			}

			c.Set(ctxSessionKey, &sessionState{
				sid:    sid,
				fresh:  fresh,
				sess:   sess,
				store:  store,
				tokens: tokens,
				opts:   opts,
			})
			return next(c)
		}
	}
}

// 今のリクエストのセッション（ミドルウェア外なら空）
func CurrentSession(c echo.Context) model.Session {
	st, ok := c.Get(ctxSessionKey).(*sessionState)
	if !ok {
		return model.Session{}
	}
	return st.sess
}

// SaveSessionは変更があったときだけ保存してcookieを発行する。
// レスポンスを書く前に呼ぶこと。
func SaveSession(c echo.Context, sess model.Session) error {
	st, ok := c.Get(ctxSessionKey).(*sessionState)
	if !ok {
		return errors.New("session middleware not installed")
	}
	if sess == st.sess {
		return nil
	}

	ctx := c.Request().Context()
	if err := st.store.Save(ctx, st.sid, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	now := time.Now()
	token, err := st.tokens.Issue(st.sid, now)
	if err != nil {
		return fmt.Errorf("issue session cookie: %w", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     st.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(st.opts.TTL),
		MaxAge:   int(st.opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   st.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	st.sess = sess
	return nil
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}
