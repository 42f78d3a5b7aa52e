package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	"storefront/internal/infra/logger"
	"storefront/internal/infra/messaging"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/session"
	"storefront/internal/middleware"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	//.envは無くてもよい（本番は環境変数だけ）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.GoEnv,
		Level:     cfg.LogLevel,
		AddSource: !cfg.IsProd(),
	})

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gormDB) }()

	if cfg.AutoMigrate {
		if err := db.Migrate(cfg.PostgresDSN()); err != nil {
			return err
		}
	}

	//セッション（Redis）
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return err
	}
	rdb := redis.NewClient(redisOpts)
	defer func() { _ = rdb.Close() }()

	store := session.NewRedisStore(rdb, cfg.SessionTTL)
	tokens := session.NewTokenCodec(cfg.SessionSecret, cfg.SessionTTL)

	//注文イベント（ブローカー未設定なら送らない）
	var publisher usecase.OrderEventPublisher = messaging.NopOrderPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		w := messaging.NewKafkaWriter(cfg.KafkaBrokers)
		defer func() { _ = w.Close() }()
		publisher = messaging.NewKafkaOrderPublisher(w, cfg.OrderEventsTopic)
	} else {
		log.Info("KAFKA_BROKERS not set, order events are disabled")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	healthRepo := infraRepo.NewHealthGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(txm, cartItemRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, publisher, log)

	e := server.New(server.Handlers{
		Health:  handler.NewHealthHandler(healthRepo),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
	}, server.Options{
		Log: log,
		Session: middleware.Session(store, tokens, middleware.SessionOptions{
			CookieName:  cfg.SessionCookieName,
			TTL:         cfg.SessionTTL,
			LockTimeout: cfg.SessionLockTimeout,
			Secure:      cfg.IsProd(),
			Log:         log,
		}),
		PublicDir: cfg.PublicDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", slog.String("addr", cfg.Addr()))
		return server.Start(gctx, e, cfg.Addr(), 10*time.Second)
	})
	g.Go(func() error {
		//起動時にRedisへ届くか確認
		return rdb.Ping(gctx).Err()
	})

	return g.Wait()
}
