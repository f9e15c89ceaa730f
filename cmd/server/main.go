package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jpariona/ulima-campus-api/internal/config"
	"github.com/jpariona/ulima-campus-api/internal/database"
	"github.com/jpariona/ulima-campus-api/internal/handler"
	"github.com/jpariona/ulima-campus-api/internal/logging"
	"github.com/jpariona/ulima-campus-api/internal/metrics"
	"github.com/jpariona/ulima-campus-api/internal/middleware"
	"github.com/jpariona/ulima-campus-api/internal/observability"
	"github.com/jpariona/ulima-campus-api/internal/repository"
	"github.com/jpariona/ulima-campus-api/internal/router"
	"github.com/jpariona/ulima-campus-api/internal/service"
)

func main() {
	cfg := config.Load()

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer lg.Closer()

	closeSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, "ulima-campus-api")
	if err != nil {
		lg.Sugar.Warnw("sentry init failed, continuing without it", "error", err)
	}
	defer closeSentry()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		lg.Sugar.Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		lg.Sugar.Fatalw("migrations failed", "error", err)
	}

	rdb := config.NewRedis(cfg)
	if rdb == nil {
		lg.Sugar.Info("redis not configured, rate limiting disabled")
	}

	userRepo := repository.NewUserRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	sectionRepo := repository.NewSectionRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	materialRepo := repository.NewMaterialRepo(db)
	eventRepo := repository.NewEventRepo(db)

	h := router.Handlers{
		Menu:    handler.NewMenuHandler(service.NewMenuService(menuRepo)),
		Orders:  handler.NewOrderHandler(service.NewOrderService(orderRepo)),
		Reviews: handler.NewReviewHandler(service.NewReviewService(reviewRepo, menuRepo)),
		Users:   handler.NewUserHandler(service.NewUserService(userRepo)),
		Classroom: handler.NewClassroomHandler(service.NewClassroomService(
			sectionRepo, messageRepo, materialRepo, eventRepo, userRepo)),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(lg.Base, cfg.IsProd())
	e.Use(echomw.CORS())
	e.Use(metrics.Middleware())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	router.Register(e, h)

	addr := ":" + cfg.Port
	lg.Base.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		lg.Sugar.Fatalw("server stopped", "error", err)
	}
}
