package main // Entry point package

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/auth"
	"github.com/craftedbyaditya/practice-questions-backend/internal/config"
	"github.com/craftedbyaditya/practice-questions-backend/internal/handler"
	"github.com/craftedbyaditya/practice-questions-backend/internal/logger"
	"github.com/craftedbyaditya/practice-questions-backend/internal/middleware"
	"github.com/craftedbyaditya/practice-questions-backend/internal/queue"
	"github.com/craftedbyaditya/practice-questions-backend/internal/repository"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
	"github.com/craftedbyaditya/practice-questions-backend/internal/router"
	audit "github.com/craftedbyaditya/practice-questions-backend/internal/service"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments use the environment

	cfg := config.Load()
	response.Configure(cfg.Env)

	level := slog.LevelInfo
	if cfg.Env == "dev" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logger.NewHandler(os.Stdout, level)))

	// Remote table store and repositories.
	st := store.New(cfg.StoreURL, cfg.StoreKey)
	users := repository.NewUserRepo(st)
	exams := repository.NewExamRepo(st)
	subjects := repository.NewSubjectRepo(st)
	topics := repository.NewTopicRepo(st)
	enrollments := repository.NewEnrollmentRepo(st)
	translations := repository.NewTranslationRepo(st)

	pub := audit.NewPublisher()

	// Identity resolution: trusted gateway headers by default, bearer
	// token verification when configured.
	var provider auth.IdentityProvider = auth.HeaderProvider{}
	if cfg.IdentityMode == "jwt" {
		provider = auth.JWTProvider{Secret: cfg.JWTSecret}
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = fallbackErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.AttachIdentity(provider))

	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Warn("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, router.Handlers{
		Auth:         handler.NewAuthHandler(users, pub),
		Users:        handler.NewUserHandler(users, pub),
		Exams:        handler.NewExamHandler(exams, subjects, topics, users, pub),
		Subjects:     handler.NewSubjectHandler(subjects, exams, users, pub),
		Topics:       handler.NewTopicHandler(topics, subjects, users, pub),
		Enrollments:  handler.NewEnrollmentHandler(enrollments, users, exams, pub),
		Translations: handler.NewTranslationHandler(translations, pub),
	})

	// Drain audit events in the background; the consumer reconnects on
	// broker failures and never takes the API down with it.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			slog.Error("audit consumer stopped", "err", err)
		}
	}()

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env, "identity_mode", cfg.IdentityMode)
	if err := e.Start(addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// fallbackErrorHandler converts any error that escaped the handlers
// into the standard failure envelope so clients never see a bare Echo
// error shape.
func fallbackErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "something went wrong, please try again"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	slog.Error("unhandled error", "err", err, "path", c.Path())
	_ = response.Error(c, code, msg, err)
}
