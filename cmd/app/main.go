package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	apiHttp "github.com/innovators-conclave/backend/internal/api/http"
	"github.com/innovators-conclave/backend/internal/cache"
	"github.com/innovators-conclave/backend/internal/config"
	"github.com/innovators-conclave/backend/internal/db"
	"github.com/innovators-conclave/backend/internal/queue/asynqserver"
	queueClient "github.com/innovators-conclave/backend/internal/queue/client"
	"github.com/innovators-conclave/backend/internal/repository"
	"github.com/innovators-conclave/backend/internal/server"
	"github.com/innovators-conclave/backend/internal/service"
	"github.com/innovators-conclave/backend/internal/worker"
	"github.com/innovators-conclave/backend/pkg/auth"
	"github.com/innovators-conclave/backend/pkg/email/smtp"
	"github.com/innovators-conclave/backend/pkg/hash"
	"github.com/innovators-conclave/backend/pkg/logger"
	"github.com/innovators-conclave/backend/pkg/otp"
	"github.com/innovators-conclave/backend/pkg/pdf"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Infow("starting conclave backend", "env", cfg.Env)
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Errorw("mysql connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Errorw("error when closing", "error", err)
		}
	}()
	appLogger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Errorw("redis connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Errorw("error when closing redis", "error", err)
		}
	}()
	appLogger.Info("redis connection done")

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Errorw("smtp sender creation failed", "error", err)
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Errorw("auth manager creation err", "error", err)
		return
	}

	otpGenerator := otp.NewGOTPGenerator()
	pdfGenerator := pdf.NewGenerator()

	// Workers & queue
	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		PDFGenerator:  pdfGenerator,
		Config:        cfg,
	})

	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err := asynqClient.Close(); err != nil {
			appLogger.Errorw("error when closing asynq client", "error", err)
		}
	}()
	emailQueue := queueClient.NewEmailQueue(asynqClient)

	asynqSrv, asynqMux := asynqserver.New(cfg.Cache, workers)
	if err := asynqSrv.Start(asynqMux); err != nil {
		appLogger.Errorw("asynq server start failed", "error", err)
		os.Exit(1)
	}
	appLogger.Info("queue worker started")

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL, redisClient)
	services := service.NewServices(service.Deps{
		Logger:       appLogger,
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Repos:        repos,
		EmailSender:  workers.EmailSender,
		Mailer:       emailQueue,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorw("error occurred while running http server", "error", err)
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Errorw("failed to stop server", "error", err)
	}

	asynqSrv.Shutdown()

	appLogger.Info("app stopped")
}
