package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	ticketusecases "dbug/internal/application/ticket/usecases"
	verificationusecases "dbug/internal/application/verification/usecases"
	"dbug/internal/domain/ticket"
	"dbug/internal/domain/verification"
	"dbug/internal/infrastructure/auth"
	"dbug/internal/infrastructure/config"
	"dbug/internal/infrastructure/database"
	"dbug/internal/infrastructure/email"
	"dbug/internal/infrastructure/migration"
	"dbug/internal/infrastructure/repository"
	"dbug/internal/infrastructure/storage"
	httprouter "dbug/internal/interfaces/http"
	tickethandlers "dbug/internal/interfaces/http/handlers/ticket"
	verificationhandlers "dbug/internal/interfaces/http/handlers/verification"
	"dbug/internal/interfaces/http/middleware"
	"dbug/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the dbug intake HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migration.Up(database.Get()); err != nil {
			logger.Fatal("migration failed", "error", err)
		}
		logger.Info("migrations applied")
	}

	attachmentStore, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.MaxFileSizeBytes())
	if err != nil {
		logger.Fatal("failed to prepare upload directory", "error", err)
	}

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUser,
		Password:     cfg.Email.SMTPPassword,
		FromAddress:  cfg.Email.FromAddress,
		FromName:     cfg.Email.FromName,
		SupportEmail: cfg.Email.SupportEmail,
	})

	tokenService := auth.NewVerificationTokenService(
		cfg.Verification.TokenSecret,
		cfg.Verification.TokenExpiry(),
	)

	employeeRepo := repository.NewEmployeeRepository(database.Get())
	otpRepo := repository.NewOTPRepository(database.Get())
	ticketRepo := repository.NewTicketRepository(
		database.Get(),
		ticket.NewPrefixNumberFormatter(cfg.Ticket.IDPrefix),
	)

	lookupEmployeeUC := verificationusecases.NewLookupEmployeeUseCase(employeeRepo, logger.NewLogger())
	sendOTPUC := verificationusecases.NewSendOTPUseCase(
		employeeRepo,
		otpRepo,
		verification.NewRandomCodeGenerator(),
		emailService,
		cfg.OTP.Expiry(),
		logger.NewLogger(),
	)
	verifyOTPUC := verificationusecases.NewVerifyOTPUseCase(otpRepo, tokenService, logger.NewLogger())
	submitTicketUC := ticketusecases.NewSubmitTicketUseCase(
		ticketRepo,
		employeeRepo,
		emailService,
		cfg.Ticket.DescriptionMinLen,
		cfg.Ticket.DescriptionMaxLen,
		logger.NewLogger(),
	)

	verificationHandler := verificationhandlers.NewVerificationHandler(lookupEmployeeUC, sendOTPUC, verifyOTPUC)
	ticketHandler := tickethandlers.NewTicketHandler(submitTicketUC, attachmentStore)
	verificationMW := middleware.NewVerificationMiddleware(tokenService)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		Mode:               cfg.Server.Mode,
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		UploadDir:          cfg.Upload.Dir,
		UploadPublicPrefix: cfg.Upload.PublicPathPrefix,
	}, verificationHandler, ticketHandler, verificationMW, logger.NewLogger())

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
