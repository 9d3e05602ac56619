package main

import (
	"fmt"
	"log"
	"os"

	"meetline-client/internal/config"
	"meetline-client/internal/gateway"
	"meetline-client/internal/session"
	"meetline-client/internal/store"

	authService "meetline-client/internal/service/auth"
	bookingService "meetline-client/internal/service/booking"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app bundles everything the commands need.
type app struct {
	cfg     config.AppConfig
	logger  *zap.Logger
	creds   *store.CredentialStore
	session *session.Facade
	auth    *authService.AuthService
	booking *bookingService.BookingService
}

func newApp() (*app, error) {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var creds *store.CredentialStore
	if cfg.RedisAddr != "" {
		client, err := store.NewRedisClient(store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			PoolSize: 4,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect session store: %w", err)
		}
		creds = store.NewCredentialStore(store.NewRedisStore(client, store.SecureNamespace), logger)
	} else {
		creds = store.Open(store.Config{Dir: cfg.StoreDir, Secret: cfg.StoreSecret}, logger)
	}

	client := gateway.NewClient(cfg, creds, logger)
	authGw := gateway.NewAuthGateway(client, creds, logger)
	bookingGw := gateway.NewBookingGateway(client, logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		creds:   creds,
		session: session.NewFacade(creds),
		auth:    authService.NewAuthService(authGw, logger),
		booking: bookingService.NewBookingService(bookingGw, logger),
	}, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}

	a, err := newApp()
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.logger.Sync()

	root := &cobra.Command{
		Use:           "meetline",
		Short:         "MeetLine appointment booking client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		loginCmd(a),
		registerCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		onboardCmd(a),
		forgotPasswordCmd(a),
		businessesCmd(a),
		servicesCmd(a),
		professionalsCmd(a),
		slotsCmd(a),
		bookCmd(a),
		cancelCmd(a),
		appointmentsCmd(a),
		watchCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
