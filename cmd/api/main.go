package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"supplyops/internal/adapter/http/routes"
	"supplyops/internal/config"
	"supplyops/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Supply Ops API
// @version         1.0
// @description     Supplier operations console: orders, consumer links, complaints and incidents.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey StaffRole
// @in header
// @name X-Staff-Role
// @description OWNER, MANAGER or SALES. Sent together with X-Staff-Id.

func main() {
	cfg, err := config.Load(os.Getenv("SUPPLYOPS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	flush, err := logging.Install(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = routes.Run(ctx, cfg)
	stop()
	if err != nil {
		zap.L().Error("failed to run the application", zap.Error(err))
		flush()
		os.Exit(1)
	}
	flush()
}
