package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/goliatone/go-router"
	"go.uber.org/zap"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/cmd/biodata-server/config"
)

func main() {
	ctx := context.Background()

	cfg := config.Defaults()

	// Override from environment
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if slot := os.Getenv("FORM_SLOT"); slot != "" {
		cfg.Store.Slot = slot
	}
	if path := os.Getenv("CHROMIUM_PATH"); path != "" {
		cfg.Raster.ChromiumPath = path
	}
	if headless := os.Getenv("CHROMIUM_HEADLESS"); headless != "" {
		if parsed, err := strconv.ParseBool(headless); err == nil {
			cfg.Raster.Headless = parsed
		}
	}
	if args := os.Getenv("CHROMIUM_ARGS"); args != "" {
		cfg.Raster.Args = splitCSV(args)
	}
	if timeout := os.Getenv("CHROMIUM_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil && parsed > 0 {
			cfg.Raster.Timeout = parsed
		}
	}
	if scale := os.Getenv("RASTER_SCALE"); scale != "" {
		if parsed, err := strconv.ParseFloat(scale, 64); err == nil && parsed > 0 {
			cfg.Raster.Scale = parsed
		}
	}
	if interval := os.Getenv("AUTOSAVE_INTERVAL"); interval != "" {
		if parsed, err := time.ParseDuration(interval); err == nil {
			cfg.Autosave.Interval = parsed
		}
	}

	zapCfg := zap.NewProductionConfig()
	zl, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zl.Sync()

	app, err := NewApp(ctx, cfg, zl)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}
	defer app.Close()

	srv := buildServer()
	app.SetupRoutes(srv.Router())

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		app.Logger.Infof("starting server on http://%s", addr)
		if err := srv.Serve(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Infof("shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Errorf("shutdown error: %v", err)
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func buildServer() router.Server[*fiber.App] {
	return router.NewFiberAdapter(func(*fiber.App) *fiber.App {
		fiberApp := fiber.New(fiber.Config{
			AppName: "BioData Maker",
		})

		fiberApp.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
		}))
		fiberApp.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowHeaders: "Content-Type",
		}))

		return fiberApp
	})
}
