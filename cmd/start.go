package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"room-finder/core/cache"
	"room-finder/core/loader"
	"room-finder/core/logger"
	"room-finder/core/middleware/auth"
	"room-finder/core/middleware/rayid"
	"room-finder/core/server"
	"room-finder/feature/integrity"
	"room-finder/feature/rooms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "room-finder/docs/swagger"
)

// @title Room Finder API
// @version 1.0
// @description API for finding adjacent hotel rooms within a budget.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the room finder server",
	Long:  `Starts the HTTP server, loads the rooms from the configured source and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		logg := env.logg
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !env.cfg.Server.IsValidSource() {
			return fmt.Errorf("invalid server source %q (memory, database, storage)", env.cfg.Server.Source)
		}

		if err := env.connectStorage(); err != nil {
			return err
		}
		if err := env.connectDatabase(true); err != nil {
			return err
		}

		searchCache, err := cache.New(env.cfg.Cache)
		if err != nil {
			logg.Warn("Search cache disabled", zap.Error(err))
			searchCache = cache.Noop{}
		}

		roomService := rooms.NewService(env.store, env.cfg.Storage, env.db, searchCache, logg)
		if source := env.cfg.Server.Source; source != server.SourceMemory {
			n, err := roomService.Reload(cmd.Context(), source)
			if err != nil {
				return fmt.Errorf("failed to load rooms from %s: %w", source, err)
			}
			logg.Info("Rooms loaded", zap.String("source", source), zap.Int("rooms", n))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(rooms.NewFeature(roomService))
		mgr.Register(integrity.NewFeature(env.store, env.cfg.Storage, env.db, logg))

		// RayID first so everything after it is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", env.cfg.Server.Port))
			errCh <- app.Listen(":" + env.cfg.Server.Port)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
