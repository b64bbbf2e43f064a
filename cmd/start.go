package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"world-crawler/core/loader"
	"world-crawler/core/logger"
	"world-crawler/core/middleware/auth"
	"world-crawler/core/middleware/rayid"
	"world-crawler/core/scheduler"
	"world-crawler/feature/favorite"
	"world-crawler/feature/favorite/crawler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "world-crawler/docs/swagger"
)

// @title World Crawler API
// @version 1.0
// @description API for the favorite-world crawler.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server and the crawl scheduler",
	Long:  `Starts the HTTP server, loads all enabled features and runs crawl cycles on the configured schedule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx, migrates(cmd))
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every later log line carries it.
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
		metricsHandler := adaptor.HTTPHandler(a.metrics.Handler())
		if a.cfg.Server.PublicMetrics {
			app.Get("/metrics", metricsHandler)
		}

		if !a.cfg.Server.AuthEnabled() {
			logg.Warn("API key is empty, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if !a.cfg.Server.PublicMetrics {
			app.Get("/metrics", metricsHandler)
		}

		mgr := loader.NewManager(logg)
		mgr.Register(favorite.NewFeature(a.service))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		var sched *scheduler.Scheduler
		if a.cfg.Schedule.Enabled {
			sched, err = scheduler.New(a.cfg.Schedule.Cron, func(ctx context.Context) error {
				_, err := a.crawler.Run(ctx, crawler.RunOptions{})
				return err
			}, logg)
			if err != nil {
				return err
			}
			go sched.Run(ctx)
			if a.cfg.Schedule.RunOnStart {
				sched.Trigger()
			}
		}

		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Error("Server failed", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		if sched != nil {
			sched.Stop()
		}
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
