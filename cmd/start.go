package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"deviceinfocompare/core/loader"
	"deviceinfocompare/core/logger"
	"deviceinfocompare/core/middleware/auth"
	"deviceinfocompare/core/middleware/rayid"
	"deviceinfocompare/core/storage"
	"deviceinfocompare/feature/archive"
	"deviceinfocompare/feature/dumps"
	"deviceinfocompare/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "deviceinfocompare/docs/swagger"
)

// @title Device Info Compare API
// @version 1.0
// @description API for recording and comparing hardware device inventories.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		zap.ReplaceGlobals(a.log)

		app := newServer(a)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("Starting server", zap.String("addr", a.cfg.Server.Addr()))
			errCh <- app.Listen(a.cfg.Server.Addr())
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		a.log.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newServer builds the Fiber app with middleware and features registered.
func newServer(a *application) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             a.cfg.Server.BodyLimit(),
	})

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.log, c)
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

	app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))
	if !a.cfg.Server.IsProtected() {
		a.log.Warn("API key not set, the API is unauthenticated")
	}

	mgr := loader.NewManager(a.log)
	dumpsFeature := dumps.NewFeature(a.db, a.enum, a.log)
	mgr.Register(dumpsFeature)

	var store storage.Client
	if client, err := storage.NewClient(a.cfg.Storage); err != nil {
		a.log.Warn("Storage unavailable, archive disabled", zap.Error(err))
	} else {
		store = client
	}
	mgr.Register(archive.NewFeature(store, a.cfg.Storage.Bucket, dumpsFeature.Service(), a.log))
	mgr.Register(integrity.NewFeature(a.db, store, a.cfg.Storage.Bucket, a.enum, a.log))

	if err := mgr.LoadAll(app); err != nil {
		a.log.Fatal("Failed to load features", zap.Error(err))
	}
	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
