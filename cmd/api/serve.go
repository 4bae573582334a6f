package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"purrlog/internal/adapters/ai/gemini"
	"purrlog/internal/adapters/auth/odin"
	"purrlog/internal/adapters/capabilities/plansfeatures"
	"purrlog/internal/adapters/storage"
	"purrlog/internal/app"
	"purrlog/internal/config"
	"purrlog/internal/platform/logger"
	"purrlog/internal/ports/auth"
	"purrlog/internal/ports/capabilities"
	"purrlog/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	Long: `Arranca el servidor HTTP.

Examples:
  # Defaults + variables de entorno
  PURRLOG_ASSISTANT_API_KEY=... purrlog serve

  # Con archivo de configuración
  purrlog serve --config purrlog.yaml`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	zl := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	if s, ok := zl.(interface{ Sync() }); ok {
		defer s.Sync()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeQuietly(closer, zl)

	gen, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Assistant.APIKey.Value(),
		Model:   cfg.Assistant.Model,
		BaseURL: cfg.Assistant.BaseURL,
	})
	if err != nil {
		return err
	}

	verifier, err := authVerifier(cfg.Auth)
	if err != nil {
		return err
	}
	caps, err := capabilityResolver(cfg.Capabilities)
	if err != nil {
		return err
	}

	ws := app.NewWorkspaces(app.WorkspacesConfig{
		Store:            store,
		KeyPrefix:        cfg.Storage.KeyPrefix,
		Generator:        gen,
		Location:         loc,
		Logger:           zl,
		AssistantTimeout: cfg.Assistant.Timeout,
	})

	opts := router.Options{
		Workspaces:   ws,
		AuthVerifier: verifier,
		Capabilities: caps,
		Logger:       zl,
	}
	if verifier == nil {
		opts.DefaultUser = "local"
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("starting server", map[string]any{
			"addr":            srv.Addr,
			"storage":         string(store.Driver()),
			"model":           cfg.Assistant.Model,
			"auth":            verifier != nil,
			"timezone":        loc.String(),
			"capability_gate": caps != nil,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// authVerifier devuelve nil (modo dev) si Odin no está configurado.
func authVerifier(cfg config.AuthConfig) (auth.AuthVerifier, error) {
	if cfg.OdinBaseURL == "" {
		return nil, nil
	}
	client, err := odin.NewClient(odin.Config{
		BaseURL: cfg.OdinBaseURL,
		APIKey:  cfg.OdinAPIKey.Value(),
	})
	if err != nil {
		return nil, err
	}
	return odin.NewVerifier(client), nil
}

// capabilityResolver devuelve nil (sin gate) si no hay plans-features ni allow_all.
func capabilityResolver(cfg config.CapabilitiesConfig) (capabilities.Resolver, error) {
	if cfg.AllowAll {
		return plansfeatures.NewResolver(nil, true), nil
	}
	if cfg.BaseURL == "" {
		return nil, nil
	}
	client, err := plansfeatures.NewClient(plansfeatures.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey.Value(),
	})
	if err != nil {
		return nil, err
	}
	return plansfeatures.NewResolver(client, false), nil
}

func closeQuietly(c io.Closer, log logger.Logger) {
	if err := c.Close(); err != nil {
		log.Warn("storage close failed", map[string]any{"err": err})
	}
}
