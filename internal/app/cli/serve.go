package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	routes "menyqr-app/internal/app/http"
	"menyqr-app/internal/infra/identity"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
	"menyqr-app/internal/repository/memstore"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(a.cfg.Server.Mode)
	a.log.Info("starting menyqr", zap.Any("config", a.cfg.SanitizeForLogging()))

	deps, cleanup, err := a.deps(ctx)
	defer cleanup()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	a.log.Info("listening", zap.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// deps assembles the router collaborators. cleanup is always safe to call.
func (a *app) deps(ctx context.Context) (routes.Deps, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				a.log.Warn("close failed", zap.Error(err))
			}
		}
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return routes.Deps{}, cleanup, err
	}
	closers = append(closers, closeStore)

	var cache profile.Cache
	if a.cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		closers = append(closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return routes.Deps{}, cleanup, fmt.Errorf("ping redis: %w", err)
		}
		cache = profile.NewRedisCache(client)
	} else {
		a.log.Info("redis.addr not set, profile cache disabled")
	}

	d := routes.Deps{
		Config:   a.cfg,
		Store:    store,
		Profiles: profile.NewService(store, cache, a.cfg.Redis.TTL, a.log),
		Tokens:   identity.NewTokens(a.cfg.Session.JWTSecret, a.cfg.Session.TTL),
		Log:      a.log,
	}

	// Interface fields stay nil unless the provider is configured.
	if a.cfg.Identity.Issuer != "" {
		v, err := identity.NewIDTokenVerifier(ctx, a.cfg.Identity.Issuer, a.cfg.Identity.ClientID)
		if err != nil {
			return routes.Deps{}, cleanup, fmt.Errorf("identity provider: %w", err)
		}
		d.Verifier = v
	} else {
		a.log.Warn("identity.issuer not set, sign-in disabled")
	}
	if a.cfg.Stripe.SecretKey != "" {
		d.Gateway = stripe.NewClient(a.cfg.Stripe.SecretKey)
	} else {
		a.log.Warn("stripe.secret_key not set, checkout disabled")
	}

	return d, cleanup, nil
}

// openStore uses postgres when a database url is configured and the
// in-memory demo restaurant otherwise.
func (a *app) openStore(ctx context.Context) (repository.Store, func() error, error) {
	if a.cfg.Database.URL == "" {
		a.log.Warn("database.url not set, serving in-memory demo data")
		return memstore.NewSeeded(repository.DemoFixtures()), func() error { return nil }, nil
	}

	store, closeDB, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, closeDB, nil
}
