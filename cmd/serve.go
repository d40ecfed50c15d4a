package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"bloghub/internal/account"
	"bloghub/internal/api"
	"bloghub/internal/api/handler"
	"bloghub/internal/auth"
	"bloghub/internal/blog"
	"bloghub/internal/config"
	"bloghub/internal/deploy"
	"bloghub/internal/school"
	"bloghub/pkg/hosting/vercel"
	"bloghub/pkg/logger"
	"bloghub/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildDeps wires the storage and hosting client into the services the HTTP
// handlers depend on.
func buildDeps(cfg *config.Config, strg storage.Storage) api.Deps {
	hasher := auth.NewPasswordHasher(cfg.Password.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	hostingClient := vercel.New(http.DefaultClient, cfg.Hosting.Token)

	return api.Deps{
		Deps: handler.Deps{
			Accounts: account.New(strg, hasher, tokens),
			Blogs:    blog.New(strg),
			Schools:  school.New(strg),
			Deployer: deploy.New(hostingClient, deploy.NewOptions(cfg)),
			Tokens:   tokens,
		},
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, buildDeps(cfg, strg))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
