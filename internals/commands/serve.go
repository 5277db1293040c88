package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	database "schoolhub_backend/internals/databases"
	imageService "schoolhub_backend/internals/features/media/images/service"
	smsService "schoolhub_backend/internals/features/school/sms/service"
	"schoolhub_backend/internals/features/users/auth/scheduler"
	authService "schoolhub_backend/internals/features/users/auth/service"
	routes "schoolhub_backend/internals/route"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close(db)
	database.WarmUpQueries(db)

	verifier, err := authService.NewVerifier(cfg.Identity, db)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler.StartRevokedSessionCleanup(ctx, db, cfg.RevokedSessionTTLDays)

	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, db, cfg, routes.Deps{
		Verifier:     verifier,
		UserDeleter:  authService.NewUserDeleter(cfg.Identity),
		SmsSender:    smsService.NewSender(cfg.Twilio),
		ImageFetcher: &imageService.AgentFetcher{Timeout: 10 * time.Second},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
