package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/mentorly/internal/bootstrap"
	"github.com/yigit/mentorly/internal/pkg/logger"
	"github.com/yigit/mentorly/internal/server"
)

// @title Mentorly API
// @version 1.0
// @description Mentorship marketplace backend: profiles, mentor onboarding, coach listing and booking transitions.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("mentorly exited with an error")
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mentorly",
		Short:         "Mentorship marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "path to the YAML configuration file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(cmd.Context(), configPath)
			},
		},
	)

	return root
}

func serve(configPath string) error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(); err != nil {
		return fmt.Errorf("server execution failed or shutdown encountered errors: %w", err)
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(ctx context.Context, configPath string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := bootstrap.RunMigrations(ctx, database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Migration failed")
		return err
	}
	return nil
}
