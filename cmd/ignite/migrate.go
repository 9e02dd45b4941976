package main

import (
	"fmt"

	"github.com/JRebertt/Cursos/internal/config"
	"github.com/JRebertt/Cursos/internal/database"
	"github.com/JRebertt/Cursos/internal/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("invalid environment configuration: %w", err)
			}

			loggerService := logger.NewLoggerService(cfg.Observability)
			defer loggerService.Shutdown()

			log := logger.NewLoggerWithService(cfg.Observability, loggerService)

			return database.Migrate(cmd.Context(), &log, cfg.Database.URL)
		},
	}
}
