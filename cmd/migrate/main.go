package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"billbook/db"
	"billbook/internal/config"
	"billbook/internal/logger"
)

var migrator *migrate.Migrate

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the ledger_documents schema to the configured PostgreSQL database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := logger.Setup(cfg.Log.Logger()); err != nil {
				return fmt.Errorf("setting up logger: %w", err)
			}
			if cfg.Store.Driver != config.DriverPostgres {
				log.Warn().Str("driver", cfg.Store.Driver).Msg("store driver is not postgres; migrating anyway")
			}
			m, err := newMigrator(cfg.DB.DSN())
			if err != nil {
				return err
			}
			migrator = m
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if migrator == nil {
				return nil
			}
			srcErr, dbErr := migrator.Close()
			return errors.Join(srcErr, dbErr)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return report(migrator.Up(), "migrations applied")
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return report(migrator.Down(), "migrations reverted")
			},
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply (N > 0) or revert (N < 0) N migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps argument %q: %w", args[0], err)
				}
				return report(migrator.Steps(n), fmt.Sprintf("applied %d migration steps", n))
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				version, dirty, err := migrator.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "version: none")
					return nil
				}
				if err != nil {
					return fmt.Errorf("reading version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %v\n", version, dirty)
				return nil
			},
		},
	)
	return root
}

func newMigrator(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(db.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("reading embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}
	return m, nil
}

func report(err error, done string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("schema already up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("migration failed")
		return err
	}
	log.Info().Msg(done)
	return nil
}
