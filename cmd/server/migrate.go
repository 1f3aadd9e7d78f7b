package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigration(true)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigration(false)
			},
		},
	)
	return cmd
}

func runMigration(up bool) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	if up {
		err = st.migrateUp()
	} else {
		err = st.migrateDown()
	}
	if err != nil {
		return err
	}

	log.Info().Bool("up", up).Str("driver", cfg.Database.Driver).Msg("Migration finished")
	return nil
}
