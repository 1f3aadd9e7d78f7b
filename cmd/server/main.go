package main

import (
	"os"

	"github.com/hackernews-graphql-api/internal/config"
	"github.com/hackernews-graphql-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDir string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hackernews",
		Short:         "GraphQL API of a Hackernews clone",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "./configs", "directory holding an optional config.yaml")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// setup loads configuration and builds the logger every command starts from
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadFrom(viper.New(), configDir)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.New(cfg.Log), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log := logger.New(config.LogConfig{Level: "error"})
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
