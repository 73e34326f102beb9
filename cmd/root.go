package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stakegulf-cms/config"
)

var envFile string

// rootCmd serves the API when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "stakegulf-cms",
	Short: "stakegulf CMS API",
	Long: `Content management API for the stakegulf betting comparison site.

Commands:
  serve    - Run the HTTP API (default)
  migrate  - Apply the database schema
  seed     - Create the superadmin, default settings and default pages`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (defaults to ./.env)")
}

// bootstrap loads configuration and opens the database shared by every command.
func bootstrap() (config.Config, *slog.Logger, *gorm.DB, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log := config.NewLogger(cfg)

	db, err := config.InitDB(cfg, log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, log, db, nil
}
