package cmd

import (
	"github.com/spf13/cobra"

	"stakegulf-cms/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Create the role enum, every table and its indexes. Existing objects are
left alone, so the command can be run on every deploy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}

		if err := migration.Apply(db); err != nil {
			return err
		}
		log.Info("schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
