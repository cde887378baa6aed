package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miajio/abbrev/pkg/badger"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the shortest unique prefix of every key in a badger database",
		Long: `keys opens an existing badger database read-only, abbreviates its keys
as paths and prints the result. With --backup the database is also dumped to
a backup file.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}

			dir, _ := cmd.Flags().GetString("db")
			if dir == "" {
				dir = opts.cfg.DB.Dir
			}
			if dir == "" {
				return fmt.Errorf("no database directory: use --db or db.dir in config")
			}
			prefix, _ := cmd.Flags().GetString("prefix")

			db, err := badger.ReadOnly(dir)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				if cerr := db.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("failed to close database %s: %w", dir, cerr)
				}
			}()
			db.SetGCInterval(opts.cfg.DB.GCInterval)

			if backup, _ := cmd.Flags().GetString("backup"); backup != "" {
				if err := db.Backup(backup); err != nil {
					return fmt.Errorf("failed to back up database to %s: %w", backup, err)
				}
				opts.logger.Info("database backed up", "dir", dir, "file", backup)
			}

			keys, err := db.Keys(prefix)
			if err != nil {
				return fmt.Errorf("failed to list keys: %w", err)
			}
			opts.logger.Debug("loaded keys", "dir", dir, "prefix", prefix, "count", len(keys))

			entries, err := opts.abbreviateInputs(keys)
			if err != nil {
				return err
			}
			return opts.printEntries(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().String("db", "", "Badger database directory (default db.dir from config)")
	cmd.Flags().String("prefix", "", "Only abbreviate keys with this prefix")
	cmd.Flags().String("backup", "", "Also write a backup of the database to this file")
	return cmd
}
