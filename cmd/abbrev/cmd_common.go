package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miajio/abbrev/pkg/abbrev"
	"github.com/miajio/abbrev/pkg/participle"
)

func newCommonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "common [path...]",
		Short: "Print the common directory of a set of paths",
		Long: `common abbreviates the paths, takes the shortest abbreviation and
drops its last component. With a single path its parent is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			if opts.cfg.Mode != participle.ModePath {
				return fmt.Errorf("common only works in path mode, got %q", opts.cfg.Mode)
			}
			paths, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			dir := abbrev.CommonDir(paths, opts.cfg.Separator)
			opts.logger.Debug("common dir", "paths", len(paths), "dir", dir)

			if opts.json {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"dir": dir})
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
