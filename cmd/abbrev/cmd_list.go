package main

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [input...]",
		Short: "Print the shortest unique prefix of every input",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			entries, err := opts.abbreviateInputs(inputs)
			if err != nil {
				return err
			}
			return opts.printEntries(cmd.OutOrStdout(), entries)
		},
	}
}
