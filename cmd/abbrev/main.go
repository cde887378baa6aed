// abbrev 计算一组路径(或其他token序列)的唯一前缀
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "abbrev",
		Short: "Shortest unique prefixes of paths and token sequences",
		Long: `abbrev splits each input into tokens, builds a trie over them and
prints the shortest prefix that distinguishes every input from the others.

Inputs are taken from the arguments, or from stdin (one per line) when no
arguments are given. Lines are used as-is apart from a trailing \r; blank
lines are skipped.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.abbrev/config.yaml)")
	rootCmd.PersistentFlags().String("mode", "", "Tokenize mode: path, rune or word")
	rootCmd.PersistentFlags().String("sep", "", "Path separator for path mode")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(),
		newCommonCmd(),
		newKeysCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "abbrev version %s\n", version)
		},
	}
}
