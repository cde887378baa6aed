package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miajio/abbrev/pkg/abbrev"
	"github.com/miajio/abbrev/pkg/config"
	"github.com/miajio/abbrev/pkg/participle"
)

// options 合并配置文件与命令行参数后的运行选项
type options struct {
	cfg    *config.Config
	logger *slog.Logger
	json   bool
}

// loadOptions 加载配置, 命令行显式指定的参数优先
func loadOptions(cmd *cobra.Command) (*options, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("sep") {
		cfg.Separator, _ = cmd.Flags().GetString("sep")
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	return &options{
		cfg:    cfg,
		logger: newLogger(cmd.ErrOrStderr(), cfg.Log),
		json:   jsonOut,
	}, nil
}

// newLogger 按日志配置创建slog日志
func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// readInputs 读取参数, 无参数时逐行读取stdin并跳过空行
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		// 空格是路径与key的合法字符, 只去掉CRLF行尾的\r
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return inputs, nil
}

// entry JSON输出条目
type entry struct {
	Abbrev string   `json:"abbrev"`
	Input  string   `json:"input"`
	Tokens []string `json:"tokens"`
}

// abbreviateInputs 切分输入并计算缩写
func (o *options) abbreviateInputs(inputs []string) ([]entry, error) {
	tok, err := o.cfg.Tokenizer()
	if err != nil {
		return nil, err
	}

	seqs := participle.Sequences(tok, inputs)
	o.logger.Debug("tokenized inputs", "mode", o.cfg.Mode, "inputs", len(inputs), "sequences", len(seqs))

	var entries []entry
	abbrev.Walk(seqs, func(a abbrev.Abbreviation) {
		entries = append(entries, entry{
			Abbrev: participle.Join(o.cfg.Mode, o.cfg.Separator, a.Prefix),
			Input:  participle.Join(o.cfg.Mode, o.cfg.Separator, a.Seq),
			Tokens: a.Prefix,
		})
	})
	if len(entries) == 0 && len(seqs) > 0 {
		o.logger.Warn("no abbreviations: fewer than two distinct inputs", "sequences", len(seqs))
	}
	return entries, nil
}

// printEntries 输出缩写
func (o *options) printEntries(w io.Writer, entries []entry) error {
	if o.json {
		if entries == nil {
			entries = []entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		fmt.Fprintln(w, e.Abbrev)
	}
	return nil
}
