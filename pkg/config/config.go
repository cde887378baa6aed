// Package config 加载命令行工具的YAML配置
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/miajio/abbrev/pkg/participle"
)

// Config 配置
type Config struct {
	Mode      string                 `yaml:"mode"`      // 分词模式 path|rune|word
	Separator string                 `yaml:"separator"` // 路径分隔符
	Dict      []string               `yaml:"dict"`      // 词语模式的gse词典文件
	Words     []participle.DictEntry `yaml:"words"`     // 词语模式的用户词条
	DB        DBConfig               `yaml:"db"`
	Log       LogConfig              `yaml:"log"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Dir        string        `yaml:"dir"`         // badger目录
	GCInterval time.Duration `yaml:"gc_interval"` // GC间隔
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Mode:      participle.ModePath,
		Separator: string(filepath.Separator),
		DB: DBConfig{
			GCInterval: time.Minute * 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath 默认配置文件路径 ~/.abbrev/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".abbrev", "config.yaml"), nil
}

// Load 加载配置文件, 文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Mode {
	case participle.ModePath:
		if c.Separator == "" {
			return fmt.Errorf("separator is required in path mode")
		}
	case participle.ModeRune, participle.ModeWord:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.DB.GCInterval < 0 {
		return fmt.Errorf("db.gc_interval must not be negative")
	}
	return nil
}

// Tokenizer 按配置创建分词器
func (c *Config) Tokenizer() (participle.Tokenizer, error) {
	return participle.New(c.Mode, c.Separator, c.Dict, c.Words)
}
