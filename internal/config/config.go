// Package config 负责加载 bundleview 的运行配置。
// 优先级：命令行参数 > 环境变量（BUNDLEVIEW_*）> 配置文件 > 默认值。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix 是环境变量前缀。
const EnvPrefix = "BUNDLEVIEW"

// Config 是 bundleview 的完整配置。
type Config struct {
	Workers  int    `mapstructure:"workers"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log_level"`
	Top      int    `mapstructure:"top"`
}

// SetDefaults 在 viper 实例上注册默认值。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("format", "table")
	v.SetDefault("output", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("top", 10)
}

// New 创建带默认值、环境变量绑定和配置文件搜索路径的 viper 实例。
// configFile 为空时依次在当前目录和 $HOME/.config/bundleview 中查找 bundleview.yaml。
func New(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("bundleview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bundleview"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load 读取 .env 与配置文件并解码为 Config。
// 配置文件不存在不是错误；显式指定的文件不存在或内容非法时返回错误。
func Load(v *viper.Viper) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile 加载当前目录下的 .env（如果存在），已存在的环境变量不会被覆盖。
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("load .env file: %w", err)
	}
	return nil
}

// Validate 校验配置取值。
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return errors.New("workers must be greater than 0")
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q, allowed values: table, json, yaml", c.Format)
	}

	if c.Top < 0 {
		return errors.New("top must not be negative")
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level 解析日志级别。
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
