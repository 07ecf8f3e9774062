// Package cmd 提供 bundleview 的命令行入口与子命令编排。
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundleview/internal/config"
	"bundleview/internal/formats"
	"bundleview/internal/session"
)

// app 保存命令之间共享的依赖，在 PersistentPreRunE 中完成初始化。
type app struct {
	registry   *formats.Registry
	viper      *viper.Viper
	configFile string
	cfg        *config.Config
	logger     zerolog.Logger
}

// newService 根据当前配置创建分析服务。
func (a *app) newService() *session.Service {
	return session.New(
		a.registry,
		session.WithWorkers(a.cfg.Workers),
		session.WithTop(a.cfg.Top),
		session.WithLogger(a.logger),
	)
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version, formats.NewRegistry())
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *formats.Registry) *cobra.Command {
	a := &app{registry: registry, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "bundleview",
		Short: "前端构建产物体积分析工具",
		Long: "bundleview 读取打包器 stats、esbuild metafile、source map 与脚本文件，\n" +
			"归一化为模块与 chunk，统计体积并给出优化建议。",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "配置文件路径，默认查找 ./bundleview.yaml")
	flags.Int("workers", 0, "并发解析 worker 数量，默认 CPU 核数")
	flags.String("format", "table", "输出格式: table、json 或 yaml")
	flags.String("output", "", "json 导出文件路径，为空时不导出")
	flags.Int("top", session.DefaultTop, "最大模块列表的行数")
	flags.String("log-level", "warn", "日志级别: debug、info、warn、error")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newFormatsCmd(registry))
	rootCmd.AddCommand(newAnalyzeCmd(a))
	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newMetafileCmd())

	return rootCmd
}

// setup 加载配置并初始化日志。只有显式设置的参数才会覆盖配置文件和环境变量。
func (a *app) setup(cmd *cobra.Command) error {
	a.viper = config.New(a.configFile)
	for key, flag := range map[string]string{
		"workers":   "workers",
		"format":    "format",
		"output":    "output",
		"top":       "top",
		"log_level": "log-level",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			a.viper.Set(key, f.Value.String())
		}
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}
