package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bundleview/internal/report"
)

// newAnalyzeCmd 创建 analyze 子命令。
// 示例：
//
//	bundleview analyze dist/stats.json
//	bundleview analyze ./dist --format json --output result.json
func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [path...]",
		Short: "分析构建产物并输出体积统计与优化建议",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}

			service := a.newService()
			files, err := service.LoadPaths(args...)
			if err != nil {
				return err
			}

			result, err := service.Analyze(cmd.Context(), files)
			if err != nil {
				return err
			}

			if err := report.Print(cmd.OutOrStdout(), format, result); err != nil {
				return err
			}

			outputPath := strings.TrimSpace(a.cfg.Output)
			if outputPath == "" {
				return nil
			}
			if err := report.WriteJSONFile(outputPath, result); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "JSON exported to %s\n", outputPath)
			return nil
		},
	}
}
