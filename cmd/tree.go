package cmd

import (
	"github.com/spf13/cobra"

	"bundleview/internal/hierarchy"
	"bundleview/internal/report"
)

// newTreeCmd 创建 tree 子命令，输出按路径分组的模块层级。
// table 格式下输出缩进文本，json/yaml 格式下输出完整树结构。
func newTreeCmd(a *app) *cobra.Command {
	var depth int

	treeCmd := &cobra.Command{
		Use:   "tree [path...]",
		Short: "按路径展示模块层级与聚合体积",
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

			root := hierarchy.Build(result.Modules)
			if format == report.FormatTable {
				return report.PrintTree(cmd.OutOrStdout(), root, depth)
			}
			return report.Print(cmd.OutOrStdout(), format, root)
		},
	}

	treeCmd.Flags().IntVar(&depth, "depth", 0, "文本输出的最大深度，0 表示不限")
	return treeCmd
}
