package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/spf13/cobra"

	"bundleview/internal/formats"
)

// newMetafileCmd 创建 metafile 子命令，使用 esbuild 自带的分析器输出 metafile 报告。
func newMetafileCmd() *cobra.Command {
	var verbose bool

	metafileCmd := &cobra.Command{
		Use:   "metafile [file]",
		Short: "使用 esbuild 分析 metafile 并输出文本报告",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read metafile: %w", err)
			}

			var meta formats.Metafile
			if err := json.Unmarshal(content, &meta); err != nil {
				return fmt.Errorf("parse metafile: %w", err)
			}
			if len(meta.Outputs) == 0 {
				return fmt.Errorf("%s has no outputs, not an esbuild metafile", args[0])
			}

			text := api.AnalyzeMetafile(string(content), api.AnalyzeMetafileOptions{Verbose: verbose})
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	metafileCmd.Flags().BoolVar(&verbose, "verbose", false, "输出每个文件的 import 链")
	return metafileCmd
}
