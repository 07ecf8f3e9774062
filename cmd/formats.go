package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bundleview/internal/formats"
)

// newFormatsCmd 创建 formats 子命令。
// 命令用于展示文件类型、对应后缀以及负责解析的格式。
func newFormatsCmd(registry *formats.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "展示可识别的文件类型及解析器",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "KIND\tEXTENSIONS\tPARSER"); err != nil {
				return err
			}

			for _, item := range registry.Kinds() {
				extensions := strings.Join(item.Extensions, ", ")
				if extensions == "" {
					extensions = "*"
				}
				parser := item.Parser
				if parser == "" {
					parser = "(skipped)"
				}
				if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", item.Kind, extensions, parser); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
