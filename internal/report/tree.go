package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"bundleview/internal/insight"
	"bundleview/internal/model"
)

// PrintTree 以缩进文本展示层级树，子节点按聚合体积降序，depth <= 0 表示不限深度。
func PrintTree(writer io.Writer, root *model.HierarchyNode, depth int) error {
	if root == nil {
		_, err := fmt.Fprintln(writer, "(no modules)")
		return err
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	if err := printNode(tw, root, 0, depth); err != nil {
		return err
	}
	return tw.Flush()
}

func printNode(writer io.Writer, node *model.HierarchyNode, level int, depth int) error {
	if _, err := fmt.Fprintf(writer, "%s%s\t%s\n", strings.Repeat("  ", level), node.Label, insight.FormatSize(node.Value())); err != nil {
		return err
	}

	if depth > 0 && level+1 >= depth {
		return nil
	}

	children := append([]*model.HierarchyNode(nil), node.Children...)
	sort.SliceStable(children, func(i int, j int) bool {
		return children[i].Value() > children[j].Value()
	})

	for _, child := range children {
		if err := printNode(writer, child, level+1, depth); err != nil {
			return err
		}
	}
	return nil
}
