// Package report 提供 bundleview 的输出能力。
// 当前实现支持 table 控制台格式、JSON 与 YAML 格式（含 JSON 文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"bundleview/internal/insight"
	"bundleview/internal/model"
)

// Format 表示输出格式。
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat 解析输出格式字符串。
func ParseFormat(value string) (Format, error) {
	switch value {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, allowed values: table, json, yaml", value)
	}
}

// Print 按指定格式输出任意结构。table 格式只适用于 AnalysisResult，其他类型退化为 JSON。
func Print(writer io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		return PrintJSON(writer, data)
	case FormatYAML:
		return PrintYAML(writer, data)
	default:
		if result, ok := data.(model.AnalysisResult); ok {
			return PrintTable(writer, result)
		}
		return PrintJSON(writer, data)
	}
}

// newTable 创建统一风格的表格。
func newTable(writer io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

// PrintTable 使用表格展示分析结果。
func PrintTable(writer io.Writer, result model.AnalysisResult) error {
	if _, err := fmt.Fprintf(
		writer,
		"TOTAL SIZE\t%s\nCOMPRESSED (EST.)\t%s\nMODULES\t%d\nCHUNKS\t%d\nFILES\t%d\nLOAD TIME\t%s\n\n",
		insight.FormatSize(result.TotalSize),
		insight.FormatSize(int64(result.TotalCompressedSize)),
		len(result.Modules),
		len(result.Chunks),
		result.Metadata.FileCount,
		formatLoad(result.Stats.Load),
	); err != nil {
		return err
	}

	if len(result.Stats.ByKind) > 0 {
		table := newTable(writer, []string{"TYPE", "COUNT", "SIZE", "SHARE"})
		for _, item := range result.Stats.ByKind {
			table.Append([]string{
				string(item.Kind),
				strconv.Itoa(item.Count),
				insight.FormatSize(item.Size),
				formatPercentage(item.Percentage),
			})
		}
		table.Render()
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if len(result.Stats.LargestModules) > 0 {
		table := newTable(writer, []string{"#", "MODULE", "TYPE", "SIZE", "SHARE"})
		for index, module := range result.Stats.LargestModules {
			table.Append([]string{
				strconv.Itoa(index + 1),
				module.Name,
				string(module.Type),
				insight.FormatSize(module.Size),
				formatPercentage(percentageOf(module.Size, result.TotalSize)),
			})
		}
		table.Render()
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if len(result.Stats.Chunks) > 0 {
		table := newTable(writer, []string{"CHUNK", "SIZE", "ENTRY", "SHARE"})
		for _, chunk := range result.Stats.Chunks {
			table.Append([]string{
				chunk.Name,
				insight.FormatSize(chunk.Size),
				strconv.FormatBool(chunk.IsEntry),
				formatPercentage(chunk.Percentage),
			})
		}
		table.Render()
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if len(result.Insights) > 0 {
		table := newTable(writer, []string{"SEVERITY", "IMPACT", "CATEGORY", "INSIGHT", "SAVINGS"})
		for _, item := range result.Insights {
			savings := "-"
			if item.EstimatedSavingsBytes != nil {
				savings = insight.FormatSize(int64(*item.EstimatedSavingsBytes))
			}
			table.Append([]string{
				string(item.Severity),
				string(item.Impact),
				string(item.Category),
				item.Description,
				savings,
			})
		}
		table.Render()
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if len(result.Errors) > 0 {
		table := newTable(writer, []string{"ERROR FILE", "MESSAGE"})
		for _, item := range result.Errors {
			table.Append([]string{item.Name, item.Error})
		}
		table.Render()
	}

	return nil
}

// PrintJSON 把结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintYAML 把结果按 YAML 输出到任意 writer。
func PrintYAML(writer io.Writer, data any) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

func formatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

func percentageOf(value int64, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}

// formatLoad 以 3G / 4G 两档展示估算加载耗时，不足 1 秒时以毫秒展示。
func formatLoad(estimate model.LoadEstimate) string {
	if estimate.Network3G < 1 {
		return fmt.Sprintf("%.0fms (3G) / %.0fms (4G)", estimate.Network3G*1000, estimate.Network4G*1000)
	}
	return fmt.Sprintf("%.1fs (3G) / %.1fs (4G)", estimate.Network3G, estimate.Network4G)
}
