package formats

import (
	"encoding/json"
	"errors"
	"strconv"

	"bundleview/internal/model"
)

// statsEnvelope 只探测顶层字段，具体形态在后续按顺序尝试解码。
type statsEnvelope struct {
	Modules json.RawMessage `json:"modules"`
	Chunks  json.RawMessage `json:"chunks"`
	Inputs  json.RawMessage `json:"inputs"`
	Outputs json.RawMessage `json:"outputs"`
}

// statsModule 对应 webpack stats 中 modules 数组的单个元素。
type statsModule struct {
	ID           flexID    `json:"id"`
	Name         string    `json:"name"`
	Identifier   string    `json:"identifier"`
	Size         *float64  `json:"size"`
	GzipSize     *float64  `json:"gzipSize"`
	Dependencies []flexRef `json:"dependencies"`
	External     bool      `json:"external"`
	Chunks       []flexRef `json:"chunks"`
}

// statsChunk 对应 chunks 数组的单个元素。
type statsChunk struct {
	ID       flexID    `json:"id"`
	Name     string    `json:"name"`
	Size     *float64  `json:"size"`
	GzipSize *float64  `json:"gzipSize"`
	Modules  []flexRef `json:"modules"`
	Entry    bool      `json:"entry"`
}

// StatsParser 解析打包器导出的 stats JSON。
//
// 依次尝试三种形态：
// - 顶层 modules 列表（webpack / bundle analyzer）
// - 顶层 chunks 列表
// - esbuild metafile（inputs + outputs）
//
// 顶层字段不是数组视为“未匹配”，继续尝试下一种；全部未匹配时不产生记录。
// 数组中个别条目字段类型不符时，该字段取默认值并记入 Records.Warnings。
type StatsParser struct{}

// Name 返回格式名称。
func (p *StatsParser) Name() string {
	return "bundler-stats"
}

// Kind 返回负责的文件类型。
func (p *StatsParser) Kind() model.Kind {
	return model.KindJSON
}

// Parse 解析 stats 文件。
func (p *StatsParser) Parse(file model.InputFile) (Records, error) {
	if !json.Valid(file.Content) {
		return Records{}, &ParseError{File: file.Name, Format: p.Name(), Err: syntaxError(file.Content)}
	}

	var envelope statsEnvelope
	if err := json.Unmarshal(file.Content, &envelope); err != nil {
		// 顶层不是对象，不属于任何已知形态。
		return Records{}, nil
	}

	if present(envelope.Modules) {
		if entries, warnings, ok := decodeEntries[statsModule](envelope.Modules, "modules"); ok {
			return Records{Modules: convertStatsModules(entries), Warnings: p.wrap(file, warnings)}, nil
		}
	}

	if present(envelope.Chunks) {
		if entries, warnings, ok := decodeEntries[statsChunk](envelope.Chunks, "chunks"); ok {
			return Records{Chunks: convertStatsChunks(entries), Warnings: p.wrap(file, warnings)}, nil
		}
	}

	if present(envelope.Inputs) && present(envelope.Outputs) {
		var metafile Metafile
		if err := json.Unmarshal(file.Content, &metafile); err == nil {
			return convertMetafile(&metafile), nil
		}
	}

	return Records{}, nil
}

// wrap 把条目级警告包装为带文件名的 ParseError。
func (p *StatsParser) wrap(file model.InputFile, warnings []error) []error {
	if len(warnings) == 0 {
		return nil
	}
	wrapped := make([]error, 0, len(warnings))
	for _, warning := range warnings {
		wrapped = append(wrapped, &ParseError{File: file.Name, Format: p.Name(), Err: warning})
	}
	return wrapped
}

// convertStatsModules 把 modules 列表转换为归一化模块。
func convertStatsModules(entries []statsModule) []model.Module {
	modules := make([]model.Module, 0, len(entries))
	for index, entry := range entries {
		raw := entry.Name
		if raw == "" {
			raw = entry.Identifier
		}

		module := model.Module{
			ID:             string(entry.ID),
			Name:           raw,
			Size:           byteCount(entry.Size),
			CompressedSize: gzipBytes(entry.GzipSize),
			Path:           Segment(raw),
			Dependencies:   refsToStrings(entry.Dependencies),
			IsExternal:     entry.External,
			Type:           Classify(raw),
		}
		if module.ID == "" {
			module.ID = synthesizedID("module", index)
		}
		if module.Name == "" {
			module.Name = "Module " + strconv.Itoa(index)
		}
		if len(entry.Chunks) > 0 {
			module.Chunk = string(entry.Chunks[0])
		}

		modules = append(modules, module)
	}
	return modules
}

// convertStatsChunks 把 chunks 列表转换为归一化 chunk。
func convertStatsChunks(entries []statsChunk) []model.Chunk {
	chunks := make([]model.Chunk, 0, len(entries))
	for index, entry := range entries {
		chunk := model.Chunk{
			ID:        string(entry.ID),
			Name:      entry.Name,
			Size:      byteCount(entry.Size),
			ModuleIDs: refsToStrings(entry.Modules),
			IsEntry:   entry.Entry,
		}
		if chunk.ID == "" {
			chunk.ID = synthesizedID("chunk", index)
		}
		if chunk.Name == "" {
			chunk.Name = "Chunk " + strconv.Itoa(index)
		}
		if compressed := gzipBytes(entry.GzipSize); compressed != nil {
			chunk.CompressedSize = *compressed
		} else {
			chunk.CompressedSize = float64(chunk.Size) * model.CompressedRatio
		}

		chunks = append(chunks, chunk)
	}
	return chunks
}

// gzipBytes 返回有效的压缩体积，缺失、0、负数或 NaN 都视为未提供。
func gzipBytes(value *float64) *float64 {
	if value == nil || !(*value > 0) {
		return nil
	}
	compressed := *value
	return &compressed
}

// syntaxError 返回内容无法解析为 JSON 的具体原因。
func syntaxError(content []byte) error {
	var discard any
	if err := json.Unmarshal(content, &discard); err != nil {
		return err
	}
	return errors.New("invalid json")
}
