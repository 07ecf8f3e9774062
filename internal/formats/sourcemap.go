package formats

import (
	"encoding/json"
	"strconv"
	"unicode/utf16"

	"bundleview/internal/model"
)

// sourceMapBytesPerChar 是源码路径每个字符折算的字节数。
const sourceMapBytesPerChar = 2

// SourceMapParser 解析 source map，按 sources 列表生成模块。
//
// 注意：模块体积由 source 路径字符串长度估算（2 字节 / UTF-16 字符），
// 只是粗略代理值，并非真实源码字节数。
type SourceMapParser struct{}

// Name 返回格式名称。
func (p *SourceMapParser) Name() string {
	return "source-map"
}

// Kind 返回负责的文件类型。
func (p *SourceMapParser) Kind() model.Kind {
	return model.KindMap
}

// Parse 解析 source map 文件。
func (p *SourceMapParser) Parse(file model.InputFile) (Records, error) {
	if !json.Valid(file.Content) {
		return Records{}, &ParseError{File: file.Name, Format: p.Name(), Err: syntaxError(file.Content)}
	}

	var document struct {
		Sources []*string `json:"sources"`
	}
	if err := json.Unmarshal(file.Content, &document); err != nil {
		return Records{}, nil
	}

	modules := make([]model.Module, 0, len(document.Sources))
	for index, entry := range document.Sources {
		var source string
		if entry != nil {
			source = *entry
		}

		modules = append(modules, model.Module{
			ID:           "sourcemap-" + strconv.Itoa(index),
			Name:         source,
			Size:         estimateSourceSize(source),
			Path:         Segment(source),
			Dependencies: []string{},
			Type:         Classify(source),
		})
	}

	return Records{Modules: modules}, nil
}

// estimateSourceSize 按 UTF-16 长度估算体积。
func estimateSourceSize(source string) int64 {
	var units int64
	for _, r := range source {
		units += int64(utf16.RuneLen(r))
	}
	return units * sourceMapBytesPerChar
}
