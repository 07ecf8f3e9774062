// Package formats 负责输入文件的类型识别、路径切分与格式解析。
package formats

import (
	"sort"

	"bundleview/internal/model"
)

// Records 是单个文件解析得到的模块与 chunk。
// Warnings 记录个别条目的字段问题，这些条目已按默认值处理，不影响其余记录。
type Records struct {
	Modules  []model.Module
	Chunks   []model.Chunk
	Warnings []error
}

// Parser 定义单格式解析器接口。
// 每个解析器只处理一种文件类型，不同文件之间的解析互不影响。
type Parser interface {
	// Name 返回格式名称（例如 bundler-stats、source-map）。
	Name() string
	// Kind 返回该解析器负责的文件类型。
	Kind() model.Kind
	// Parse 解析一个文件并返回归一化记录。
	Parse(file model.InputFile) (Records, error)
}

// KindDescriptor 用于对外展示文件类型、后缀及解析器。
type KindDescriptor struct {
	Kind       model.Kind
	Extensions []string
	Parser     string
}

// Registry 管理解析器注册与类型映射。
type Registry struct {
	parsers      []Parser
	parserByKind map[model.Kind]Parser
}

// NewRegistry 创建并注册全部内置解析器。
func NewRegistry() *Registry {
	parsers := []Parser{
		&StatsParser{},
		&SourceMapParser{},
		&ScriptParser{},
	}

	registry := &Registry{
		parsers:      parsers,
		parserByKind: make(map[model.Kind]Parser),
	}

	for _, parser := range parsers {
		registry.parserByKind[parser.Kind()] = parser
	}

	return registry
}

// ParserForFile 根据文件类型查找解析器。
func (r *Registry) ParserForFile(name string) (Parser, bool) {
	parser, ok := r.parserByKind[Classify(name)]
	return parser, ok
}

// Parse 按文件类型分发解析，没有解析器时返回 ErrSkipped。
func (r *Registry) Parse(file model.InputFile) (Records, error) {
	parser, ok := r.ParserForFile(file.Name)
	if !ok {
		return Records{}, ErrSkipped
	}
	return parser.Parse(file)
}

// Kinds 返回全部类型及其后缀，未注册解析器的类型 Parser 为空。
func (r *Registry) Kinds() []KindDescriptor {
	extensionsByKind := make(map[model.Kind][]string)
	for ext, kind := range kindByExt {
		extensionsByKind[kind] = append(extensionsByKind[kind], "."+ext)
	}

	kinds := []model.Kind{model.KindScript, model.KindStyle, model.KindJSON, model.KindMap, model.KindOther}
	result := make([]KindDescriptor, 0, len(kinds))
	for _, kind := range kinds {
		extensions := extensionsByKind[kind]
		sort.Strings(extensions)

		descriptor := KindDescriptor{Kind: kind, Extensions: extensions}
		if parser, ok := r.parserByKind[kind]; ok {
			descriptor.Parser = parser.Name()
		}
		result = append(result, descriptor)
	}

	return result
}
