package formats

import "bundleview/internal/model"

// ScriptParser 把原始脚本文件整体视为一个模块，不做依赖提取。
type ScriptParser struct{}

// Name 返回格式名称。
func (p *ScriptParser) Name() string {
	return "raw-script"
}

// Kind 返回负责的文件类型。
func (p *ScriptParser) Kind() model.Kind {
	return model.KindScript
}

// Parse 为输入文件生成唯一的模块记录，不会失败。
func (p *ScriptParser) Parse(file model.InputFile) (Records, error) {
	return Records{
		Modules: []model.Module{{
			ID:           "js-" + file.Name,
			Name:         file.Name,
			Size:         file.Size(),
			Path:         []string{file.Name},
			Dependencies: []string{},
			Type:         model.KindScript,
		}},
	}, nil
}
