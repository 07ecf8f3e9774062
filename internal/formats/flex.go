package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flexID 兼容字符串与数字两种 ID 写法，零值、空串和 null 视为缺失。
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*f = flexID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if value, err := number.Float64(); err == nil && value == 0 {
		*f = ""
		return nil
	}
	*f = flexID(number.String())
	return nil
}

// flexRef 是对模块的引用，可以是 ID 本身，也可以是对象。
// 对象依次取 id、identifier、name，webpack 依赖对象再取 moduleIdentifier、moduleName、moduleId。
type flexRef string

func (f *flexRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*f = flexRef(text)
		return nil
	case len(data) == 0 || data[0] != '{':
		var number json.Number
		if err := json.Unmarshal(data, &number); err != nil {
			return err
		}
		*f = flexRef(number.String())
		return nil
	}

	var object struct {
		ID               flexID  `json:"id"`
		Identifier       string  `json:"identifier"`
		Name             string  `json:"name"`
		ModuleIdentifier string  `json:"moduleIdentifier"`
		ModuleName       string  `json:"moduleName"`
		ModuleID         flexRef `json:"moduleId"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}
	for _, candidate := range []string{
		string(object.ID),
		object.Identifier,
		object.Name,
		object.ModuleIdentifier,
		object.ModuleName,
		string(object.ModuleID),
	} {
		if candidate != "" {
			*f = flexRef(candidate)
			return nil
		}
	}
	*f = ""
	return nil
}

// refsToStrings 把引用列表转换为字符串切片，空引用被丢弃，结果永远非 nil。
func refsToStrings(refs []flexRef) []string {
	result := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		result = append(result, string(ref))
	}
	return result
}

// decodeEntries 逐条解码 JSON 数组。
//
// 注意：
// - raw 不是数组时 ok 为 false，表示形态不匹配
// - 单条记录中类型不符的字段取零值，记录本身保留，并产生一条警告
// - 记录不是对象时整条取零值
func decodeEntries[T any](raw json.RawMessage, field string) (entries []T, warnings []error, ok bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, false
	}

	entries = make([]T, 0, len(items))
	for index, item := range items {
		var entry T
		if err := json.Unmarshal(item, &entry); err == nil {
			entries = append(entries, entry)
			continue
		}

		entry, badFields, isObject := decodeFieldByField[T](item)
		entries = append(entries, entry)
		if !isObject {
			warnings = append(warnings, fmt.Errorf("%s[%d]: entry is not an object", field, index))
			continue
		}
		if len(badFields) == 0 {
			continue
		}
		warnings = append(warnings, fmt.Errorf("%s[%d]: invalid field(s) %s, defaulted", field, index, strings.Join(badFields, ", ")))
	}
	return entries, warnings, true
}

// decodeFieldByField 逐个字段解码对象，返回无法解码的字段名（按字母序）。
func decodeFieldByField[T any](item json.RawMessage) (T, []string, bool) {
	var entry T

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return entry, nil, false
	}

	badFields := make([]string, 0)
	for _, key := range sortedKeys(fields) {
		single, err := json.Marshal(map[string]json.RawMessage{key: fields[key]})
		if err != nil {
			badFields = append(badFields, key)
			continue
		}

		candidate := entry
		if err := json.Unmarshal(single, &candidate); err != nil {
			badFields = append(badFields, key)
			continue
		}
		entry = candidate
	}
	return entry, badFields, true
}

// byteCount 把可选的 JSON 数值转换为非负字节数，缺失时为 0。
func byteCount(value *float64) int64 {
	if value == nil || *value <= 0 || math.IsNaN(*value) {
		return 0
	}
	return int64(math.Round(*value))
}

// synthesizedID 生成 "<prefix>-<index>" 形式的兜底 ID。
func synthesizedID(prefix string, index int) string {
	return prefix + "-" + strconv.Itoa(index)
}

// present 判断原始字段是否存在且不为 null。
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
