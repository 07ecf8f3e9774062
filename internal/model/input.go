package model

// InputFile 表示一个待分析的内存文件。
type InputFile struct {
	Name    string
	Content []byte
}

// Text 返回文件内容的字符串形式。
func (f InputFile) Text() string {
	return string(f.Content)
}

// Size 返回文件字节长度。
func (f InputFile) Size() int64 {
	return int64(len(f.Content))
}
