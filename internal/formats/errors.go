package formats

import (
	"errors"
	"fmt"
)

// ErrSkipped 表示文件类型没有对应的解析器，调用方应忽略该文件。
var ErrSkipped = errors.New("no parser for file kind")

// ParseError 表示结构化内容无法解析。
type ParseError struct {
	File   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %s: %v", e.Format, e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
