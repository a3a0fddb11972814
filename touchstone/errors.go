package touchstone

import (
	"errors"
	"fmt"
)

// 格式错误种类，配合 errors.Is 使用
var (
	ErrPortCount     = errors.New("cannot determine port count")
	ErrMissingHeader = errors.New("missing header")
	ErrHeader        = errors.New("unexpected header format")
	ErrUnit          = errors.New("unknown frequency unit")
	ErrFormat        = errors.New("unknown parameter format")
	ErrNoData        = errors.New("no numeric data")
	ErrNumber        = errors.New("invalid number")
)

// FormatError 文件格式错误
type FormatError struct {
	Path string // 文件名
	Line int    // 出错行号, 0 表示未知
	Kind error  // 错误种类
	Msg  string // 附加信息
	Err  error  // 底层错误
}

func (e *FormatError) Error() string {
	s := e.Kind.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("touchstone: %s:%d: %s", e.Path, e.Line, s)
	case e.Path != "":
		return fmt.Sprintf("touchstone: %s: %s", e.Path, s)
	}
	return "touchstone: " + s
}

// Unwrap 同时暴露错误种类和底层错误
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func formatErr(path string, line int, kind error, msg string) *FormatError {
	return &FormatError{Path: path, Line: line, Kind: kind, Msg: msg}
}
