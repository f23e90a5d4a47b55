package xerr

import (
	"errors"
	"net/http"
)

// CodeError 携带 HTTP 状态码的哨兵错误，业务层用 fmt.Errorf("%w") 附加上下文
type CodeError struct {
	Code int
	Msg  string
}

func (e *CodeError) Error() string {
	return e.Msg
}

func NewBadRequest(msg string) *CodeError {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

func NewInternal(msg string) *CodeError {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// ErrInvalidRequest 请求体结构不合法（非 JSON 对象、字段类型错误等）
var ErrInvalidRequest = NewBadRequest("invalid request body")

// StatusOf 返回错误链上第一个 CodeError 的状态码；无法识别的错误一律视为内部错误
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// IsCallerError 是否为调用方输入错误（4xx）
func IsCallerError(err error) bool {
	code := StatusOf(err)
	return code >= 400 && code < 500
}
