package response

import (
	"context"
	"net/http"

	"sol-token-api/internal/pkg/xerr"

	"github.com/zeromicro/go-zero/rest/httpx"
)

const internalErrorMsg = "internal error"

// Envelope 统一响应结构；Success 为 false 时 Data 必须是空值，不泄露部分结果
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// Build 根据 err 生成状态码与响应体。
// 调用方错误返回 400 并附带错误信息；其余错误一律 500，细节只写日志。
func Build[T any](data T, empty T, err error) (int, Envelope[T]) {
	if err == nil {
		return http.StatusOK, Envelope[T]{Success: true, Data: data}
	}

	code := xerr.StatusOf(err)
	msg := internalErrorMsg
	if xerr.IsCallerError(err) {
		msg = err.Error()
	}
	return code, Envelope[T]{Success: false, Data: empty, Error: msg}
}

// Write 写出 JSON 响应
func Write[T any](ctx context.Context, w http.ResponseWriter, data T, empty T, err error) {
	code, body := Build(data, empty, err)
	httpx.WriteJsonCtx(ctx, w, code, body)
}
