package handler

import (
	"fmt"
	"net/http"

	"sol-token-api/internal/pkg/xerr"
	"sol-token-api/internal/response"
	"sol-token-api/internal/svc"
	"sol-token-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CreateTokenHandler POST /token/create
// 先做结构校验（JSON 对象、字段类型），再交给 token 逻辑做字段级校验
func CreateTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateTokenReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Infof("[Token:Create] malformed body: %v", err)
			response.Write(r.Context(), w, types.EmptyCreateTokenResp(), types.EmptyCreateTokenResp(),
				fmt.Errorf("%w: %v", xerr.ErrInvalidRequest, err))
			return
		}

		resp, err := svcCtx.Tokens.CreateToken(r.Context(), &req)
		response.Write(r.Context(), w, resp, types.EmptyCreateTokenResp(), err)
	}
}
