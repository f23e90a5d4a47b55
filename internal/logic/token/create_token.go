package token

import (
	"context"

	"sol-token-api/internal/pkg/xerr"
	apitypes "sol-token-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// CreateToken 处理 POST /token/create：校验请求并构造未签名的 InitializeMint 指令
func (b *Builder) CreateToken(ctx context.Context, req *apitypes.CreateTokenReq) (apitypes.CreateTokenResp, error) {
	ix, err := b.BuildMintInit(req)
	if err != nil {
		if xerr.IsCallerError(err) {
			logx.WithContext(ctx).Infof("[Token:Create] rejected: %v", err)
		} else {
			logx.WithContext(ctx).Errorf("[Token:Create] build failed: %v", err)
		}
		return apitypes.EmptyCreateTokenResp(), err
	}

	resp := ToCreateTokenResp(ix)
	logx.WithContext(ctx).Infof("[Token:Create] mint=%s program=%s decimals=%d",
		req.Mint, resp.ProgramID, req.Decimals)
	return resp, nil
}
