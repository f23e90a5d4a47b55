package keypair

import (
	"context"

	apitypes "sol-token-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// CreateKeypair 处理 POST /keypair，secret 不写入日志
func (g *Generator) CreateKeypair(ctx context.Context) (apitypes.KeypairResp, error) {
	view, err := g.GenerateView()
	if err != nil {
		logx.WithContext(ctx).Errorf("[Keypair:Create] generate failed: %v", err)
		return apitypes.KeypairResp{}, err
	}

	logx.WithContext(ctx).Infof("[Keypair:Create] pubkey=%s", view.Pubkey)
	return apitypes.KeypairResp{
		Pubkey: view.Pubkey,
		Secret: view.Secret,
	}, nil
}
