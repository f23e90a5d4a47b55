package handler

import (
	"net/http"

	"sol-token-api/internal/response"
	"sol-token-api/internal/svc"
	"sol-token-api/internal/types"
)

// KeypairHandler POST /keypair，无需请求体
func KeypairHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svcCtx.Keypairs.CreateKeypair(r.Context())
		response.Write(r.Context(), w, resp, types.KeypairResp{}, err)
	}
}
