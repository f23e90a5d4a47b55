package handler

import (
	"net/http"

	"sol-token-api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/keypair",
				Handler: KeypairHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/token/create",
				Handler: CreateTokenHandler(serverCtx),
			},
		},
	)
}
