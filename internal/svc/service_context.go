package svc

import (
	"crypto/rand"

	"sol-token-api/internal/config"
	"sol-token-api/internal/logic/keypair"
	"sol-token-api/internal/logic/token"
	"sol-token-api/internal/pkg/logger"
)

// ServiceContext 包含 HTTP 服务资源；所有成员构造后只读，可被并发请求共享
type ServiceContext struct {
	Config   config.ApiConfig
	Keypairs *keypair.Generator
	Tokens   *token.Builder
}

// NewServiceContext 创建一个新的服务上下文
func NewServiceContext(c config.ApiConfig) (*ServiceContext, error) {
	programID, err := c.Token.ProgramID()
	if err != nil {
		logger.Errorf("token 程序配置无效: %v", err)
		return nil, err
	}

	ctx := &ServiceContext{
		Config:   c,
		Keypairs: keypair.NewGenerator(rand.Reader),
		Tokens:   token.NewBuilder(programID),
	}

	logger.Infof("服务上下文初始化完成: token program=%s", programID)
	return ctx, nil
}
