package config

import (
	"fmt"

	"sol-token-api/internal/consts"
	"sol-token-api/internal/pkg/logger"
	"sol-token-api/internal/pkg/types"

	"github.com/zeromicro/go-zero/rest"
)

type LogConfig struct {
	Format   string `json:",default=console,options=console|json"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:",optional"`                             // 日志目录（为空时输出到 stdout）
	Level    string `json:",default=info"`                         // 日志级别：debug / info / warn / error
	Compress bool   `json:",optional"`                             // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// TokenConfig 指令构造相关配置
type TokenConfig struct {
	// 目标 token 程序：spl-token（默认）或 token-2022，二者 InitializeMint 布局一致
	Program string `json:",default=spl-token,options=spl-token|token-2022"`
}

// ProgramID 返回配置对应的程序地址
func (c *TokenConfig) ProgramID() (types.Pubkey, error) {
	switch c.Program {
	case "", consts.TokenProgramNameSPL:
		return consts.TokenProgram, nil
	case consts.TokenProgramName2022:
		return consts.TokenProgram2022, nil
	default:
		return types.Pubkey{}, fmt.Errorf("unknown token program %q", c.Program)
	}
}

// ApiConfig 是主配置结构体，用于驱动 HTTP 服务
type ApiConfig struct {
	rest.RestConf

	Logger LogConfig   `json:",optional"` // 日志配置
	Token  TokenConfig `json:",optional"` // 指令构造配置
}
