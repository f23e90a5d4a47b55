package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"sol-token-api/internal/config"
	"sol-token-api/internal/handler"
	"sol-token-api/internal/logic/keypair"
	"sol-token-api/internal/pkg/logger"
	"sol-token-api/internal/response"
	"sol-token-api/internal/svc"
	"sol-token-api/internal/types"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"
)

var (
	configFile = flag.String("f", "etc/api.yaml", "the config file")
	keygen     = flag.Bool("keygen", false, "print one keypair to stdout and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	if *keygen {
		os.Exit(runKeygen())
	}

	var c config.ApiConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.Logger.ToLogOption()); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	server := rest.MustNewServer(c.RestConf)
	handler.RegisterHandlers(server, serviceContext)

	sg := zerosvc.NewServiceGroup()
	defer sg.Stop()
	sg.Add(server)

	logger.Infof("Starting http server at %s:%d", c.Host, c.Port)

	// 阻塞直到收到退出信号（SIGTERM 由 go-zero proc 处理）
	sg.Start()
	logger.Infof("Shutting down services...")
}

// runKeygen 离线生成一个密钥对，输出与 POST /keypair 相同的响应体
func runKeygen() int {
	logx.Disable()

	g := keypair.NewGenerator(nil)
	resp, err := g.CreateKeypair(context.Background())
	_, body := response.Build(resp, types.KeypairResp{}, err)
	if err == nil {
		// 自检：secret 必须能还原出同一个公钥
		kp, rerr := keypair.Restore(resp.Secret)
		if rerr != nil || kp.Pubkey.String() != resp.Pubkey {
			fmt.Fprintf(os.Stderr, "keypair self-check failed: %v\n", rerr)
			return 1
		}
		kp.Wipe()
	}

	out, _ := json.MarshalIndent(body, "", "  ")
	fmt.Println(string(out))
	if err != nil {
		return 1
	}
	return 0
}
