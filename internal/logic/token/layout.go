package token

import (
	"github.com/blocto/solana-go-sdk/common"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"github.com/near/borsh-go"
)

// InitializeMintDataLength = tag(1) + decimals(1) + mint_authority(32) + freeze_authority option tag(1)
const InitializeMintDataLength = 1 + 1 + 32 + 1

// initializeMintData InitializeMint 指令数据布局：
//
//	#0       指令标识（InitializeMint = 0）
//	#1       decimals
//	#2..33   mint authority
//	#34      freeze authority 是否存在（0 = None，1 = Some，后接 32 字节）
//
// borsh 对指针的编码恰好是 Option<T>，与链上 COption<Pubkey> 的打包方式一致。
type initializeMintData struct {
	Instruction     uint8
	Decimals        uint8
	MintAuthority   common.PublicKey
	FreezeAuthority *common.PublicKey
}

func encodeInitializeMint(decimals uint8, mintAuthority common.PublicKey, freezeAuthority *common.PublicKey) ([]byte, error) {
	return borsh.Serialize(initializeMintData{
		Instruction:     uint8(sdktoken.InstructionInitializeMint),
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	})
}
