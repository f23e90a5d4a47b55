package token

import (
	"fmt"
	"runtime/debug"

	"sol-token-api/internal/consts"
	"sol-token-api/internal/pkg/logger"
	"sol-token-api/internal/pkg/types"
	"sol-token-api/internal/tools"
	apitypes "sol-token-api/internal/types"

	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

// MintInitParams 校验通过后的 InitializeMint 参数，构造后不再修改
type MintInitParams struct {
	MintAuthority types.Pubkey
	Mint          types.Pubkey
	Decimals      uint8
}

// Builder 离线构造 token 程序指令，不访问链上节点，可并发使用
type Builder struct {
	programID types.Pubkey
}

func NewBuilder(programID types.Pubkey) *Builder {
	return &Builder{programID: programID}
}

// ParseMintInit 按字段顺序校验请求，遇到第一个错误即返回：
// mintAuthority → mint → decimals
func ParseMintInit(req *apitypes.CreateTokenReq) (MintInitParams, error) {
	mintAuthority, err := types.TryPubkeyFromBase58(req.MintAuthority)
	if err != nil {
		return MintInitParams{}, fmt.Errorf("%w: %v", ErrInvalidMintAuthority, err)
	}

	mint, err := types.TryPubkeyFromBase58(req.Mint)
	if err != nil {
		return MintInitParams{}, fmt.Errorf("%w: %v", ErrInvalidMint, err)
	}

	// decimals 在链上是 u8，超出范围直接拒绝，不做截断
	if !tools.IsValidMintDecimals(req.Decimals) {
		return MintInitParams{}, fmt.Errorf("%w: %d out of range [0, %d]", ErrInvalidDecimals, req.Decimals, consts.MaxMintDecimals)
	}

	return MintInitParams{
		MintAuthority: mintAuthority,
		Mint:          mint,
		Decimals:      uint8(req.Decimals),
	}, nil
}

// InitializeMint 按 token 程序的调用约定构造 InitializeMint 指令（freeze authority 恒为空）。
//
// 账户布局：
//
// #0 - Mint 账户（writable）
// #1 - Rent Sysvar（readonly）
func (b *Builder) InitializeMint(p MintInitParams) (ix sdktypes.Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[Token:InitializeMint] panic: %v, stack=%s", r, debug.Stack())
			ix = sdktypes.Instruction{}
			err = fmt.Errorf("%w: panic: %v", ErrConstructionFailed, r)
		}
	}()

	// 仅 Token / Token-2022 程序支持该布局
	if !tools.IsSPLTokenProgram(b.programID) {
		return sdktypes.Instruction{}, fmt.Errorf("%w: %s is not a token program", ErrConstructionFailed, b.programID)
	}

	data, err := encodeInitializeMint(p.Decimals, p.MintAuthority.ToSDK(), nil)
	if err != nil {
		return sdktypes.Instruction{}, fmt.Errorf("%w: %v", ErrConstructionFailed, err)
	}
	if len(data) != InitializeMintDataLength {
		return sdktypes.Instruction{}, fmt.Errorf("%w: unexpected data length %d", ErrConstructionFailed, len(data))
	}

	return sdktypes.Instruction{
		ProgramID: b.programID.ToSDK(),
		Accounts: []sdktypes.AccountMeta{
			{PubKey: p.Mint.ToSDK(), IsSigner: false, IsWritable: true},
			{PubKey: consts.SysVarRent.ToSDK(), IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

// BuildMintInit 校验 + 构造
func (b *Builder) BuildMintInit(req *apitypes.CreateTokenReq) (sdktypes.Instruction, error) {
	params, err := ParseMintInit(req)
	if err != nil {
		return sdktypes.Instruction{}, err
	}
	return b.InitializeMint(params)
}

// ToCreateTokenResp 将指令转换为传输格式，地址与数据均使用 base58
func ToCreateTokenResp(ix sdktypes.Instruction) apitypes.CreateTokenResp {
	accounts := make([]apitypes.AccountMeta, 0, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		accounts = append(accounts, apitypes.AccountMeta{
			Pubkey:     encodePubkey(meta.PubKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return apitypes.CreateTokenResp{
		ProgramID:       encodePubkey(ix.ProgramID),
		Accounts:        accounts,
		InstructionData: base58.Encode(ix.Data),
	}
}

func encodePubkey(pk common.PublicKey) string {
	return types.PubkeyFromSDK(pk).String()
}
