package tools

import (
	"sol-token-api/internal/consts"
	"sol-token-api/internal/pkg/types"
)

// IsSPLToken 判断一个 ProgramId 是否为标准的 SPL Token 程序。
// 支持 Token v1（Tokenkeg...）和 Token-2022（Tokenz...）
func IsSPLToken(programId string) bool {
	return programId == consts.TokenProgramStr || programId == consts.TokenProgram2022Str
}

func IsSPLTokenProgram(programId types.Pubkey) bool {
	return programId == consts.TokenProgram || programId == consts.TokenProgram2022
}

// IsValidMintDecimals decimals 是否能放入链上 Mint 的 u8 字段
func IsValidMintDecimals(decimals int64) bool {
	return decimals >= 0 && decimals <= consts.MaxMintDecimals
}
