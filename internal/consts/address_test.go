package consts

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/stretchr/testify/assert"
)

// 本地常量必须与 SDK 内置的程序地址一致
func TestAddressesMatchSDK(t *testing.T) {
	assert.Equal(t, common.SystemProgramID, SystemProgram.ToSDK())
	assert.Equal(t, common.TokenProgramID, TokenProgram.ToSDK())
	assert.Equal(t, common.SPLAssociatedTokenAccountProgramID, AssociatedTokenProgram.ToSDK())
	assert.Equal(t, common.SysVarRentPubkey, SysVarRent.ToSDK())
	assert.NotEqual(t, TokenProgram, TokenProgram2022)
}
