package types

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
)

const PubkeyLength = 32

type Pubkey [PubkeyLength]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Equals(other Pubkey) bool {
	return p == other
}

func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// ToSDK 转换为 solana-go-sdk 的 PublicKey，二者内存布局一致
func (p Pubkey) ToSDK() common.PublicKey {
	return common.PublicKey(p)
}

// TryPubkeyFromBase58 解析 base58 字符串为 Pubkey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (Pubkey, error) {
	if s == "" {
		return Pubkey{}, fmt.Errorf("empty base58 pubkey")
	}
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	return PubkeyFromBytes(data)
}

// PubkeyFromBase58 仅用于常量初始化，输入非法时 panic
func PubkeyFromBase58(s string) Pubkey {
	p, err := TryPubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}

func PubkeyFromBytes(data []byte) (Pubkey, error) {
	if len(data) != PubkeyLength {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want %d", len(data), PubkeyLength)
	}
	var p Pubkey
	copy(p[:], data)
	return p, nil
}

func PubkeyFromSDK(pk common.PublicKey) Pubkey {
	return Pubkey(pk)
}
