package types

import (
	"math/rand"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyBase58RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	samples := []Pubkey{{}, {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}}
	for i := 0; i < 256; i++ {
		var p Pubkey
		r.Read(p[:])
		samples = append(samples, p)
	}

	for _, p := range samples {
		decoded, err := TryPubkeyFromBase58(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	}
}

func TestTryPubkeyFromBase58_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"invalid chars": "not-base58!!",
		"zero char":     "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl",
		"too short":     base58.Encode(make([]byte, 31)),
		"too long":      base58.Encode(append([]byte{1}, make([]byte, 32)...)),
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := TryPubkeyFromBase58(input)
			assert.Error(t, err)
		})
	}
}

func TestPubkeyFromBase58_Panics(t *testing.T) {
	assert.Panics(t, func() { PubkeyFromBase58("bad!") })
	assert.NotPanics(t, func() { PubkeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA") })
}

func TestPubkeySDKConversion(t *testing.T) {
	p := PubkeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	assert.Equal(t, common.TokenProgramID, p.ToSDK())
	assert.Equal(t, p, PubkeyFromSDK(common.TokenProgramID))
	assert.Equal(t, common.TokenProgramID.ToBase58(), p.String())
	assert.False(t, p.IsZero())
	assert.True(t, Pubkey{}.IsZero())
}
