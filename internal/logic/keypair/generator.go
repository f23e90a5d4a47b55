package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"sol-token-api/internal/pkg/types"
	"sol-token-api/internal/pkg/xerr"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

// SecretLength ed25519 私钥长度：32 字节 seed + 32 字节公钥
const SecretLength = ed25519.PrivateKeySize

var (
	ErrEntropy       = xerr.NewInternal("entropy source failure")
	ErrInvalidSecret = errors.New("invalid secret key")
)

// Keypair 单次请求内生成的密钥对，不落盘、不缓存
type Keypair struct {
	Pubkey types.Pubkey
	Secret [SecretLength]byte
}

// KeypairView 对外输出形式，均为 base58 字符串
type KeypairView struct {
	Pubkey string
	Secret string
}

// Generator 负责生成密钥对。
// 熵源可注入（默认 crypto/rand.Reader），测试时传入确定性 reader。
type Generator struct {
	entropy io.Reader
}

func NewGenerator(entropy io.Reader) *Generator {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{entropy: entropy}
}

// Generate 从熵源读取 32 字节 seed 并派生 ed25519 密钥对
func (g *Generator) Generate() (*Keypair, error) {
	seed := make([]byte, ed25519.SeedSize)
	defer clear(seed)

	if _, err := io.ReadFull(g.entropy, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return fromSeed(seed)
}

// Restore 从 base58 编码的 64 字节 secret 还原密钥对，并校验其中的公钥与 seed 派生结果一致
func Restore(secret string) (*Keypair, error) {
	raw, err := base58.Decode(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	defer clear(raw)

	if len(raw) != SecretLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSecret, len(raw), SecretLength)
	}

	kp, err := fromSeed(raw[:ed25519.SeedSize])
	if err != nil {
		return nil, err
	}
	if string(kp.Pubkey[:]) != string(raw[ed25519.SeedSize:]) {
		kp.Wipe()
		return nil, fmt.Errorf("%w: public key does not match seed", ErrInvalidSecret)
	}
	return kp, nil
}

func fromSeed(seed []byte) (*Keypair, error) {
	account, err := sdktypes.AccountFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	defer clear(account.PrivateKey)

	kp := &Keypair{Pubkey: types.PubkeyFromSDK(account.PublicKey)}
	copy(kp.Secret[:], account.PrivateKey)
	return kp, nil
}

// View 编码为 base58 字符串；secret 为完整的 64 字节（seed 与公钥拼接），可直接还原 signer
func (kp *Keypair) View() KeypairView {
	return KeypairView{
		Pubkey: kp.Pubkey.String(),
		Secret: base58.Encode(kp.Secret[:]),
	}
}

// Wipe 清零私钥材料
func (kp *Keypair) Wipe() {
	clear(kp.Secret[:])
}

// GenerateView 生成并立即编码，原始私钥字节在返回前清零
func (g *Generator) GenerateView() (KeypairView, error) {
	kp, err := g.Generate()
	if err != nil {
		return KeypairView{}, err
	}
	defer kp.Wipe()
	return kp.View(), nil
}
