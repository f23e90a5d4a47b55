package consts

const (
	// DefaultMintDecimals 与 spl-token CLI 保持一致
	DefaultMintDecimals = 9

	// MaxMintDecimals Mint 的 decimals 字段在链上为 u8
	MaxMintDecimals = 255
)

// 可选的 token 程序名称（配置文件中使用）
const (
	TokenProgramNameSPL  = "spl-token"
	TokenProgramName2022 = "token-2022"
)
