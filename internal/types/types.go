package types

type KeypairResp struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// CreateTokenReq 字段在结构层面均为可选，缺失与格式错误统一由 token 逻辑按字段顺序报告
type CreateTokenReq struct {
	MintAuthority string `json:"mintAuthority,optional"`
	Mint          string `json:"mint,optional"`
	Decimals      int64  `json:"decimals,default=9"`
}

type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type CreateTokenResp struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []AccountMeta `json:"accounts"`
	InstructionData string        `json:"instruction_data"`
}

// EmptyCreateTokenResp 失败时返回的空数据，accounts 序列化为 [] 而非 null
func EmptyCreateTokenResp() CreateTokenResp {
	return CreateTokenResp{Accounts: []AccountMeta{}}
}
