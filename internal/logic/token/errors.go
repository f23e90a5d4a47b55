package token

import "sol-token-api/internal/pkg/xerr"

var (
	ErrInvalidMintAuthority = xerr.NewBadRequest("invalid mintAuthority")
	ErrInvalidMint          = xerr.NewBadRequest("invalid mint")
	ErrInvalidDecimals      = xerr.NewBadRequest("invalid decimals")
	ErrConstructionFailed   = xerr.NewInternal("instruction construction failed")
)
