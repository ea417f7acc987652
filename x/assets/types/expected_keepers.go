package types

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// TokenKeeper defines the read accessors of a fungible token contract used
// for registry bookkeeping.
type TokenKeeper interface {
	Name(ctx context.Context, contract common.Address) (string, error)
	Symbol(ctx context.Context, contract common.Address) (string, error)
	Decimals(ctx context.Context, contract common.Address) (uint32, error)
	TotalSupply(ctx context.Context, contract common.Address) (uint64, error)
	TokenURI(ctx context.Context, contract common.Address) (string, error)
}
