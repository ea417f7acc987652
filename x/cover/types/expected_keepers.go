package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
)

// BankKeeper moves the native asset.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// TokenKeeper moves fungible tokens held by a token contract. Transfer
// reports false when the token declined the transfer without an error.
type TokenKeeper interface {
	Transfer(ctx context.Context, contract common.Address, amount uint64, from, to sdk.AccAddress, memo []byte) (bool, error)
	BalanceOf(ctx context.Context, contract common.Address, holder sdk.AccAddress) (uint64, error)
}

// OracleKeeper reads prices from an oracle contract.
type OracleKeeper interface {
	GetAssetPrice(ctx context.Context, oracle common.Address, symbol string) (uint64, error)
	GetLastUpdateBlock(ctx context.Context, oracle common.Address, symbol string) (uint64, error)
	IsPriceValid(ctx context.Context, oracle common.Address, symbol string) (bool, error)
}

// AssetsKeeper is the asset registry.
type AssetsKeeper interface {
	GetAsset(ctx context.Context, contract string) (assetstypes.AssetRegistration, error)
	IsAssetEnabled(ctx context.Context, contract string) bool
	IsSupported(ctx context.Context, class assetstypes.AssetClass) bool
	GetRiskMultiplier(ctx context.Context, symbol string) (uint64, error)
	ValidateSymbol(symbol string) error
}
