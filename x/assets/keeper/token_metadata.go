package keeper

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/parametric-cover/cover-node/x/assets/types"
)

// TokenMetadata reads the self-reported metadata of a registered token
// contract. It is bookkeeping only; pricing and claims use the registry record.
func (k Keeper) TokenMetadata(ctx context.Context, contract string) (types.TokenMetadata, error) {
	asset, err := k.GetAsset(ctx, contract)
	if err != nil {
		return types.TokenMetadata{}, err
	}
	addr := common.HexToAddress(asset.Contract)

	md := types.TokenMetadata{Contract: asset.Contract}
	if md.Name, err = k.tokenKeeper.Name(ctx, addr); err != nil {
		return types.TokenMetadata{}, types.ErrTokenMetadataFailed.Wrapf("name: %s", err)
	}
	if md.Symbol, err = k.tokenKeeper.Symbol(ctx, addr); err != nil {
		return types.TokenMetadata{}, types.ErrTokenMetadataFailed.Wrapf("symbol: %s", err)
	}
	if md.Decimals, err = k.tokenKeeper.Decimals(ctx, addr); err != nil {
		return types.TokenMetadata{}, types.ErrTokenMetadataFailed.Wrapf("decimals: %s", err)
	}
	if md.TotalSupply, err = k.tokenKeeper.TotalSupply(ctx, addr); err != nil {
		return types.TokenMetadata{}, types.ErrTokenMetadataFailed.Wrapf("total supply: %s", err)
	}
	// uri is optional on most token contracts
	if uri, err := k.tokenKeeper.TokenURI(ctx, addr); err == nil {
		md.URI = uri
	}

	return md, nil
}
