package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/x/assets/types"
)

// UpdateAsset rewrites the symbol, decimals and enabled flag of a registered
// asset. A symbol or decimals value that fails validation keeps the stored
// value rather than failing the update.
func (k Keeper) UpdateAsset(ctx context.Context, contract, symbol string, decimals uint32, enabled bool) (types.AssetRegistration, error) {
	asset, err := k.GetAsset(ctx, contract)
	if err != nil {
		return types.AssetRegistration{}, err
	}

	if types.ValidateSymbol(symbol) == nil {
		asset.Symbol = symbol
	} else {
		k.logger.Debug("update kept stored symbol", "contract", asset.Contract, "rejected", symbol)
	}
	if types.ValidateDecimals(decimals) == nil {
		asset.Decimals = decimals
	} else {
		k.logger.Debug("update kept stored decimals", "contract", asset.Contract, "rejected", decimals)
	}
	asset.Enabled = enabled

	if err := k.Assets.Set(ctx, types.GetAssetStorageKey(contract), asset); err != nil {
		return types.AssetRegistration{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAssetUpdated,
		sdk.NewAttribute(types.AttributeKeyContract, asset.Contract),
		sdk.NewAttribute(types.AttributeKeySymbol, asset.Symbol),
		sdk.NewAttribute(types.AttributeKeyDecimals, strconv.FormatUint(uint64(asset.Decimals), 10)),
		sdk.NewAttribute(types.AttributeKeyEnabled, strconv.FormatBool(asset.Enabled)),
	))

	return asset, nil
}
