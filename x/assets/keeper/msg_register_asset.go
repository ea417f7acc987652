package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/util"
	"github.com/parametric-cover/cover-node/x/assets/types"
)

// RegisterAsset adds a new fungible token contract to the registry, enabled.
func (k Keeper) RegisterAsset(ctx context.Context, caller string, asset types.AssetRegistration) error {
	if err := asset.ValidateBasic(); err != nil {
		return err
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}

	// A contract may not alias an account that already has authority over the registry or the pooled funds.
	for _, protected := range []string{caller, params.Admin, k.treasury} {
		if util.SamePrincipal(asset.Contract, protected) {
			return types.ErrInvalidAddress.Wrapf("contract %s refers to a protected account", asset.Contract)
		}
	}

	storageKey := types.GetAssetStorageKey(asset.Contract)
	has, err := k.Assets.Has(ctx, storageKey)
	if err != nil {
		return err
	}
	if has {
		return types.ErrAlreadyRegistered.Wrapf("contract %s", asset.Contract)
	}

	asset.Contract = types.NormalizeContract(asset.Contract)
	asset.Enabled = true
	if err := k.Assets.Set(ctx, storageKey, asset); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAssetRegistered,
		sdk.NewAttribute(types.AttributeKeyContract, asset.Contract),
		sdk.NewAttribute(types.AttributeKeySymbol, asset.Symbol),
		sdk.NewAttribute(types.AttributeKeyDecimals, strconv.FormatUint(uint64(asset.Decimals), 10)),
	))
	k.logger.Info("asset registered", "contract", asset.Contract, "symbol", asset.Symbol)

	return nil
}
