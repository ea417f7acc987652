package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/x/assets/types"
)

// RevokeAsset disables a registered asset. Registrations are never removed.
func (k Keeper) RevokeAsset(ctx context.Context, contract string) error {
	asset, err := k.GetAsset(ctx, contract)
	if err != nil {
		return err
	}
	if !asset.Enabled {
		return types.ErrAssetAlreadyDisabled.Wrapf("contract %s", asset.Contract)
	}

	asset.Enabled = false
	if err := k.Assets.Set(ctx, types.GetAssetStorageKey(contract), asset); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAssetRevoked,
		sdk.NewAttribute(types.AttributeKeyContract, asset.Contract),
	))
	k.logger.Info("asset revoked", "contract", asset.Contract)

	return nil
}
