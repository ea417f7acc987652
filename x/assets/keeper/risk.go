package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/x/assets/types"
)

// SetRiskMultiplier stores the risk multiplier of a symbol.
func (k Keeper) SetRiskMultiplier(ctx context.Context, symbol string, multiplier uint64) error {
	if err := types.ValidateSymbol(symbol); err != nil {
		return err
	}
	if err := types.ValidateRiskMultiplier(multiplier); err != nil {
		return err
	}

	if err := k.RiskMultipliers.Set(ctx, symbol, multiplier); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRiskMultiplierSet,
		sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		sdk.NewAttribute(types.AttributeKeyMultiplier, strconv.FormatUint(multiplier, 10)),
	))
	return nil
}

// SetAssetClassEnabled switches an asset class on or off.
func (k Keeper) SetAssetClassEnabled(ctx context.Context, class types.AssetClass, enabled bool) error {
	if err := class.Validate(); err != nil {
		return err
	}
	if err := k.AssetClasses.Set(ctx, class.String(), enabled); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAssetClassToggled,
		sdk.NewAttribute(types.AttributeKeyAssetClass, class.String()),
		sdk.NewAttribute(types.AttributeKeyEnabled, strconv.FormatBool(enabled)),
	))
	return nil
}
