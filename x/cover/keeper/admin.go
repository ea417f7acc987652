package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/parametric-cover/cover-node/util"
	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

func (k Keeper) updateParams(ctx context.Context, fn func(*types.Params) error) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Params{}, errors.Wrapf(err, "failed to get params")
	}
	if err := fn(&params); err != nil {
		return types.Params{}, err
	}
	if err := params.Validate(); err != nil {
		return types.Params{}, err
	}
	return params, k.Params.Set(ctx, params)
}

// SetOracle points the price cache at a new oracle contract.
func (k Keeper) SetOracle(ctx context.Context, oracle string) error {
	if !util.IsValidAddress(oracle, util.HEX) {
		return types.ErrInvalidAddress.Wrapf("oracle %q", oracle)
	}
	params, err := k.updateParams(ctx, func(p *types.Params) error {
		p.Oracle = common.HexToAddress(oracle).Hex()
		return nil
	})
	if err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOracleSet,
		sdk.NewAttribute(types.AttributeKeyOracle, params.Oracle),
	))
	k.logger.Info("oracle set", "oracle", params.Oracle)
	return nil
}

// SetDynamicPricing switches the premium formula.
func (k Keeper) SetDynamicPricing(ctx context.Context, enabled bool) error {
	_, err := k.updateParams(ctx, func(p *types.Params) error {
		p.DynamicPricing = enabled
		return nil
	})
	if err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePricingToggled,
		sdk.NewAttribute(types.AttributeKeyEnabled, strconv.FormatBool(enabled)),
	))
	return nil
}

// SetProtocolFee sets the protocol fee rate.
func (k Keeper) SetProtocolFee(ctx context.Context, feeBps uint64) error {
	if err := types.ValidateProtocolFee(feeBps); err != nil {
		return err
	}
	_, err := k.updateParams(ctx, func(p *types.Params) error {
		p.ProtocolFeeBps = feeBps
		return nil
	})
	if err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProtocolFeeSet,
		sdk.NewAttribute(types.AttributeKeyFeeBps, strconv.FormatUint(feeBps, 10)),
	))
	return nil
}

// EmergencyWithdraw moves amount of an asset out of the treasury to
// recipient. An amount of zero withdraws the whole balance.
func (k Keeper) EmergencyWithdraw(ctx context.Context, recipient string, amount uint64, class assetstypes.AssetClass, contract string) (uint64, error) {
	to, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return 0, errors.Wrapf(types.ErrInvalidAddress, "recipient %q: %s", recipient, err)
	}
	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get params")
	}
	payer, err := k.transfererFor(params, class, contract)
	if err != nil {
		return 0, err
	}

	if amount == 0 {
		amount, err = payer.balance(ctx, k.ModuleAddress())
		if err != nil {
			return 0, err
		}
		if amount == 0 {
			return 0, types.ErrInvalidAmount.Wrap("treasury holds nothing to withdraw")
		}
	}

	if err := payer.transfer(ctx, k.ModuleAddress(), to, amount); err != nil {
		return 0, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEmergencyWithdraw,
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
		sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
		sdk.NewAttribute(types.AttributeKeyAssetClass, class.String()),
		sdk.NewAttribute(types.AttributeKeyContract, contract),
	))
	k.logger.Info("emergency withdraw", "recipient", recipient, "amount", amount, "class", class)

	return amount, nil
}
