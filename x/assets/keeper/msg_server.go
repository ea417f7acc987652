package keeper

import (
	"context"

	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/errors"
	"github.com/parametric-cover/cover-node/x/assets/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// checkAdmin loads the params and verifies that signer is the registry owner.
func (ms msgServer) checkAdmin(ctx context.Context, signer string) error {
	params, err := ms.k.Params.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to get params")
	}

	if params.Admin == "" || params.Admin != signer {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "invalid authority; expected %s, got %s", params.Admin, signer)
	}
	return nil
}

// UpdateParams handles MsgUpdateParams for updating module parameters.
// Only authorized governance account can execute this.
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if ms.k.authority != msg.Authority {
		return nil, errors.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.k.authority, msg.Authority)
	}

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	if err := ms.k.Params.Set(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

// RegisterAsset handles MsgRegisterAsset - Admin restricted.
func (ms msgServer) RegisterAsset(ctx context.Context, msg *types.MsgRegisterAsset) (*types.MsgRegisterAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	err := ms.k.RegisterAsset(ctx, msg.Signer, types.AssetRegistration{
		Contract: msg.Contract,
		Symbol:   msg.Symbol,
		Decimals: msg.Decimals,
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgRegisterAssetResponse{}, nil
}

// UpdateAsset handles MsgUpdateAsset - Admin restricted.
func (ms msgServer) UpdateAsset(ctx context.Context, msg *types.MsgUpdateAsset) (*types.MsgUpdateAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	asset, err := ms.k.UpdateAsset(ctx, msg.Contract, msg.Symbol, msg.Decimals, msg.Enabled)
	if err != nil {
		return nil, err
	}

	return &types.MsgUpdateAssetResponse{Asset: asset}, nil
}

// RevokeAsset handles MsgRevokeAsset - Admin restricted.
func (ms msgServer) RevokeAsset(ctx context.Context, msg *types.MsgRevokeAsset) (*types.MsgRevokeAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.RevokeAsset(ctx, msg.Contract); err != nil {
		return nil, err
	}

	return &types.MsgRevokeAssetResponse{}, nil
}

// SetRiskMultiplier handles MsgSetRiskMultiplier - Admin restricted.
func (ms msgServer) SetRiskMultiplier(ctx context.Context, msg *types.MsgSetRiskMultiplier) (*types.MsgSetRiskMultiplierResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.SetRiskMultiplier(ctx, msg.Symbol, msg.Multiplier); err != nil {
		return nil, err
	}

	return &types.MsgSetRiskMultiplierResponse{}, nil
}

// SetAssetClassEnabled handles MsgSetAssetClassEnabled - Admin restricted.
func (ms msgServer) SetAssetClassEnabled(ctx context.Context, msg *types.MsgSetAssetClassEnabled) (*types.MsgSetAssetClassEnabledResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.SetAssetClassEnabled(ctx, msg.Class, msg.Enabled); err != nil {
		return nil, err
	}

	return &types.MsgSetAssetClassEnabledResponse{}, nil
}
