package keeper

import (
	"context"

	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// checkAdmin loads the params and verifies that signer is the contract owner.
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

// checkClaimAuthority verifies that signer may review claims.
func (ms msgServer) checkClaimAuthority(ctx context.Context, signer string) error {
	params, err := ms.k.Params.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to get params")
	}

	reviewer := params.ClaimReviewer()
	if reviewer == "" || reviewer != signer {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "invalid claim authority; expected %s, got %s", reviewer, signer)
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

// CreatePolicy handles MsgCreatePolicy.
func (ms msgServer) CreatePolicy(ctx context.Context, msg *types.MsgCreatePolicy) (*types.MsgCreatePolicyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	policy, err := ms.k.CreatePolicy(ctx, msg.Request())
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePolicyResponse{PolicyId: policy.Id, Premium: policy.PremiumPaid}, nil
}

// CreateTokenPolicy handles MsgCreateTokenPolicy.
func (ms msgServer) CreateTokenPolicy(ctx context.Context, msg *types.MsgCreateTokenPolicy) (*types.MsgCreateTokenPolicyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	policy, err := ms.k.CreatePolicy(ctx, msg.Request())
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateTokenPolicyResponse{PolicyId: policy.Id, Premium: policy.PremiumPaid}, nil
}

// CancelPolicy handles MsgCancelPolicy - Owner restricted.
func (ms msgServer) CancelPolicy(ctx context.Context, msg *types.MsgCancelPolicy) (*types.MsgCancelPolicyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.k.CancelPolicy(ctx, msg.Owner, msg.PolicyId); err != nil {
		return nil, err
	}

	return &types.MsgCancelPolicyResponse{}, nil
}

// SubmitClaim handles MsgSubmitClaim - Owner restricted.
func (ms msgServer) SubmitClaim(ctx context.Context, msg *types.MsgSubmitClaim) (*types.MsgSubmitClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.k.SubmitClaim(ctx, msg.Claimant, msg.PolicyId, msg.Amount, msg.Reason); err != nil {
		return nil, err
	}

	return &types.MsgSubmitClaimResponse{}, nil
}

// ApproveClaim handles MsgApproveClaim - Claim authority restricted.
func (ms msgServer) ApproveClaim(ctx context.Context, msg *types.MsgApproveClaim) (*types.MsgApproveClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkClaimAuthority(ctx, msg.Signer); err != nil {
		return nil, err
	}

	amount, err := ms.k.ApproveClaim(ctx, msg.PolicyId, assetstypes.AssetClassNative, "")
	if err != nil {
		return nil, err
	}

	return &types.MsgApproveClaimResponse{Amount: amount}, nil
}

// ApproveTokenClaim handles MsgApproveTokenClaim - Claim authority restricted.
func (ms msgServer) ApproveTokenClaim(ctx context.Context, msg *types.MsgApproveTokenClaim) (*types.MsgApproveTokenClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkClaimAuthority(ctx, msg.Signer); err != nil {
		return nil, err
	}

	amount, err := ms.k.ApproveClaim(ctx, msg.PolicyId, assetstypes.AssetClassToken, msg.TokenContract)
	if err != nil {
		return nil, err
	}

	return &types.MsgApproveTokenClaimResponse{Amount: amount}, nil
}

// DenyClaim handles MsgDenyClaim - Claim authority restricted.
func (ms msgServer) DenyClaim(ctx context.Context, msg *types.MsgDenyClaim) (*types.MsgDenyClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkClaimAuthority(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.DenyClaim(ctx, msg.PolicyId); err != nil {
		return nil, err
	}

	return &types.MsgDenyClaimResponse{}, nil
}

// SetOracle handles MsgSetOracle - Admin restricted.
func (ms msgServer) SetOracle(ctx context.Context, msg *types.MsgSetOracle) (*types.MsgSetOracleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.SetOracle(ctx, msg.Oracle); err != nil {
		return nil, err
	}

	return &types.MsgSetOracleResponse{}, nil
}

// SetDynamicPricing handles MsgSetDynamicPricing - Admin restricted.
func (ms msgServer) SetDynamicPricing(ctx context.Context, msg *types.MsgSetDynamicPricing) (*types.MsgSetDynamicPricingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.SetDynamicPricing(ctx, msg.Enabled); err != nil {
		return nil, err
	}

	return &types.MsgSetDynamicPricingResponse{}, nil
}

// SetProtocolFee handles MsgSetProtocolFee - Admin restricted.
func (ms msgServer) SetProtocolFee(ctx context.Context, msg *types.MsgSetProtocolFee) (*types.MsgSetProtocolFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.SetProtocolFee(ctx, msg.FeeBps); err != nil {
		return nil, err
	}

	return &types.MsgSetProtocolFeeResponse{}, nil
}

// ClearPrice handles MsgClearPrice - Admin restricted.
func (ms msgServer) ClearPrice(ctx context.Context, msg *types.MsgClearPrice) (*types.MsgClearPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.k.ClearPrice(ctx, msg.Symbol); err != nil {
		return nil, err
	}

	return &types.MsgClearPriceResponse{}, nil
}

// EmergencyWithdraw handles MsgEmergencyWithdraw - Admin restricted.
func (ms msgServer) EmergencyWithdraw(ctx context.Context, msg *types.MsgEmergencyWithdraw) (*types.MsgEmergencyWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return nil, err
	}

	amount, err := ms.k.EmergencyWithdraw(ctx, msg.Recipient, msg.Amount, msg.AssetClass, msg.TokenContract)
	if err != nil {
		return nil, err
	}

	return &types.MsgEmergencyWithdrawResponse{Amount: amount}, nil
}
