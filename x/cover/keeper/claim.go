package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

// SubmitClaim files the one claim a policy allows.
func (k Keeper) SubmitClaim(ctx context.Context, claimant string, id, amount uint64, reason string) error {
	policy, err := k.GetPolicy(ctx, id)
	if err != nil {
		return err
	}
	if policy.Owner != claimant {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "policy %d is owned by %s, not %s", id, policy.Owner, claimant)
	}
	if policy.ClaimSubmitted {
		return types.ErrClaimAlreadySubmitted.Wrapf("policy %d", id)
	}
	if !policy.Active {
		return types.ErrPolicyNotActive.Wrapf("policy %d", id)
	}

	height := blockHeight(ctx)
	if !policy.IsValidAt(height) {
		return types.ErrPolicyExpired.Wrapf("policy %d covers %d to %d, height %d", id, policy.StartHeight, policy.EndHeight, height)
	}
	if amount == 0 || amount > policy.CoverageAmount {
		return types.ErrInvalidAmount.Wrapf("claim of %d against coverage %d", amount, policy.CoverageAmount)
	}
	if err := types.ValidateReason(reason); err != nil {
		return err
	}

	claim := types.Claim{
		PolicyId:        id,
		Claimant:        claimant,
		Amount:          amount,
		Reason:          reason,
		SubmittedHeight: height,
		Status:          types.ClaimStatusPending,
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.Claims.Set(tmpCtx, id, claim); err != nil {
		return err
	}
	policy.ClaimSubmitted = true
	if err := k.Policies.Set(tmpCtx, id, policy); err != nil {
		return err
	}

	commit()

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClaimSubmitted,
		sdk.NewAttribute(types.AttributeKeyPolicyId, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyClaimant, claimant),
		sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
	))
	k.logger.Info("claim submitted", "policy", id, "amount", amount)

	return nil
}

// ApproveClaim pays a pending claim and closes its policy. class and
// contract name the payout rail the caller expects; they must match the
// policy. Nothing is written unless the payout succeeds.
func (k Keeper) ApproveClaim(ctx context.Context, id uint64, class assetstypes.AssetClass, contract string) (uint64, error) {
	claim, err := k.GetClaim(ctx, id)
	if err != nil {
		return 0, err
	}
	if !claim.IsPending() {
		return 0, types.ErrClaimNotPending.Wrapf("claim %d is %s", id, claim.Status)
	}

	policy, err := k.GetPolicy(ctx, id)
	if err != nil {
		return 0, err
	}
	if policy.AssetClass != class {
		return 0, types.ErrAssetClassMismatch.Wrapf("policy %d pays in %s, not %s", id, policy.AssetClass, class)
	}
	if class == assetstypes.AssetClassToken && assetstypes.GetAssetStorageKey(contract) != assetstypes.GetAssetStorageKey(policy.TokenContract) {
		return 0, types.ErrAssetClassMismatch.Wrapf("policy %d pays in token %s, not %s", id, policy.TokenContract, contract)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get params")
	}
	claimant, err := sdk.AccAddressFromBech32(claim.Claimant)
	if err != nil {
		return 0, errors.Wrapf(types.ErrInvalidAddress, "claimant %q: %s", claim.Claimant, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	payer, err := k.transfererFor(params, policy.AssetClass, policy.TokenContract)
	if err != nil {
		return 0, err
	}
	if err := payer.transfer(tmpCtx, k.ModuleAddress(), claimant, claim.Amount); err != nil {
		return 0, err
	}

	claim.Status = types.ClaimStatusApproved
	if err := k.Claims.Set(tmpCtx, id, claim); err != nil {
		return 0, err
	}
	policy.Active = false
	policy.ClaimApproved = true
	if err := k.Policies.Set(tmpCtx, id, policy); err != nil {
		return 0, err
	}
	if err := k.addToCounter(tmpCtx, k.TotalClaimsPaid, claim.Amount); err != nil {
		return 0, err
	}

	commit()

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClaimApproved,
		sdk.NewAttribute(types.AttributeKeyPolicyId, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyClaimant, claim.Claimant),
		sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(claim.Amount, 10)),
		sdk.NewAttribute(types.AttributeKeyAssetClass, policy.AssetClass.String()),
	))
	telemetry.IncrCounter(1, types.ModuleName, "claims_approved")
	k.logger.Info("claim approved", "policy", id, "amount", claim.Amount)

	return claim.Amount, nil
}

// DenyClaim rejects a pending claim. The policy keeps its submitted flag.
func (k Keeper) DenyClaim(ctx context.Context, id uint64) error {
	claim, err := k.GetClaim(ctx, id)
	if err != nil {
		return err
	}
	if !claim.IsPending() {
		return types.ErrClaimNotPending.Wrapf("claim %d is %s", id, claim.Status)
	}

	claim.Status = types.ClaimStatusDenied
	if err := k.Claims.Set(ctx, id, claim); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClaimDenied,
		sdk.NewAttribute(types.AttributeKeyPolicyId, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyClaimant, claim.Claimant),
	))
	telemetry.IncrCounter(1, types.ModuleName, "claims_denied")
	k.logger.Info("claim denied", "policy", id)

	return nil
}
