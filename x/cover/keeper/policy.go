package keeper

import (
	"context"
	"strconv"
	"time"

	"cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

// pricedAsset is the symbol and precision used to price and value a policy.
type pricedAsset struct {
	symbol   string
	decimals uint32
	contract string
}

// CreatePolicy charges the premium and records a new active policy. Nothing
// is written unless the premium transfer succeeds.
func (k Keeper) CreatePolicy(ctx context.Context, req types.CreatePolicyRequest) (types.Policy, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "create_policy")

	if err := req.ValidateBasic(); err != nil {
		return types.Policy{}, err
	}
	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return types.Policy{}, errors.Wrapf(types.ErrInvalidAddress, "owner %q: %s", req.Owner, err)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Policy{}, errors.Wrapf(err, "failed to get params")
	}

	if !k.assetsKeeper.IsSupported(ctx, req.AssetClass) {
		return types.Policy{}, types.ErrAssetClassDisabled.Wrapf("class %s", req.AssetClass)
	}

	asset, err := k.resolveAsset(ctx, params, req)
	if err != nil {
		return types.Policy{}, err
	}

	ids, err := k.GetUserPolicies(ctx, req.Owner)
	if err != nil {
		return types.Policy{}, err
	}
	if len(ids) >= types.MaxPoliciesPerUser {
		return types.Policy{}, types.ErrTooManyPolicies.Wrapf("owner %s holds %d policies", req.Owner, len(ids))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	quote, err := k.QuotePremium(tmpCtx, asset.symbol, req.CoverageAmount, req.Duration, true)
	if err != nil {
		return types.Policy{}, err
	}

	payer, err := k.transfererFor(params, req.AssetClass, asset.contract)
	if err != nil {
		return types.Policy{}, err
	}
	if err := payer.transfer(tmpCtx, owner, k.ModuleAddress(), quote.Premium); err != nil {
		return types.Policy{}, err
	}

	seq, err := k.PolicySeq.Next(tmpCtx)
	if err != nil {
		return types.Policy{}, err
	}

	start := blockHeight(ctx)
	end, err := types.SafeAdd(start, req.Duration)
	if err != nil {
		return types.Policy{}, err
	}

	policy := types.Policy{
		Id:             seq + 1,
		Owner:          req.Owner,
		CoverageAmount: req.CoverageAmount,
		PremiumPaid:    quote.Premium,
		StartHeight:    start,
		EndHeight:      end,
		Active:         true,
		PolicyType:     req.PolicyType,
		AssetClass:     req.AssetClass,
		TokenContract:  asset.contract,
	}

	if quote.Price > 0 {
		policy.Valuation, err = valuation(asset, quote.Price, req.CoverageAmount, quote.Premium)
		if err != nil {
			return types.Policy{}, err
		}
	}

	if err := k.Policies.Set(tmpCtx, policy.Id, policy); err != nil {
		return types.Policy{}, err
	}
	if err := k.UserPolicies.Set(tmpCtx, req.Owner, types.UserPolicyIds{Ids: append(ids, policy.Id)}); err != nil {
		return types.Policy{}, err
	}
	if err := k.addToCounter(tmpCtx, k.TotalPremiums, quote.Premium); err != nil {
		return types.Policy{}, err
	}

	commit()

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePolicyCreated,
		sdk.NewAttribute(types.AttributeKeyPolicyId, strconv.FormatUint(policy.Id, 10)),
		sdk.NewAttribute(types.AttributeKeyOwner, policy.Owner),
		sdk.NewAttribute(types.AttributeKeyCoverage, strconv.FormatUint(policy.CoverageAmount, 10)),
		sdk.NewAttribute(types.AttributeKeyPremium, strconv.FormatUint(policy.PremiumPaid, 10)),
		sdk.NewAttribute(types.AttributeKeyStartHeight, strconv.FormatUint(policy.StartHeight, 10)),
		sdk.NewAttribute(types.AttributeKeyEndHeight, strconv.FormatUint(policy.EndHeight, 10)),
		sdk.NewAttribute(types.AttributeKeyAssetClass, policy.AssetClass.String()),
	))
	telemetry.IncrCounter(1, types.ModuleName, "policies_created")
	k.logger.Info("policy created", "id", policy.Id, "owner", policy.Owner, "premium", policy.PremiumPaid, "dynamic", quote.Dynamic)

	return policy, nil
}

func (k Keeper) resolveAsset(ctx context.Context, params types.Params, req types.CreatePolicyRequest) (pricedAsset, error) {
	if req.AssetClass == assetstypes.AssetClassNative {
		return pricedAsset{symbol: params.NativeSymbol, decimals: params.NativeDecimals}, nil
	}

	if !k.assetsKeeper.IsAssetEnabled(ctx, req.TokenContract) {
		return pricedAsset{}, types.ErrAssetNotSupported.Wrapf("token %s", req.TokenContract)
	}
	reg, err := k.assetsKeeper.GetAsset(ctx, req.TokenContract)
	if err != nil {
		return pricedAsset{}, err
	}
	return pricedAsset{symbol: reg.Symbol, decimals: reg.Decimals, contract: reg.Contract}, nil
}

func valuation(asset pricedAsset, price, coverage, premium uint64) (*types.UsdValuation, error) {
	coverageUSD, err := types.USDValue(coverage, price, asset.decimals)
	if err != nil {
		return nil, err
	}
	premiumUSD, err := types.USDValue(premium, price, asset.decimals)
	if err != nil {
		return nil, err
	}
	return &types.UsdValuation{
		Symbol:      asset.symbol,
		Price:       price,
		CoverageUSD: coverageUSD,
		PremiumUSD:  premiumUSD,
	}, nil
}

// CancelPolicy deactivates an unclaimed policy on behalf of its owner.
func (k Keeper) CancelPolicy(ctx context.Context, signer string, id uint64) error {
	policy, err := k.GetPolicy(ctx, id)
	if err != nil {
		return err
	}
	if policy.Owner != signer {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "policy %d is owned by %s, not %s", id, policy.Owner, signer)
	}
	if !policy.Active {
		return types.ErrPolicyNotActive.Wrapf("policy %d", id)
	}
	if policy.ClaimSubmitted {
		return types.ErrClaimAlreadySubmitted.Wrapf("policy %d", id)
	}

	policy.Active = false
	if err := k.Policies.Set(ctx, id, policy); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePolicyCancelled,
		sdk.NewAttribute(types.AttributeKeyPolicyId, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyOwner, signer),
	))
	k.logger.Info("policy cancelled", "id", id, "owner", signer)

	return nil
}
