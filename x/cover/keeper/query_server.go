package keeper

import (
	"context"

	"github.com/parametric-cover/cover-node/x/cover/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (k Querier) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	p, err := k.Keeper.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: &p}, nil
}

func (k Querier) Policy(ctx context.Context, req *types.QueryPolicyRequest) (*types.QueryPolicyResponse, error) {
	p, err := k.Keeper.GetPolicy(ctx, req.PolicyId)
	if err != nil {
		return nil, err
	}
	return &types.QueryPolicyResponse{Policy: p}, nil
}

func (k Querier) Claim(ctx context.Context, req *types.QueryClaimRequest) (*types.QueryClaimResponse, error) {
	c, err := k.Keeper.GetClaim(ctx, req.PolicyId)
	if err != nil {
		return nil, err
	}
	return &types.QueryClaimResponse{Claim: c}, nil
}

func (k Querier) UserPolicies(ctx context.Context, req *types.QueryUserPoliciesRequest) (*types.QueryUserPoliciesResponse, error) {
	ids, err := k.Keeper.GetUserPolicies(ctx, req.Owner)
	if err != nil {
		return nil, err
	}
	return &types.QueryUserPoliciesResponse{PolicyIds: ids}, nil
}

// Price reads the cache only; it never contacts the oracle.
func (k Querier) Price(ctx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	entry, err := k.Keeper.GetPriceReadOnly(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}
	return &types.QueryPriceResponse{Price: entry.Price, LastUpdate: entry.LastUpdate}, nil
}

// PremiumQuote prices coverage with cached prices only.
func (k Querier) PremiumQuote(ctx context.Context, req *types.QueryPremiumQuoteRequest) (*types.QueryPremiumQuoteResponse, error) {
	if req.CoverageAmount == 0 {
		return nil, types.ErrInvalidAmount.Wrap("coverage must be positive")
	}
	if err := types.ValidateDuration(req.Duration); err != nil {
		return nil, err
	}

	symbol := req.Symbol
	if symbol == "" {
		params, err := k.Keeper.Params.Get(ctx)
		if err != nil {
			return nil, err
		}
		symbol = params.NativeSymbol
	}

	quote, err := k.Keeper.QuotePremium(ctx, symbol, req.CoverageAmount, req.Duration, false)
	if err != nil {
		return nil, err
	}
	return &types.QueryPremiumQuoteResponse{Quote: quote}, nil
}

func (k Querier) PolicyStatus(ctx context.Context, req *types.QueryPolicyStatusRequest) (*types.QueryPolicyStatusResponse, error) {
	p, err := k.Keeper.GetPolicy(ctx, req.PolicyId)
	if err != nil {
		return nil, err
	}
	height := blockHeight(ctx)
	return &types.QueryPolicyStatusResponse{Valid: p.IsValidAt(height), Status: p.Status(height)}, nil
}

func (k Querier) Stats(ctx context.Context, req *types.QueryStatsRequest) (*types.QueryStatsResponse, error) {
	params, err := k.Keeper.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	count, err := k.Keeper.PolicyCount(ctx)
	if err != nil {
		return nil, err
	}
	premiums, err := k.getCounter(ctx, k.Keeper.TotalPremiums)
	if err != nil {
		return nil, err
	}
	paid, err := k.getCounter(ctx, k.Keeper.TotalClaimsPaid)
	if err != nil {
		return nil, err
	}

	return &types.QueryStatsResponse{
		PolicyCount:     count,
		TotalPremiums:   premiums,
		TotalClaimsPaid: paid,
		ProtocolFeeBps:  params.ProtocolFeeBps,
		DynamicPricing:  params.DynamicPricing,
		Oracle:          params.Oracle,
	}, nil
}
