package keeper

import (
	"context"
	"sort"

	"github.com/parametric-cover/cover-node/x/cover/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.PolicySeq.Set(ctx, data.PolicyCount); err != nil {
		return err
	}

	policies := append([]types.Policy(nil), data.Policies...)
	sort.Slice(policies, func(i, j int) bool { return policies[i].Id < policies[j].Id })

	index := make(map[string][]uint64)
	var owners []string
	for _, p := range policies {
		if err := k.Policies.Set(ctx, p.Id, p); err != nil {
			return err
		}
		if _, ok := index[p.Owner]; !ok {
			owners = append(owners, p.Owner)
		}
		index[p.Owner] = append(index[p.Owner], p.Id)
	}
	for _, owner := range owners {
		if err := k.UserPolicies.Set(ctx, owner, types.UserPolicyIds{Ids: index[owner]}); err != nil {
			return err
		}
	}

	for _, c := range data.Claims {
		if err := k.Claims.Set(ctx, c.PolicyId, c); err != nil {
			return err
		}
	}

	for _, pr := range data.Prices {
		if err := k.PriceCache.Set(ctx, pr.Symbol, pr.Entry); err != nil {
			return err
		}
	}

	if err := k.TotalPremiums.Set(ctx, data.TotalPremiums); err != nil {
		return err
	}
	return k.TotalClaimsPaid.Set(ctx, data.TotalClaimsPaid)
}

// ExportGenesis exports the module's state to a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.Params.Get(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{Params: params}

	gs.PolicyCount, err = k.PolicySeq.Peek(ctx)
	if err != nil {
		panic(err)
	}

	err = k.Policies.Walk(ctx, nil, func(_ uint64, p types.Policy) (bool, error) {
		gs.Policies = append(gs.Policies, p)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.Claims.Walk(ctx, nil, func(_ uint64, c types.Claim) (bool, error) {
		gs.Claims = append(gs.Claims, c)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.PriceCache.Walk(ctx, nil, func(symbol string, e types.PriceEntry) (bool, error) {
		gs.Prices = append(gs.Prices, types.PriceRecord{Symbol: symbol, Entry: e})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	if gs.TotalPremiums, err = k.getCounter(ctx, k.TotalPremiums); err != nil {
		panic(err)
	}
	if gs.TotalClaimsPaid, err = k.getCounter(ctx, k.TotalClaimsPaid); err != nil {
		panic(err)
	}

	return gs
}
