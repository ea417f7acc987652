package keeper

import (
	"context"

	"github.com/parametric-cover/cover-node/x/assets/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}

	for _, a := range data.Assets {
		a.Contract = types.NormalizeContract(a.Contract)
		if err := k.Assets.Set(ctx, types.GetAssetStorageKey(a.Contract), a); err != nil {
			return err
		}
	}

	for _, rm := range data.RiskMultipliers {
		if err := k.RiskMultipliers.Set(ctx, rm.Symbol, rm.Multiplier); err != nil {
			return err
		}
	}

	for _, c := range data.AssetClasses {
		if err := k.AssetClasses.Set(ctx, c.Class.String(), c.Enabled); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module's state to a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.Params.Get(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{Params: params}

	err = k.Assets.Walk(ctx, nil, func(_ string, a types.AssetRegistration) (bool, error) {
		gs.Assets = append(gs.Assets, a)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.RiskMultipliers.Walk(ctx, nil, func(symbol string, m uint64) (bool, error) {
		gs.RiskMultipliers = append(gs.RiskMultipliers, types.RiskMultiplier{Symbol: symbol, Multiplier: m})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.AssetClasses.Walk(ctx, nil, func(class string, enabled bool) (bool, error) {
		gs.AssetClasses = append(gs.AssetClasses, types.AssetClassSwitch{Class: types.AssetClass(class), Enabled: enabled})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return gs
}
