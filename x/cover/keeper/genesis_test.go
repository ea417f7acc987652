package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

func TestGenesis_RoundTrip(t *testing.T) {
	f := SetupTest(t)
	f.setOracle(t)

	f.createNative(t, f.owner, 10_000, 200, types.MinPremium)
	f.createNative(t, f.stranger, 10_000, 200, types.MinPremium)
	f.createNative(t, f.owner, 10_000, 200, types.MinPremium)
	require.NoError(t, f.k.SubmitClaim(f.ctx, f.owner.String(), 3, 6_000, "hail"))
	f.expectPayout(f.owner, 6_000)
	_, err := f.k.ApproveClaim(f.ctx, 3, assetstypes.AssetClassNative, "")
	require.NoError(t, err)
	require.NoError(t, f.k.ClearPrice(f.ctx, "ETH"))

	exported := f.k.ExportGenesis(f.ctx)
	require.NoError(t, exported.Validate())
	require.Equal(t, uint64(3), exported.PolicyCount)
	require.Len(t, exported.Policies, 3)
	require.Len(t, exported.Claims, 1)
	require.Len(t, exported.Prices, 1)
	require.Equal(t, 3*types.MinPremium, exported.TotalPremiums)
	require.Equal(t, uint64(6_000), exported.TotalClaimsPaid)

	g := SetupTest(t)
	require.NoError(t, g.k.InitGenesis(g.ctx, exported))
	require.Equal(t, exported, g.k.ExportGenesis(g.ctx))

	ids, err := g.k.GetUserPolicies(g.ctx, f.owner.String())
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 3}, ids)

	// ids continue after the imported sequence
	p := g.createNative(t, g.owner, 10_000, 200, types.MinPremium)
	require.Equal(t, uint64(4), p.Id)
}

func TestGenesis_Invalid(t *testing.T) {
	f := SetupTest(t)

	gs := types.DefaultGenesis()
	gs.PolicyCount = 1
	gs.Policies = []types.Policy{{
		Id: 1, Owner: f.owner.String(), CoverageAmount: 10, PremiumPaid: 1_000,
		StartHeight: 10, EndHeight: 300, Active: true, PolicyType: "T", AssetClass: assetstypes.AssetClassNative,
	}}

	// premiums do not add up
	require.Error(t, f.k.InitGenesis(f.ctx, gs))

	gs.TotalPremiums = 1_000
	require.NoError(t, f.k.InitGenesis(f.ctx, gs))
}
