package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

func TestGenesisState_Validate(t *testing.T) {
	owner := simtestutil.CreateIncrementalAccounts(1)[0].String()

	policy := validPolicy()
	policy.Owner = owner

	approved := policy
	approved.Active, approved.ClaimSubmitted, approved.ClaimApproved = false, true, true

	tests := []struct {
		desc     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			desc:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			desc: "valid genesis state",
			genState: &types.GenesisState{
				Params:          types.DefaultParams(),
				PolicyCount:     1,
				Policies:        []types.Policy{approved},
				Claims:          []types.Claim{{PolicyId: 1, Claimant: owner, Amount: 500, Status: types.ClaimStatusApproved}},
				Prices:          []types.PriceRecord{{Symbol: "ETH", Entry: types.PriceEntry{Price: 1, LastUpdate: 1, Valid: true}}},
				TotalPremiums:   1_000,
				TotalClaimsPaid: 500,
			},
			valid: true,
		},
		{
			desc: "policy beyond count",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				Policies:      []types.Policy{policy},
				TotalPremiums: 1_000,
			},
			valid: false,
		},
		{
			desc: "duplicate policy",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				PolicyCount:   1,
				Policies:      []types.Policy{policy, policy},
				TotalPremiums: 2_000,
			},
			valid: false,
		},
		{
			desc: "claim without policy",
			genState: &types.GenesisState{
				Params:      types.DefaultParams(),
				PolicyCount: 1,
				Claims:      []types.Claim{{PolicyId: 1, Claimant: owner, Amount: 500, Status: types.ClaimStatusPending}},
			},
			valid: false,
		},
		{
			desc: "claims paid mismatch",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				PolicyCount:   1,
				Policies:      []types.Policy{approved},
				Claims:        []types.Claim{{PolicyId: 1, Claimant: owner, Amount: 500, Status: types.ClaimStatusApproved}},
				TotalPremiums: 1_000,
			},
			valid: false,
		},
		{
			desc: "submitted flag without claim",
			genState: &types.GenesisState{
				Params:        types.DefaultParams(),
				PolicyCount:   1,
				Policies:      []types.Policy{func() types.Policy { p := policy; p.ClaimSubmitted = true; return p }()},
				TotalPremiums: 1_000,
			},
			valid: false,
		},
		{
			desc: "bad price symbol",
			genState: &types.GenesisState{
				Params: types.DefaultParams(),
				Prices: []types.PriceRecord{{Symbol: "E-TH"}},
			},
			valid: false,
		},
		{
			desc: "fee above cap",
			genState: &types.GenesisState{
				Params: func() types.Params { p := types.DefaultParams(); p.ProtocolFeeBps = 1_001; return p }(),
			},
			valid: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestParams(t *testing.T) {
	p := types.DefaultParams()
	require.NoError(t, p.Validate())
	require.Empty(t, p.ClaimReviewer())

	p.Admin = simtestutil.CreateIncrementalAccounts(1)[0].String()
	require.Equal(t, p.Admin, p.ClaimReviewer())

	p.Oracle = "oracle"
	require.ErrorIs(t, p.Validate(), types.ErrInvalidAddress)

	p.Oracle = "0x00000000000000000000000000000000000000aa"
	require.NoError(t, p.Validate())
	require.True(t, p.HasOracle())

	p.NativeDenom = ""
	require.Error(t, p.Validate())
}

func TestParams_NativeAsset(t *testing.T) {
	for _, symbol := range []string{"", "P-C", "TOOLONGSYMBOL"} {
		p := types.DefaultParams()
		p.NativeSymbol = symbol
		require.ErrorIs(t, p.Validate(), assetstypes.ErrInvalidSymbol, symbol)
	}

	p := types.DefaultParams()
	p.NativeDecimals = 19
	require.ErrorIs(t, p.Validate(), assetstypes.ErrInvalidDecimals)

	p.NativeDecimals = 18
	require.NoError(t, p.Validate())
}

func TestGenesisState_ValidateErrorKinds(t *testing.T) {
	owner := simtestutil.CreateIncrementalAccounts(1)[0].String()
	policy := validPolicy()
	policy.Owner = owner

	gs := types.DefaultGenesis()
	gs.PolicyCount = 1
	gs.Policies = []types.Policy{policy, policy}
	gs.TotalPremiums = 2 * policy.PremiumPaid
	require.ErrorIs(t, gs.Validate(), sdkerrors.ErrInvalidRequest)

	gs.Policies = []types.Policy{policy}
	gs.TotalPremiums = policy.PremiumPaid + 1
	require.ErrorIs(t, gs.Validate(), sdkerrors.ErrInvalidRequest)

	gs.TotalPremiums = policy.PremiumPaid
	gs.Prices = []types.PriceRecord{{Symbol: "ETH"}, {Symbol: "ETH"}}
	require.ErrorIs(t, gs.Validate(), sdkerrors.ErrInvalidRequest)

	gs.Prices = nil
	gs.Claims = []types.Claim{{PolicyId: 7, Claimant: owner, Amount: 1, Status: types.ClaimStatusPending}}
	require.ErrorIs(t, gs.Validate(), types.ErrPolicyNotFound)
}
