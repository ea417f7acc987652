package module_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	module "github.com/parametric-cover/cover-node/x/cover"
	"github.com/parametric-cover/cover-node/x/cover/keeper"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

func TestAppModuleBasic(t *testing.T) {
	encCfg := moduletestutil.MakeTestEncodingConfig()
	appModule := module.AppModuleBasic{}

	t.Run("module_name", func(t *testing.T) {
		require.Equal(t, types.ModuleName, appModule.Name())
	})

	t.Run("default_genesis", func(t *testing.T) {
		genesis := appModule.DefaultGenesis(encCfg.Codec)

		var genesisState types.GenesisState
		require.NoError(t, json.Unmarshal(genesis, &genesisState))
		require.Equal(t, types.DefaultParams(), genesisState.Params)
		require.Zero(t, genesisState.PolicyCount)

		require.NoError(t, appModule.ValidateGenesis(encCfg.Codec, nil, genesis))
	})

	t.Run("validate_genesis_invalid", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(gs *types.GenesisState)
		}{
			{
				name:   "native symbol",
				mutate: func(gs *types.GenesisState) { gs.Params.NativeSymbol = "P-C" },
			},
			{
				name:   "protocol fee",
				mutate: func(gs *types.GenesisState) { gs.Params.ProtocolFeeBps = types.MaxProtocolFeeBps + 1 },
			},
			{
				name:   "premium total",
				mutate: func(gs *types.GenesisState) { gs.TotalPremiums = 1 },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				gs := types.DefaultGenesis()
				tc.mutate(gs)
				genesis, err := json.Marshal(gs)
				require.NoError(t, err)

				require.Error(t, appModule.ValidateGenesis(encCfg.Codec, nil, genesis))
			})
		}
	})
}

func TestAppModuleGenesis(t *testing.T) {
	encCfg := moduletestutil.MakeTestEncodingConfig()
	logger := log.NewTestLogger(t)

	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	ctx := sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{}, false, logger).
		WithBlockHeight(10)

	govModAddr := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	k := keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger, govModAddr, nil, nil, nil, nil)
	appModule := module.NewAppModule(k)

	owner := simtestutil.CreateIncrementalAccounts(1)[0].String()
	gs := types.DefaultGenesis()
	gs.PolicyCount = 1
	gs.Policies = []types.Policy{{
		Id: 1, Owner: owner, CoverageAmount: 10_000, PremiumPaid: 1_000,
		StartHeight: 1, EndHeight: 201, Active: true, PolicyType: "T", AssetClass: "native",
	}}
	gs.TotalPremiums = 1_000
	genesis, err := json.Marshal(gs)
	require.NoError(t, err)

	appModule.InitGenesis(ctx, encCfg.Codec, genesis)

	valid, err := k.IsPolicyValid(ctx, 1)
	require.NoError(t, err)
	require.True(t, valid)

	ids, err := k.GetUserPolicies(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, ids)

	var exported types.GenesisState
	require.NoError(t, json.Unmarshal(appModule.ExportGenesis(ctx, encCfg.Codec), &exported))
	require.Equal(t, uint64(1), exported.PolicyCount)
	require.Equal(t, gs.Policies, exported.Policies)
	require.Equal(t, uint64(1_000), exported.TotalPremiums)
}

func TestModuleConstants(t *testing.T) {
	require.Equal(t, uint64(1), module.AppModule{}.ConsensusVersion())
	require.Equal(t, types.ModuleName, module.AppModule{}.QuerierRoute())
}
