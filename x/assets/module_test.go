package module_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
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

	module "github.com/parametric-cover/cover-node/x/assets"
	"github.com/parametric-cover/cover-node/x/assets/keeper"
	"github.com/parametric-cover/cover-node/x/assets/mocks"
	"github.com/parametric-cover/cover-node/x/assets/types"
)

const usdcContract = "0x1234567890abcdef1234567890abcdef12345678"

func TestAppModuleBasic(t *testing.T) {
	encCfg := moduletestutil.MakeTestEncodingConfig()
	appModule := module.AppModuleBasic{}

	t.Run("module_name", func(t *testing.T) {
		require.Equal(t, types.ModuleName, appModule.Name())
	})

	t.Run("default_genesis", func(t *testing.T) {
		genesis := appModule.DefaultGenesis(encCfg.Codec)
		require.NotNil(t, genesis)

		var genesisState types.GenesisState
		require.NoError(t, json.Unmarshal(genesis, &genesisState))
		require.Equal(t, types.DefaultParams(), genesisState.Params)
		require.Len(t, genesisState.AssetClasses, len(types.AllAssetClasses))

		require.NoError(t, appModule.ValidateGenesis(encCfg.Codec, nil, genesis))
	})

	t.Run("validate_genesis_invalid", func(t *testing.T) {
		gs := types.DefaultGenesis()
		gs.Assets = []types.AssetRegistration{
			{Contract: usdcContract, Symbol: "USDC", Decimals: 6},
			{Contract: strings.TrimPrefix(usdcContract, "0x"), Symbol: "USDX", Decimals: 6},
		}
		genesis, err := json.Marshal(gs)
		require.NoError(t, err)

		err = appModule.ValidateGenesis(encCfg.Codec, nil, genesis)
		require.ErrorContains(t, err, "duplicate asset")
	})

	t.Run("validate_genesis_malformed", func(t *testing.T) {
		err := appModule.ValidateGenesis(encCfg.Codec, nil, json.RawMessage(`{"assets":`))
		require.Error(t, err)
	})
}

func TestAppModuleGenesis(t *testing.T) {
	encCfg := moduletestutil.MakeTestEncodingConfig()
	logger := log.NewTestLogger(t)
	ctrl := gomock.NewController(t)

	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	ctx := sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{}, false, logger)

	govModAddr := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	k := keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger, govModAddr, govModAddr, mocks.NewMockTokenKeeper(ctrl))
	appModule := module.NewAppModule(k)

	gs := types.DefaultGenesis()
	gs.Params.Admin = simtestutil.CreateIncrementalAccounts(1)[0].String()
	gs.Assets = []types.AssetRegistration{{Contract: usdcContract, Symbol: "USDC", Decimals: 6, Enabled: true}}
	genesis, err := json.Marshal(gs)
	require.NoError(t, err)

	appModule.InitGenesis(ctx, encCfg.Codec, genesis)
	require.True(t, k.IsAssetEnabled(ctx, strings.TrimPrefix(usdcContract, "0x")))

	var exported types.GenesisState
	require.NoError(t, json.Unmarshal(appModule.ExportGenesis(ctx, encCfg.Codec), &exported))
	require.Equal(t, gs.Params, exported.Params)
	require.Len(t, exported.Assets, 1)
	require.Equal(t, "USDC", exported.Assets[0].Symbol)

	require.Panics(t, func() {
		appModule.InitGenesis(ctx, encCfg.Codec, json.RawMessage(`{"params":{"admin":"nope"}}`))
	})
}

func TestModuleConstants(t *testing.T) {
	require.Equal(t, uint64(1), module.AppModule{}.ConsensusVersion())
	require.Equal(t, types.ModuleName, module.AppModule{}.QuerierRoute())
	require.Equal(t, types.ModuleName, types.StoreKey)
}
