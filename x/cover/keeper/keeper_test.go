package keeper_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	assetskeeper "github.com/parametric-cover/cover-node/x/assets/keeper"
	assetsmocks "github.com/parametric-cover/cover-node/x/assets/mocks"
	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/keeper"
	"github.com/parametric-cover/cover-node/x/cover/mocks"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

const (
	oracleContract = "0x00000000000000000000000000000000000000aa"
	usdcContract   = "0x1234567890AbcdEF1234567890aBcdef12345678"

	startHeight int64 = 1_000
)

type testFixture struct {
	ctx         sdk.Context
	storeKey    *storetypes.KVStoreKey
	k           keeper.Keeper
	assets      assetskeeper.Keeper
	msgServer   types.MsgServer
	queryServer keeper.Querier

	addrs      []sdk.AccAddress
	govModAddr string
	admin      sdk.AccAddress
	reviewer   sdk.AccAddress
	owner      sdk.AccAddress
	stranger   sdk.AccAddress

	ctrl             *gomock.Controller
	mockBankKeeper   *mocks.MockBankKeeper
	mockTokenKeeper  *mocks.MockTokenKeeper
	mockOracleKeeper *mocks.MockOracleKeeper
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	f.ctrl = gomock.NewController(t)
	t.Cleanup(f.ctrl.Finish)
	f.mockBankKeeper = mocks.NewMockBankKeeper(f.ctrl)
	f.mockTokenKeeper = mocks.NewMockTokenKeeper(f.ctrl)
	f.mockOracleKeeper = mocks.NewMockOracleKeeper(f.ctrl)

	// Base setup
	logger := log.NewTestLogger(t)

	f.govModAddr = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	f.addrs = simtestutil.CreateIncrementalAccounts(4)
	f.admin, f.reviewer, f.owner, f.stranger = f.addrs[0], f.addrs[1], f.addrs[2], f.addrs[3]

	keys := storetypes.NewKVStoreKeys(assetstypes.ModuleName, types.ModuleName)
	f.ctx = sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{}, false, logger).
		WithBlockHeight(startHeight)
	f.storeKey = keys[types.ModuleName]

	// Setup Keepers.
	treasury := authtypes.NewModuleAddress(types.ModuleName).String()
	f.assets = assetskeeper.NewKeeper(runtime.NewKVStoreService(keys[assetstypes.ModuleName]), logger, f.govModAddr, treasury, assetsmocks.NewMockTokenKeeper(f.ctrl))
	f.k = keeper.NewKeeper(
		runtime.NewKVStoreService(keys[types.ModuleName]),
		logger,
		f.govModAddr,
		f.mockBankKeeper,
		f.mockTokenKeeper,
		f.mockOracleKeeper,
		f.assets,
	)
	f.msgServer = keeper.NewMsgServerImpl(f.k)
	f.queryServer = keeper.NewQuerier(f.k)

	assetsGenesis := assetstypes.DefaultGenesis()
	assetsGenesis.Params.Admin = f.admin.String()
	assetsGenesis.Assets = []assetstypes.AssetRegistration{
		{Contract: usdcContract, Symbol: "USDC", Decimals: 6, Enabled: true},
	}
	require.NoError(t, f.assets.InitGenesis(f.ctx, assetsGenesis))

	gs := types.DefaultGenesis()
	gs.Params.Admin = f.admin.String()
	gs.Params.ClaimAuthority = f.reviewer.String()
	require.NoError(t, f.k.InitGenesis(f.ctx, gs))

	return f
}

// atHeight moves the fixture context to height.
func (f *testFixture) atHeight(height int64) {
	f.ctx = f.ctx.WithBlockHeight(height)
}

func nativeCoins(amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.DefaultNativeDenom, math.NewIntFromUint64(amount)))
}

// expectPremium expects the premium to be charged in the native asset.
func (f *testFixture) expectPremium(from sdk.AccAddress, amount uint64) *gomock.Call {
	return f.mockBankKeeper.EXPECT().SendCoins(gomock.Any(), from, f.k.ModuleAddress(), nativeCoins(amount)).Return(nil)
}

// expectPayout expects a native payout from the treasury.
func (f *testFixture) expectPayout(to sdk.AccAddress, amount uint64) *gomock.Call {
	return f.mockBankKeeper.EXPECT().SendCoins(gomock.Any(), f.k.ModuleAddress(), to, nativeCoins(amount)).Return(nil)
}

// expectOracle programs one full oracle read for symbol.
func (f *testFixture) expectOracle(symbol string, price, lastUpdate uint64, valid bool) {
	oracle := common.HexToAddress(oracleContract)
	f.mockOracleKeeper.EXPECT().GetAssetPrice(gomock.Any(), oracle, symbol).Return(price, nil)
	f.mockOracleKeeper.EXPECT().GetLastUpdateBlock(gomock.Any(), oracle, symbol).Return(lastUpdate, nil)
	f.mockOracleKeeper.EXPECT().IsPriceValid(gomock.Any(), oracle, symbol).Return(valid, nil)
}

func (f *testFixture) setOracle(t *testing.T) {
	t.Helper()
	require.NoError(t, f.k.SetOracle(f.ctx, oracleContract))
}

// createNative creates a native policy for owner, expecting a static premium of premium.
func (f *testFixture) createNative(t *testing.T, owner sdk.AccAddress, coverage, duration, premium uint64) types.Policy {
	t.Helper()
	f.expectPremium(owner, premium)
	p, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
		Owner:          owner.String(),
		CoverageAmount: coverage,
		Duration:       duration,
		PolicyType:     "weather",
		AssetClass:     assetstypes.AssetClassNative,
	})
	require.NoError(t, err)
	return p
}
