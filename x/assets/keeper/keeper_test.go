package keeper_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/parametric-cover/cover-node/x/assets/keeper"
	"github.com/parametric-cover/cover-node/x/assets/mocks"
	"github.com/parametric-cover/cover-node/x/assets/types"
)

const (
	usdcContract = "0x1234567890abcdef1234567890abcdef12345678"
	wethContract = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
)

type testFixture struct {
	ctx         sdk.Context
	k           keeper.Keeper
	msgServer   types.MsgServer
	queryServer keeper.Querier

	addrs      []sdk.AccAddress
	govModAddr string
	treasury   sdk.AccAddress

	ctrl            *gomock.Controller
	mockTokenKeeper *mocks.MockTokenKeeper
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	f.ctrl = gomock.NewController(t)
	t.Cleanup(f.ctrl.Finish)
	f.mockTokenKeeper = mocks.NewMockTokenKeeper(f.ctrl)

	// Base setup
	logger := log.NewTestLogger(t)

	f.govModAddr = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	f.addrs = simtestutil.CreateIncrementalAccounts(3)
	f.treasury = authtypes.NewModuleAddress("cover")

	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	f.ctx = sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{}, false, logger)

	// Setup Keeper.
	f.k = keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger, f.govModAddr, f.treasury.String(), f.mockTokenKeeper)
	f.msgServer = keeper.NewMsgServerImpl(f.k)
	f.queryServer = keeper.NewQuerier(f.k)

	return f
}

// withAdmin initialises genesis with addrs[0] as registry owner.
func (f *testFixture) withAdmin(t *testing.T) sdk.AccAddress {
	t.Helper()
	gs := types.DefaultGenesis()
	gs.Params.Admin = f.addrs[0].String()
	if err := f.k.InitGenesis(f.ctx, gs); err != nil {
		t.Fatal(err)
	}
	return f.addrs[0]
}

func hexOf(addr sdk.AccAddress) string {
	return common.BytesToAddress(addr.Bytes()).Hex()
}
