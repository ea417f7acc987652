package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/parametric-cover/cover-node/util"
	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

// transferer moves one asset between accounts. Every failure is reported as
// types.ErrTransferFailed.
type transferer interface {
	transfer(ctx context.Context, from, to sdk.AccAddress, amount uint64) error
	balance(ctx context.Context, holder sdk.AccAddress) (uint64, error)
}

type nativeTransferer struct {
	bank  types.BankKeeper
	denom string
}

func (t nativeTransferer) transfer(ctx context.Context, from, to sdk.AccAddress, amount uint64) error {
	coins := sdk.NewCoins(sdk.NewCoin(t.denom, math.NewIntFromUint64(amount)))
	if err := t.bank.SendCoins(ctx, from, to, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("send %s from %s to %s: %s", coins, from, to, err)
	}
	return nil
}

func (t nativeTransferer) balance(ctx context.Context, holder sdk.AccAddress) (uint64, error) {
	bal := t.bank.GetBalance(ctx, holder, t.denom)
	if !bal.Amount.IsUint64() {
		return 0, types.ErrArithmeticOverflow.Wrapf("balance %s", bal)
	}
	return bal.Amount.Uint64(), nil
}

type tokenTransferer struct {
	token    types.TokenKeeper
	contract common.Address
}

func (t tokenTransferer) transfer(ctx context.Context, from, to sdk.AccAddress, amount uint64) error {
	ok, err := t.token.Transfer(ctx, t.contract, amount, from, to, nil)
	if err != nil {
		return types.ErrTransferFailed.Wrapf("token %s transfer of %d: %s", t.contract.Hex(), amount, err)
	}
	if !ok {
		return types.ErrTransferFailed.Wrapf("token %s rejected transfer of %d", t.contract.Hex(), amount)
	}
	return nil
}

func (t tokenTransferer) balance(ctx context.Context, holder sdk.AccAddress) (uint64, error) {
	bal, err := t.token.BalanceOf(ctx, t.contract, holder)
	if err != nil {
		return 0, types.ErrTransferFailed.Wrapf("token %s balance: %s", t.contract.Hex(), err)
	}
	return bal, nil
}

// transfererFor selects the payout rail of an asset class.
func (k Keeper) transfererFor(params types.Params, class assetstypes.AssetClass, contract string) (transferer, error) {
	switch class {
	case assetstypes.AssetClassNative:
		return nativeTransferer{bank: k.bankKeeper, denom: params.NativeDenom}, nil
	case assetstypes.AssetClassToken:
		if !util.IsValidAddress(contract, util.HEX) {
			return nil, types.ErrInvalidAddress.Wrapf("token contract %q", contract)
		}
		return tokenTransferer{token: k.tokenKeeper, contract: common.HexToAddress(contract)}, nil
	default:
		return nil, assetstypes.ErrInvalidAssetClass.Wrapf("%q", class)
	}
}
