package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/x/cover/types"
)

// GetPrice returns a usable price for symbol, refreshing the cache from the
// oracle when the cached entry is absent, invalid or older than PriceMaxAge.
// Only state-changing paths may call it.
func (k Keeper) GetPrice(ctx context.Context, symbol string) (uint64, error) {
	if err := k.assetsKeeper.ValidateSymbol(symbol); err != nil {
		return 0, err
	}

	height := blockHeight(ctx)
	entry, found, err := k.getPriceEntry(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if found && entry.IsFreshAt(height) {
		return entry.Price, nil
	}

	return k.refreshPrice(ctx, symbol, height)
}

func (k Keeper) refreshPrice(ctx context.Context, symbol string, height uint64) (uint64, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, err
	}
	if !params.HasOracle() {
		return 0, types.ErrOracleNotSet
	}
	oracle := params.OracleAddress()

	price, err := k.oracleKeeper.GetAssetPrice(ctx, oracle, symbol)
	if err != nil {
		return 0, types.ErrOracleUnavailable.Wrapf("price of %s: %s", symbol, err)
	}
	lastUpdate, err := k.oracleKeeper.GetLastUpdateBlock(ctx, oracle, symbol)
	if err != nil {
		return 0, types.ErrOracleUnavailable.Wrapf("last update of %s: %s", symbol, err)
	}
	valid, err := k.oracleKeeper.IsPriceValid(ctx, oracle, symbol)
	if err != nil {
		return 0, types.ErrOracleUnavailable.Wrapf("validity of %s: %s", symbol, err)
	}

	if !valid {
		return 0, types.ErrStalePrice.Wrapf("oracle marks %s invalid", symbol)
	}
	if !types.IsFresh(lastUpdate, height) {
		return 0, types.ErrStalePrice.Wrapf("oracle price of %s last updated at %d, height %d", symbol, lastUpdate, height)
	}
	if price == 0 {
		return 0, types.ErrInvalidOraclePrice.Wrapf("zero price for %s", symbol)
	}

	entry := types.PriceEntry{Price: price, LastUpdate: height, Valid: true}
	if err := k.PriceCache.Set(ctx, symbol, entry); err != nil {
		return 0, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePriceRefreshed,
		sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(price, 10)),
	))

	return price, nil
}

// GetPriceReadOnly returns the cached price of symbol without contacting the oracle.
func (k Keeper) GetPriceReadOnly(ctx context.Context, symbol string) (types.PriceEntry, error) {
	entry, found, err := k.getPriceEntry(ctx, symbol)
	if err != nil {
		return types.PriceEntry{}, err
	}
	if !found {
		return types.PriceEntry{}, types.ErrPriceNotFound.Wrapf("symbol %s", symbol)
	}
	height := blockHeight(ctx)
	if !entry.IsFreshAt(height) {
		return types.PriceEntry{}, types.ErrStalePrice.Wrapf("%s cached at %d, valid %t, height %d", symbol, entry.LastUpdate, entry.Valid, height)
	}
	return entry, nil
}

// ClearPrice marks the cached price of symbol invalid. An absent entry is
// stored as an invalid zero entry.
func (k Keeper) ClearPrice(ctx context.Context, symbol string) error {
	if err := k.assetsKeeper.ValidateSymbol(symbol); err != nil {
		return err
	}

	entry, _, err := k.getPriceEntry(ctx, symbol)
	if err != nil {
		return err
	}
	entry.Valid = false
	if err := k.PriceCache.Set(ctx, symbol, entry); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePriceCleared,
		sdk.NewAttribute(types.AttributeKeySymbol, symbol),
	))
	k.logger.Info("price cleared", "symbol", symbol)

	return nil
}

func (k Keeper) getPriceEntry(ctx context.Context, symbol string) (types.PriceEntry, bool, error) {
	entry, err := k.PriceCache.Get(ctx, symbol)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PriceEntry{}, false, nil
		}
		return types.PriceEntry{}, false, err
	}
	return entry, true, nil
}
