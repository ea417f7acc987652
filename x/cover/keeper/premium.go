package keeper

import (
	"context"

	"cosmossdk.io/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

// QuotePremium prices coverage for symbol. With dynamic pricing on, the price
// comes from GetPrice when refresh is set and from the cache otherwise. A
// missing, stale or rejected price falls back to the static formula; store
// failures are returned.
func (k Keeper) QuotePremium(ctx context.Context, symbol string, coverage, duration uint64, refresh bool) (types.PremiumQuote, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.PremiumQuote{}, err
	}

	quote, err := k.quote(ctx, params, symbol, coverage, duration, refresh)
	if err != nil {
		return types.PremiumQuote{}, err
	}

	quote.ProtocolFee, err = types.ProtocolFee(quote.Premium, params.ProtocolFeeBps)
	if err != nil {
		return types.PremiumQuote{}, err
	}
	return quote, nil
}

func (k Keeper) quote(ctx context.Context, params types.Params, symbol string, coverage, duration uint64, refresh bool) (types.PremiumQuote, error) {
	if !params.DynamicPricing {
		premium, err := types.StaticPremium(coverage, duration)
		return types.PremiumQuote{Premium: premium}, err
	}

	price, err := k.lookupPrice(ctx, symbol, refresh)
	if err != nil {
		if !priceUnavailable(err) {
			return types.PremiumQuote{}, err
		}
		k.logger.Debug("dynamic pricing unavailable, using static premium", "symbol", symbol, "err", err)
		premium, err := types.StaticPremium(coverage, duration)
		return types.PremiumQuote{Premium: premium}, err
	}

	multiplier, err := k.assetsKeeper.GetRiskMultiplier(ctx, symbol)
	if err != nil {
		return types.PremiumQuote{}, err
	}

	premium, err := types.DynamicPremium(coverage, duration, multiplier, price)
	if err != nil {
		return types.PremiumQuote{}, err
	}
	return types.PremiumQuote{Premium: premium, Dynamic: true, Price: price}, nil
}

func (k Keeper) lookupPrice(ctx context.Context, symbol string, refresh bool) (uint64, error) {
	if refresh {
		return k.GetPrice(ctx, symbol)
	}
	entry, err := k.GetPriceReadOnly(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return entry.Price, nil
}

// priceUnavailable reports whether err means no usable price exists, as
// opposed to a failure reading state.
func priceUnavailable(err error) bool {
	return errors.IsOf(err,
		types.ErrOracleNotSet,
		types.ErrOracleUnavailable,
		types.ErrStalePrice,
		types.ErrInvalidOraclePrice,
		types.ErrPriceNotFound,
		assetstypes.ErrInvalidSymbol,
	)
}
