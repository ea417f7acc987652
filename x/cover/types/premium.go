package types

import (
	"github.com/holiman/uint256"
)

// Pricing constants. Rates are in basis points (1/10000).
const (
	BasisPoints uint64 = 10_000

	// BasePremiumRate is the static premium rate (2%).
	BasePremiumRate uint64 = 200

	// MinPremium floors every quote, in the smallest unit of the covered asset.
	MinPremium uint64 = 1_000

	// RiskFactor is the rate added per 1.0x of risk multiplier, scaled by 1/100.
	RiskFactor uint64 = 50

	// DurationRateBps is the rate added to the duration factor per BlocksPerDay.
	DurationRateBps uint64 = 10

	// BlocksPerDay is the number of heights in one pricing day.
	BlocksPerDay uint64 = 144

	// HighValuePriceThreshold is the USD price (6 decimals) above which the
	// volatility surcharge applies (1000 USD).
	HighValuePriceThreshold uint64 = 1_000_000_000

	// VolatilitySurchargePercent scales a high value premium (110%).
	VolatilitySurchargePercent uint64 = 110

	// PriceDecimals is the fixed-point precision of oracle prices.
	PriceDecimals uint32 = 6
)

// PremiumQuote is the priced outcome of a coverage request.
type PremiumQuote struct {
	Premium     uint64 `json:"premium"`
	ProtocolFee uint64 `json:"protocol_fee"`
	// Dynamic is set when the dynamic formula produced the premium.
	Dynamic bool `json:"dynamic"`
	// Price is the USD price used, zero when none was obtained.
	Price uint64 `json:"price,omitempty"`
}

// StaticPremium prices coverage with the base rate:
//
//	max(MinPremium, coverage*BasePremiumRate/10000 * (10000 + duration*10/144)/10000)
//
// The rate is applied first and the duration factor scales the rate adjusted
// base, so the two compose multiplicatively.
func StaticPremium(coverage, duration uint64) (uint64, error) {
	return scaledPremium(coverage, duration, BasePremiumRate, false)
}

// DynamicPremium prices coverage with a risk adjusted rate
// BasePremiumRate + multiplier*RiskFactor/100 and applies the volatility
// surcharge when price exceeds HighValuePriceThreshold.
func DynamicPremium(coverage, duration, riskMultiplier, price uint64) (uint64, error) {
	rate, err := RiskAdjustedRate(riskMultiplier)
	if err != nil {
		return 0, err
	}
	return scaledPremium(coverage, duration, rate, price > HighValuePriceThreshold)
}

// RiskAdjustedRate returns BasePremiumRate + multiplier*RiskFactor/100.
func RiskAdjustedRate(riskMultiplier uint64) (uint64, error) {
	adj, err := MulDiv(riskMultiplier, RiskFactor, 100)
	if err != nil {
		return 0, err
	}
	return SafeAdd(BasePremiumRate, adj)
}

// DurationFactor returns 10000 + duration*DurationRateBps/BlocksPerDay.
func DurationFactor(duration uint64) (uint64, error) {
	extra, err := MulDiv(duration, DurationRateBps, BlocksPerDay)
	if err != nil {
		return 0, err
	}
	return SafeAdd(BasisPoints, extra)
}

func scaledPremium(coverage, duration, rateBps uint64, surcharge bool) (uint64, error) {
	base, err := MulDiv(coverage, rateBps, BasisPoints)
	if err != nil {
		return 0, err
	}

	factor, err := DurationFactor(duration)
	if err != nil {
		return 0, err
	}

	premium, err := MulDiv(base, factor, BasisPoints)
	if err != nil {
		return 0, err
	}

	if surcharge {
		premium, err = MulDiv(premium, VolatilitySurchargePercent, 100)
		if err != nil {
			return 0, err
		}
	}

	return max(premium, MinPremium), nil
}

// ProtocolFee is the share of a premium owed to the protocol at feeBps.
func ProtocolFee(premium, feeBps uint64) (uint64, error) {
	return MulDiv(premium, feeBps, BasisPoints)
}

// USDValue converts an amount with the given decimals into micro-USD at a
// 6 decimal price.
func USDValue(amount, price uint64, decimals uint32) (uint64, error) {
	scale := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
	prod, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(amount), uint256.NewInt(price))
	if overflow {
		return 0, ErrArithmeticOverflow.Wrapf("%d * %d", amount, price)
	}
	q := new(uint256.Int).Div(prod, scale)
	if !q.IsUint64() {
		return 0, ErrArithmeticOverflow.Wrapf("usd value of %d at %d", amount, price)
	}
	return q.Uint64(), nil
}

// MulDiv returns floor(x*y/d), failing when the result does not fit uint64.
func MulDiv(x, y, d uint64) (uint64, error) {
	if d == 0 {
		return 0, ErrArithmeticOverflow.Wrap("division by zero")
	}
	prod, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(x), uint256.NewInt(y))
	if overflow {
		return 0, ErrArithmeticOverflow.Wrapf("%d * %d", x, y)
	}
	q := new(uint256.Int).Div(prod, uint256.NewInt(d))
	if !q.IsUint64() {
		return 0, ErrArithmeticOverflow.Wrapf("%d * %d / %d", x, y, d)
	}
	return q.Uint64(), nil
}

// SafeAdd returns a+b, failing on uint64 overflow.
func SafeAdd(a, b uint64) (uint64, error) {
	sum, overflow := new(uint256.Int).AddOverflow(uint256.NewInt(a), uint256.NewInt(b))
	if overflow || !sum.IsUint64() {
		return 0, ErrArithmeticOverflow.Wrapf("%d + %d", a, b)
	}
	return sum.Uint64(), nil
}
