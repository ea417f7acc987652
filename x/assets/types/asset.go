package types

import (
	"encoding/json"

	"github.com/parametric-cover/cover-node/util"
)

const (
	// MaxSymbolLength bounds an asset symbol.
	MaxSymbolLength = 10

	// MaxDecimals bounds the decimals of a registered asset.
	MaxDecimals = 18

	// DefaultRiskMultiplier is applied to symbols with no configured multiplier (1.0x).
	DefaultRiskMultiplier uint64 = 100

	// MaxRiskMultiplier caps a configured multiplier (10x).
	MaxRiskMultiplier uint64 = 1000
)

// AssetClass tags the payout rail of a policy.
type AssetClass string

const (
	AssetClassNative AssetClass = "native"
	AssetClassToken  AssetClass = "token"
)

// AllAssetClasses lists every known class in a stable order.
var AllAssetClasses = []AssetClass{AssetClassNative, AssetClassToken}

func (c AssetClass) String() string { return string(c) }

// Validate checks that c is one of the known classes.
func (c AssetClass) Validate() error {
	switch c {
	case AssetClassNative, AssetClassToken:
		return nil
	default:
		return ErrInvalidAssetClass.Wrapf("%q", string(c))
	}
}

// AssetRegistration is the registry record of a fungible token contract.
type AssetRegistration struct {
	Contract string `json:"contract"`
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
	Enabled  bool   `json:"enabled"`
}

// Stringer method for AssetRegistration.
func (a AssetRegistration) String() string {
	bz, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// ValidateBasic does the sanity check on the AssetRegistration fields.
func (a AssetRegistration) ValidateBasic() error {
	if !util.IsValidAddress(a.Contract, util.HEX) {
		return ErrInvalidAddress.Wrapf("contract %q is not a hex address", a.Contract)
	}
	if err := ValidateSymbol(a.Symbol); err != nil {
		return err
	}
	return ValidateDecimals(a.Decimals)
}

// ValidateSymbol checks an asset symbol: 1 to MaxSymbolLength ASCII letters or digits.
func ValidateSymbol(symbol string) error {
	if len(symbol) == 0 || len(symbol) > MaxSymbolLength {
		return ErrInvalidSymbol.Wrapf("length must be between 1 and %d, got %d", MaxSymbolLength, len(symbol))
	}
	for _, r := range symbol {
		isAlnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return ErrInvalidSymbol.Wrapf("%q contains %q", symbol, r)
		}
	}
	return nil
}

// ValidateDecimals checks decimals against MaxDecimals.
func ValidateDecimals(decimals uint32) error {
	if decimals > MaxDecimals {
		return ErrInvalidDecimals.Wrapf("%d exceeds %d", decimals, MaxDecimals)
	}
	return nil
}

// ValidateRiskMultiplier checks a multiplier is within 1..MaxRiskMultiplier.
func ValidateRiskMultiplier(multiplier uint64) error {
	if multiplier == 0 || multiplier > MaxRiskMultiplier {
		return ErrInvalidMultiplier.Wrapf("%d not in [1, %d]", multiplier, MaxRiskMultiplier)
	}
	return nil
}

// TokenMetadata is the bookkeeping view of a token contract as reported by the token itself.
type TokenMetadata struct {
	Contract    string `json:"contract"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint32 `json:"decimals"`
	TotalSupply uint64 `json:"total_supply"`
	URI         string `json:"uri,omitempty"`
}
