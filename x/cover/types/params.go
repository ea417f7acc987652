package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/parametric-cover/cover-node/util"
	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
)

const (
	// MaxProtocolFeeBps caps the protocol fee at 10%.
	MaxProtocolFeeBps uint64 = 1_000

	DefaultNativeDenom    = "upc"
	DefaultNativeSymbol   = "PC"
	DefaultNativeDecimals = uint32(6)
)

// Params defines the parameters of the cover module.
type Params struct {
	// Admin manages the oracle, fee, pricing mode and treasury.
	Admin string `json:"admin"`

	// ClaimAuthority approves and denies claims. Empty means Admin.
	ClaimAuthority string `json:"claim_authority,omitempty"`

	// Oracle is the hex address of the price oracle contract.
	Oracle string `json:"oracle,omitempty"`

	DynamicPricing bool   `json:"dynamic_pricing"`
	ProtocolFeeBps uint64 `json:"protocol_fee_bps"`

	// Native asset used for native class premiums and payouts.
	NativeDenom    string `json:"native_denom"`
	NativeSymbol   string `json:"native_symbol"`
	NativeDecimals uint32 `json:"native_decimals"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		NativeDenom:    DefaultNativeDenom,
		NativeSymbol:   DefaultNativeSymbol,
		NativeDecimals: DefaultNativeDecimals,
	}
}

// Stringer method for Params.
func (p Params) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// ClaimReviewer returns the account allowed to review claims.
func (p Params) ClaimReviewer() string {
	if p.ClaimAuthority != "" {
		return p.ClaimAuthority
	}
	return p.Admin
}

// HasOracle reports whether an oracle is configured.
func (p Params) HasOracle() bool {
	return p.Oracle != ""
}

// OracleAddress returns the configured oracle address.
func (p Params) OracleAddress() common.Address {
	return common.HexToAddress(p.Oracle)
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if p.Admin != "" {
		if err := validateBech32(p.Admin, "admin"); err != nil {
			return err
		}
	}
	if p.ClaimAuthority != "" {
		if err := validateBech32(p.ClaimAuthority, "claim authority"); err != nil {
			return err
		}
	}
	if p.Oracle != "" && !util.IsValidAddress(p.Oracle, util.HEX) {
		return ErrInvalidAddress.Wrapf("oracle %q is not a hex address", p.Oracle)
	}
	if err := ValidateProtocolFee(p.ProtocolFeeBps); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return errors.Wrap(err, "invalid native denom")
	}
	if err := assetstypes.ValidateSymbol(p.NativeSymbol); err != nil {
		return errors.Wrap(err, "invalid native symbol")
	}
	if err := assetstypes.ValidateDecimals(p.NativeDecimals); err != nil {
		return errors.Wrap(err, "invalid native decimals")
	}
	return nil
}

// ValidateProtocolFee checks the fee against MaxProtocolFeeBps.
func ValidateProtocolFee(feeBps uint64) error {
	if feeBps > MaxProtocolFeeBps {
		return ErrInvalidFeeRate.Wrapf("%d bps exceeds %d", feeBps, MaxProtocolFeeBps)
	}
	return nil
}

func validateBech32(addr, field string) error {
	if !util.IsValidAddress(addr, util.COSMOS) {
		return ErrInvalidAddress.Wrapf("%s %q is not a bech32 address", field, addr)
	}
	return nil
}
