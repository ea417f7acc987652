package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// RiskMultiplier is the genesis form of one risk multiplier table row.
type RiskMultiplier struct {
	Symbol     string `json:"symbol"`
	Multiplier uint64 `json:"multiplier"`
}

// AssetClassSwitch is the genesis form of one asset class switch.
type AssetClassSwitch struct {
	Class   AssetClass `json:"class"`
	Enabled bool       `json:"enabled"`
}

// GenesisState defines the assets module's genesis state.
type GenesisState struct {
	Params          Params              `json:"params"`
	Assets          []AssetRegistration `json:"assets"`
	RiskMultipliers []RiskMultiplier    `json:"risk_multipliers"`
	AssetClasses    []AssetClassSwitch  `json:"asset_classes"`
}

// NewGenesisState creates a new genesis state with default values.
func NewGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		AssetClasses: []AssetClassSwitch{
			{Class: AssetClassNative, Enabled: true},
			{Class: AssetClassToken, Enabled: true},
		},
	}
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return NewGenesisState()
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs *GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.Assets))
	for _, a := range gs.Assets {
		if err := a.ValidateBasic(); err != nil {
			return err
		}
		key := GetAssetStorageKey(a.Contract)
		if _, dup := seen[key]; dup {
			return errors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate asset %s", a.Contract)
		}
		seen[key] = struct{}{}
	}

	for _, rm := range gs.RiskMultipliers {
		if err := ValidateSymbol(rm.Symbol); err != nil {
			return err
		}
		if err := ValidateRiskMultiplier(rm.Multiplier); err != nil {
			return err
		}
	}

	for _, c := range gs.AssetClasses {
		if err := c.Class.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// String implements the Stringer interface.
func (gs GenesisState) String() string {
	out, _ := json.MarshalIndent(gs, "", "  ")
	return string(out)
}
