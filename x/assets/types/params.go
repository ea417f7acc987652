package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the parameters of the assets module.
type Params struct {
	// Admin is the registry owner allowed to register, update and revoke assets.
	Admin string `json:"admin"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{}
}

// Stringer method for Params.
func (p Params) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if p.Admin == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
		return errors.Wrap(err, "invalid admin address")
	}
	return nil
}
