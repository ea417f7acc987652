package types

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/util"
)

// Message types for the assets module
const (
	TypeMsgUpdateParams         = "update_params"
	TypeMsgRegisterAsset        = "register_asset"
	TypeMsgUpdateAsset          = "update_asset"
	TypeMsgRevokeAsset          = "revoke_asset"
	TypeMsgSetRiskMultiplier    = "set_risk_multiplier"
	TypeMsgSetAssetClassEnabled = "set_asset_class_enabled"
)

// MsgUpdateParams replaces the module params. Governance only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errors.Wrap(err, "invalid authority address")
	}
	return msg.Params.Validate()
}

// MsgRegisterAsset registers a fungible token contract. Admin only.
type MsgRegisterAsset struct {
	Signer   string `json:"signer"`
	Contract string `json:"contract"`
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
}

type MsgRegisterAssetResponse struct{}

// NewMsgRegisterAsset creates new instance of MsgRegisterAsset
func NewMsgRegisterAsset(sender sdk.Address, contract, symbol string, decimals uint32) *MsgRegisterAsset {
	return &MsgRegisterAsset{
		Signer:   sender.String(),
		Contract: contract,
		Symbol:   symbol,
		Decimals: decimals,
	}
}

// Route returns the name of the module
func (msg MsgRegisterAsset) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgRegisterAsset) Type() string { return TypeMsgRegisterAsset }

// GetSigners returns the expected signers for a MsgRegisterAsset message.
func (msg *MsgRegisterAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Signer)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgRegisterAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrap(err, "invalid signer address")
	}

	return AssetRegistration{
		Contract: msg.Contract,
		Symbol:   msg.Symbol,
		Decimals: msg.Decimals,
	}.ValidateBasic()
}

// MsgUpdateAsset rewrites an existing registration. Invalid symbol or
// decimals fall back to the stored values instead of failing.
type MsgUpdateAsset struct {
	Signer   string `json:"signer"`
	Contract string `json:"contract"`
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
	Enabled  bool   `json:"enabled"`
}

type MsgUpdateAssetResponse struct {
	Asset AssetRegistration `json:"asset"`
}

// Route returns the name of the module
func (msg MsgUpdateAsset) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgUpdateAsset) Type() string { return TypeMsgUpdateAsset }

// ValidateBasic does a sanity check on the provided data. Symbol and
// decimals are deliberately not checked here.
func (msg *MsgUpdateAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrap(err, "invalid signer address")
	}
	if !util.IsValidAddress(msg.Contract, util.HEX) {
		return ErrInvalidAddress.Wrapf("contract %q is not a hex address", msg.Contract)
	}
	return nil
}

// MsgRevokeAsset disables a registered asset.
type MsgRevokeAsset struct {
	Signer   string `json:"signer"`
	Contract string `json:"contract"`
}

type MsgRevokeAssetResponse struct{}

// Route returns the name of the module
func (msg MsgRevokeAsset) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgRevokeAsset) Type() string { return TypeMsgRevokeAsset }

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgRevokeAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrap(err, "invalid signer address")
	}
	if !util.IsValidAddress(msg.Contract, util.HEX) {
		return ErrInvalidAddress.Wrapf("contract %q is not a hex address", msg.Contract)
	}
	return nil
}

// MsgSetRiskMultiplier configures the risk multiplier of a symbol.
type MsgSetRiskMultiplier struct {
	Signer     string `json:"signer"`
	Symbol     string `json:"symbol"`
	Multiplier uint64 `json:"multiplier"`
}

type MsgSetRiskMultiplierResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgSetRiskMultiplier) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrap(err, "invalid signer address")
	}
	if err := ValidateSymbol(msg.Symbol); err != nil {
		return err
	}
	return ValidateRiskMultiplier(msg.Multiplier)
}

// MsgSetAssetClassEnabled switches an asset class on or off.
type MsgSetAssetClassEnabled struct {
	Signer  string     `json:"signer"`
	Class   AssetClass `json:"class"`
	Enabled bool       `json:"enabled"`
}

type MsgSetAssetClassEnabledResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgSetAssetClassEnabled) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrap(err, "invalid signer address")
	}
	return msg.Class.Validate()
}
