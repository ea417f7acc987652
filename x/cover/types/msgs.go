package types

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parametric-cover/cover-node/util"
	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
)

// Message types for the cover module
const (
	TypeMsgUpdateParams      = "update_params"
	TypeMsgCreatePolicy      = "create_policy"
	TypeMsgCreateTokenPolicy = "create_token_policy"
	TypeMsgCancelPolicy      = "cancel_policy"
	TypeMsgSubmitClaim       = "submit_claim"
	TypeMsgApproveClaim      = "approve_claim"
	TypeMsgApproveTokenClaim = "approve_token_claim"
	TypeMsgDenyClaim         = "deny_claim"
	TypeMsgSetOracle         = "set_oracle"
	TypeMsgSetDynamicPricing = "set_dynamic_pricing"
	TypeMsgSetProtocolFee    = "set_protocol_fee"
	TypeMsgClearPrice        = "clear_price"
	TypeMsgEmergencyWithdraw = "emergency_withdraw"
)

func validateSigner(signer string) error {
	if _, err := sdk.AccAddressFromBech32(signer); err != nil {
		return errors.Wrap(err, "invalid signer address")
	}
	return nil
}

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

// MsgCreatePolicy buys native asset coverage.
type MsgCreatePolicy struct {
	Owner          string `json:"owner"`
	CoverageAmount uint64 `json:"coverage_amount"`
	Duration       uint64 `json:"duration"`
	PolicyType     string `json:"policy_type"`
}

type MsgCreatePolicyResponse struct {
	PolicyId uint64 `json:"policy_id"`
	Premium  uint64 `json:"premium"`
}

// NewMsgCreatePolicy creates new instance of MsgCreatePolicy
func NewMsgCreatePolicy(owner sdk.Address, coverage, duration uint64, policyType string) *MsgCreatePolicy {
	return &MsgCreatePolicy{
		Owner:          owner.String(),
		CoverageAmount: coverage,
		Duration:       duration,
		PolicyType:     policyType,
	}
}

// Route returns the name of the module
func (msg MsgCreatePolicy) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgCreatePolicy) Type() string { return TypeMsgCreatePolicy }

// GetSigners returns the expected signers for a MsgCreatePolicy message.
func (msg *MsgCreatePolicy) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{addr}
}

// Request converts the message into a policy request.
func (msg *MsgCreatePolicy) Request() CreatePolicyRequest {
	return CreatePolicyRequest{
		Owner:          msg.Owner,
		CoverageAmount: msg.CoverageAmount,
		Duration:       msg.Duration,
		PolicyType:     msg.PolicyType,
		AssetClass:     assetstypes.AssetClassNative,
	}
}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgCreatePolicy) ValidateBasic() error {
	if err := validateSigner(msg.Owner); err != nil {
		return err
	}
	return msg.Request().ValidateBasic()
}

// MsgCreateTokenPolicy buys coverage denominated in a registered token.
type MsgCreateTokenPolicy struct {
	Owner          string `json:"owner"`
	CoverageAmount uint64 `json:"coverage_amount"`
	Duration       uint64 `json:"duration"`
	PolicyType     string `json:"policy_type"`
	TokenContract  string `json:"token_contract"`
}

type MsgCreateTokenPolicyResponse struct {
	PolicyId uint64 `json:"policy_id"`
	Premium  uint64 `json:"premium"`
}

// Route returns the name of the module
func (msg MsgCreateTokenPolicy) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgCreateTokenPolicy) Type() string { return TypeMsgCreateTokenPolicy }

// Request converts the message into a policy request.
func (msg *MsgCreateTokenPolicy) Request() CreatePolicyRequest {
	return CreatePolicyRequest{
		Owner:          msg.Owner,
		CoverageAmount: msg.CoverageAmount,
		Duration:       msg.Duration,
		PolicyType:     msg.PolicyType,
		AssetClass:     assetstypes.AssetClassToken,
		TokenContract:  msg.TokenContract,
	}
}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgCreateTokenPolicy) ValidateBasic() error {
	if err := validateSigner(msg.Owner); err != nil {
		return err
	}
	return msg.Request().ValidateBasic()
}

// MsgCancelPolicy deactivates an unclaimed policy. No premium is refunded.
type MsgCancelPolicy struct {
	Owner    string `json:"owner"`
	PolicyId uint64 `json:"policy_id"`
}

type MsgCancelPolicyResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgCancelPolicy) ValidateBasic() error {
	return validateSigner(msg.Owner)
}

// MsgSubmitClaim files the single claim a policy allows.
type MsgSubmitClaim struct {
	Claimant string `json:"claimant"`
	PolicyId uint64 `json:"policy_id"`
	Amount   uint64 `json:"amount"`
	Reason   string `json:"reason"`
}

type MsgSubmitClaimResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgSubmitClaim) ValidateBasic() error {
	if err := validateSigner(msg.Claimant); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount.Wrap("claim amount must be positive")
	}
	return ValidateReason(msg.Reason)
}

// MsgApproveClaim pays a pending native claim. Claim authority only.
type MsgApproveClaim struct {
	Signer   string `json:"signer"`
	PolicyId uint64 `json:"policy_id"`
}

type MsgApproveClaimResponse struct {
	Amount uint64 `json:"amount"`
}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgApproveClaim) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgApproveTokenClaim pays a pending token claim from the named contract.
type MsgApproveTokenClaim struct {
	Signer        string `json:"signer"`
	PolicyId      uint64 `json:"policy_id"`
	TokenContract string `json:"token_contract"`
}

type MsgApproveTokenClaimResponse struct {
	Amount uint64 `json:"amount"`
}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgApproveTokenClaim) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if !util.IsValidAddress(msg.TokenContract, util.HEX) {
		return ErrInvalidAddress.Wrapf("token contract %q is not a hex address", msg.TokenContract)
	}
	return nil
}

// MsgDenyClaim rejects a pending claim. The policy cannot be claimed again.
type MsgDenyClaim struct {
	Signer   string `json:"signer"`
	PolicyId uint64 `json:"policy_id"`
}

type MsgDenyClaimResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgDenyClaim) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgSetOracle points the price cache at an oracle contract.
type MsgSetOracle struct {
	Signer string `json:"signer"`
	Oracle string `json:"oracle"`
}

type MsgSetOracleResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgSetOracle) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if !util.IsValidAddress(msg.Oracle, util.HEX) {
		return ErrInvalidAddress.Wrapf("oracle %q is not a hex address", msg.Oracle)
	}
	return nil
}

// MsgSetDynamicPricing switches between static and dynamic premiums.
type MsgSetDynamicPricing struct {
	Signer  string `json:"signer"`
	Enabled bool   `json:"enabled"`
}

type MsgSetDynamicPricingResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgSetDynamicPricing) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgSetProtocolFee sets the protocol fee rate in basis points.
type MsgSetProtocolFee struct {
	Signer string `json:"signer"`
	FeeBps uint64 `json:"fee_bps"`
}

type MsgSetProtocolFeeResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgSetProtocolFee) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	return ValidateProtocolFee(msg.FeeBps)
}

// MsgClearPrice invalidates the cached price of a symbol.
type MsgClearPrice struct {
	Signer string `json:"signer"`
	Symbol string `json:"symbol"`
}

type MsgClearPriceResponse struct{}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgClearPrice) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	return assetstypes.ValidateSymbol(msg.Symbol)
}

// MsgEmergencyWithdraw moves funds out of the treasury. An Amount of zero
// withdraws the whole balance of the asset.
type MsgEmergencyWithdraw struct {
	Signer        string                 `json:"signer"`
	Recipient     string                 `json:"recipient"`
	Amount        uint64                 `json:"amount"`
	AssetClass    assetstypes.AssetClass `json:"asset_class"`
	TokenContract string                 `json:"token_contract,omitempty"`
}

type MsgEmergencyWithdrawResponse struct {
	Amount uint64 `json:"amount"`
}

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgEmergencyWithdraw) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "recipient %q: %s", msg.Recipient, err)
	}
	if err := msg.AssetClass.Validate(); err != nil {
		return err
	}
	if msg.AssetClass == assetstypes.AssetClassToken && !util.IsValidAddress(msg.TokenContract, util.HEX) {
		return ErrInvalidAddress.Wrapf("token contract %q is not a hex address", msg.TokenContract)
	}
	return nil
}
