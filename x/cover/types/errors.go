package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the cover module
const (
	BaseErrorCode uint32 = 1
)

// invalid input
var (
	ErrInvalidAddress     = sdkerrors.Register(ModuleName, BaseErrorCode+1, "invalid address")
	ErrInvalidAmount      = sdkerrors.Register(ModuleName, BaseErrorCode+2, "invalid amount")
	ErrInvalidDuration    = sdkerrors.Register(ModuleName, BaseErrorCode+3, "invalid duration")
	ErrInvalidPolicyType  = sdkerrors.Register(ModuleName, BaseErrorCode+4, "invalid policy type")
	ErrInvalidReason      = sdkerrors.Register(ModuleName, BaseErrorCode+5, "invalid claim reason")
	ErrInvalidFeeRate     = sdkerrors.Register(ModuleName, BaseErrorCode+6, "invalid protocol fee rate")
	ErrArithmeticOverflow = sdkerrors.Register(ModuleName, BaseErrorCode+7, "arithmetic overflow")
)

// not found
var (
	ErrPolicyNotFound = sdkerrors.Register(ModuleName, BaseErrorCode+20, "policy not found")
	ErrClaimNotFound  = sdkerrors.Register(ModuleName, BaseErrorCode+21, "claim not found")
	ErrPriceNotFound  = sdkerrors.Register(ModuleName, BaseErrorCode+22, "price not found")
)

// state conflict
var (
	ErrPolicyNotActive       = sdkerrors.Register(ModuleName, BaseErrorCode+40, "policy not active")
	ErrPolicyExpired         = sdkerrors.Register(ModuleName, BaseErrorCode+41, "policy expired")
	ErrClaimAlreadySubmitted = sdkerrors.Register(ModuleName, BaseErrorCode+42, "claim already submitted")
	ErrClaimNotPending       = sdkerrors.Register(ModuleName, BaseErrorCode+43, "claim not pending")
	ErrAssetClassDisabled    = sdkerrors.Register(ModuleName, BaseErrorCode+44, "asset class disabled")
	ErrAssetNotSupported     = sdkerrors.Register(ModuleName, BaseErrorCode+45, "asset not supported")
	ErrAssetClassMismatch    = sdkerrors.Register(ModuleName, BaseErrorCode+46, "asset class mismatch")
	ErrTooManyPolicies       = sdkerrors.Register(ModuleName, BaseErrorCode+47, "too many policies for owner")
)

// external failure and staleness
var (
	ErrTransferFailed     = sdkerrors.Register(ModuleName, BaseErrorCode+60, "asset transfer failed")
	ErrOracleNotSet       = sdkerrors.Register(ModuleName, BaseErrorCode+61, "oracle not set")
	ErrOracleUnavailable  = sdkerrors.Register(ModuleName, BaseErrorCode+62, "oracle call failed")
	ErrInvalidOraclePrice = sdkerrors.Register(ModuleName, BaseErrorCode+63, "oracle returned invalid price")
	ErrStalePrice         = sdkerrors.Register(ModuleName, BaseErrorCode+64, "stale price")
)
