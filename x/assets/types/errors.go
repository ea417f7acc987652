package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the assets module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrInvalidAddress       = sdkerrors.Register(ModuleName, BaseErrorCode+1, "invalid address")
	ErrAlreadyRegistered    = sdkerrors.Register(ModuleName, BaseErrorCode+2, "asset already registered")
	ErrAssetNotFound        = sdkerrors.Register(ModuleName, BaseErrorCode+3, "asset not found")
	ErrAssetAlreadyDisabled = sdkerrors.Register(ModuleName, BaseErrorCode+4, "asset already disabled")
	ErrInvalidSymbol        = sdkerrors.Register(ModuleName, BaseErrorCode+5, "invalid symbol")
	ErrInvalidDecimals      = sdkerrors.Register(ModuleName, BaseErrorCode+6, "invalid decimals")
	ErrInvalidMultiplier    = sdkerrors.Register(ModuleName, BaseErrorCode+7, "invalid risk multiplier")
	ErrInvalidAssetClass    = sdkerrors.Register(ModuleName, BaseErrorCode+8, "invalid asset class")
	ErrTokenMetadataFailed  = sdkerrors.Register(ModuleName, BaseErrorCode+9, "token metadata unavailable")
)
