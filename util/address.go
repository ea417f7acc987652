package util

import (
	"strings"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// convert the 0x and/or cosmos address to raw bytes
func ConvertAnyAddressToBytes(addr string) ([]byte, error) {
	addr = strings.TrimSpace(addr)
	if len(addr) == 0 {
		return nil, errors.Wrap(sdkerrors.ErrInvalidAddress, "empty address")
	}

	if common.IsHexAddress(addr) {
		return common.FromHex(addr), nil
	}

	return sdk.AccAddressFromBech32(addr)
}

// get address pair returns both the cosmos and the 0x addresses, or an error
func GetAddressPair(addr string) (sdk.AccAddress, common.Address, error) {
	bz, err := ConvertAnyAddressToBytes(addr)
	if err != nil {
		return nil, common.Address{}, err
	}
	if len(bz) != common.AddressLength {
		return nil, common.Address{}, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address length: got %d, want %d", len(bz), common.AddressLength)
	}

	return sdk.AccAddress(bz), common.BytesToAddress(bz), nil
}

// NormalizeHex returns the checksummed 0x form of a cosmos or 0x address.
// A hex address without the 0x prefix is accepted.
func NormalizeHex(addr string) (string, error) {
	_, hex, err := GetAddressPair(addr)
	if err != nil {
		return "", err
	}
	return hex.Hex(), nil
}

// SamePrincipal reports whether two addresses, in either cosmos or 0x
// form, refer to the same 20 byte account. Unparseable input never matches.
func SamePrincipal(a, b string) bool {
	_, ha, err := GetAddressPair(a)
	if err != nil {
		return false
	}
	_, hb, err := GetAddressPair(b)
	if err != nil {
		return false
	}
	return ha == hb
}

// AddressType names the encoding an address field must use.
type AddressType int

const (
	// COSMOS is a bech32 account address.
	COSMOS AddressType = iota
	// HEX is a 20 byte hex address, with or without the 0x prefix.
	HEX
)

// IsValidAddress reports whether addr parses in the given encoding.
func IsValidAddress(addr string, addrType AddressType) bool {
	switch addrType {
	case COSMOS:
		_, err := sdk.AccAddressFromBech32(addr)
		return err == nil
	case HEX:
		return common.IsHexAddress(addr)
	}
	return false
}
