package types

import (
	"strings"

	"cosmossdk.io/collections"

	"github.com/parametric-cover/cover-node/util"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// AssetsKey saves the asset registrations collection prefix
	AssetsKey = collections.NewPrefix(1)

	// AssetsName is the name of the assets collection.
	AssetsName = "assets"

	// RiskMultipliersKey saves the per-symbol risk multiplier collection prefix
	RiskMultipliersKey = collections.NewPrefix(2)

	// RiskMultipliersName is the name of the riskMultipliers collection.
	RiskMultipliersName = "risk_multipliers"

	// AssetClassesKey saves the asset class switches collection prefix
	AssetClassesKey = collections.NewPrefix(3)

	// AssetClassesName is the name of the assetClasses collection.
	AssetClassesName = "asset_classes"
)

const (
	ModuleName = "assets"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)

// GetAssetStorageKey returns the storage key of an asset contract: the
// lowercase 0x form of the parsed address, so neither checksum casing nor a
// missing 0x prefix creates a second registration.
func GetAssetStorageKey(contract string) string {
	hex, err := util.NormalizeHex(contract)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contract))
	}
	return strings.ToLower(hex)
}

// NormalizeContract returns the checksummed 0x form of a contract address.
func NormalizeContract(contract string) string {
	hex, err := util.NormalizeHex(contract)
	if err != nil {
		return strings.TrimSpace(contract)
	}
	return hex
}
