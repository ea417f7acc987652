package types

const (
	EventTypeAssetRegistered   = "asset_registered"
	EventTypeAssetUpdated      = "asset_updated"
	EventTypeAssetRevoked      = "asset_revoked"
	EventTypeRiskMultiplierSet = "risk_multiplier_set"
	EventTypeAssetClassToggled = "asset_class_toggled"

	AttributeKeyContract   = "contract"
	AttributeKeySymbol     = "symbol"
	AttributeKeyDecimals   = "decimals"
	AttributeKeyEnabled    = "enabled"
	AttributeKeyMultiplier = "multiplier"
	AttributeKeyAssetClass = "asset_class"
)
