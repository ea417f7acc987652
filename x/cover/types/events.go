package types

const (
	EventTypePolicyCreated     = "policy_created"
	EventTypePolicyCancelled   = "policy_cancelled"
	EventTypeClaimSubmitted    = "claim_submitted"
	EventTypeClaimApproved     = "claim_approved"
	EventTypeClaimDenied       = "claim_denied"
	EventTypePriceRefreshed    = "price_refreshed"
	EventTypePriceCleared      = "price_cleared"
	EventTypeOracleSet         = "oracle_set"
	EventTypePricingToggled    = "dynamic_pricing_toggled"
	EventTypeProtocolFeeSet    = "protocol_fee_set"
	EventTypeEmergencyWithdraw = "emergency_withdraw"

	AttributeKeyPolicyId    = "policy_id"
	AttributeKeyOwner       = "owner"
	AttributeKeyClaimant    = "claimant"
	AttributeKeyCoverage    = "coverage"
	AttributeKeyPremium     = "premium"
	AttributeKeyAmount      = "amount"
	AttributeKeyStartHeight = "start_height"
	AttributeKeyEndHeight   = "end_height"
	AttributeKeyAssetClass  = "asset_class"
	AttributeKeyContract    = "contract"
	AttributeKeySymbol      = "symbol"
	AttributeKeyPrice       = "price"
	AttributeKeyOracle      = "oracle"
	AttributeKeyEnabled     = "enabled"
	AttributeKeyFeeBps      = "fee_bps"
	AttributeKeyRecipient   = "recipient"
)
