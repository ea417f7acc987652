package types

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params *Params `json:"params"`
}

type QueryPolicyRequest struct {
	PolicyId uint64 `json:"policy_id"`
}

type QueryPolicyResponse struct {
	Policy Policy `json:"policy"`
}

type QueryClaimRequest struct {
	PolicyId uint64 `json:"policy_id"`
}

type QueryClaimResponse struct {
	Claim Claim `json:"claim"`
}

type QueryUserPoliciesRequest struct {
	Owner string `json:"owner"`
}

type QueryUserPoliciesResponse struct {
	PolicyIds []uint64 `json:"policy_ids"`
}

type QueryPriceRequest struct {
	Symbol string `json:"symbol"`
}

type QueryPriceResponse struct {
	Price      uint64 `json:"price"`
	LastUpdate uint64 `json:"last_update"`
}

type QueryPremiumQuoteRequest struct {
	CoverageAmount uint64 `json:"coverage_amount"`
	Duration       uint64 `json:"duration"`
	// Symbol selects the price and risk multiplier; empty means the native symbol.
	Symbol string `json:"symbol,omitempty"`
}

type QueryPremiumQuoteResponse struct {
	Quote PremiumQuote `json:"quote"`
}

type QueryPolicyStatusRequest struct {
	PolicyId uint64 `json:"policy_id"`
}

type QueryPolicyStatusResponse struct {
	Valid  bool   `json:"valid"`
	Status string `json:"status"`
}

type QueryStatsRequest struct{}

type QueryStatsResponse struct {
	PolicyCount     uint64 `json:"policy_count"`
	TotalPremiums   uint64 `json:"total_premiums"`
	TotalClaimsPaid uint64 `json:"total_claims_paid"`
	ProtocolFeeBps  uint64 `json:"protocol_fee_bps"`
	DynamicPricing  bool   `json:"dynamic_pricing"`
	Oracle          string `json:"oracle,omitempty"`
}
