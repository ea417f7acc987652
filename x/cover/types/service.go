package types

import "context"

// MsgServer is the set of state-changing handlers of the cover module.
type MsgServer interface {
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	CreatePolicy(ctx context.Context, msg *MsgCreatePolicy) (*MsgCreatePolicyResponse, error)
	CreateTokenPolicy(ctx context.Context, msg *MsgCreateTokenPolicy) (*MsgCreateTokenPolicyResponse, error)
	CancelPolicy(ctx context.Context, msg *MsgCancelPolicy) (*MsgCancelPolicyResponse, error)
	SubmitClaim(ctx context.Context, msg *MsgSubmitClaim) (*MsgSubmitClaimResponse, error)
	ApproveClaim(ctx context.Context, msg *MsgApproveClaim) (*MsgApproveClaimResponse, error)
	ApproveTokenClaim(ctx context.Context, msg *MsgApproveTokenClaim) (*MsgApproveTokenClaimResponse, error)
	DenyClaim(ctx context.Context, msg *MsgDenyClaim) (*MsgDenyClaimResponse, error)
	SetOracle(ctx context.Context, msg *MsgSetOracle) (*MsgSetOracleResponse, error)
	SetDynamicPricing(ctx context.Context, msg *MsgSetDynamicPricing) (*MsgSetDynamicPricingResponse, error)
	SetProtocolFee(ctx context.Context, msg *MsgSetProtocolFee) (*MsgSetProtocolFeeResponse, error)
	ClearPrice(ctx context.Context, msg *MsgClearPrice) (*MsgClearPriceResponse, error)
	EmergencyWithdraw(ctx context.Context, msg *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error)
}

// QueryServer is the set of read handlers of the cover module.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Policy(ctx context.Context, req *QueryPolicyRequest) (*QueryPolicyResponse, error)
	Claim(ctx context.Context, req *QueryClaimRequest) (*QueryClaimResponse, error)
	UserPolicies(ctx context.Context, req *QueryUserPoliciesRequest) (*QueryUserPoliciesResponse, error)
	Price(ctx context.Context, req *QueryPriceRequest) (*QueryPriceResponse, error)
	PremiumQuote(ctx context.Context, req *QueryPremiumQuoteRequest) (*QueryPremiumQuoteResponse, error)
	PolicyStatus(ctx context.Context, req *QueryPolicyStatusRequest) (*QueryPolicyStatusResponse, error)
	Stats(ctx context.Context, req *QueryStatsRequest) (*QueryStatsResponse, error)
}
