package types

import (
	"encoding/json"

	"github.com/parametric-cover/cover-node/util"
	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
)

const (
	// MinDuration is the largest duration that is still rejected; a policy
	// must run for more than one pricing day.
	MinDuration uint64 = 143

	// MaxPolicyTypeLength bounds the free-form policy type label.
	MaxPolicyTypeLength = 64

	// MaxPoliciesPerUser bounds the owner index.
	MaxPoliciesPerUser = 20
)

// UsdValuation is the micro-USD snapshot taken at creation when a fresh price was obtained.
type UsdValuation struct {
	Symbol      string `json:"symbol"`
	Price       uint64 `json:"price"`
	CoverageUSD uint64 `json:"coverage_usd"`
	PremiumUSD  uint64 `json:"premium_usd"`
}

// Policy is a coverage record. Policies are never deleted.
type Policy struct {
	Id             uint64                 `json:"id"`
	Owner          string                 `json:"owner"`
	CoverageAmount uint64                 `json:"coverage_amount"`
	PremiumPaid    uint64                 `json:"premium_paid"`
	StartHeight    uint64                 `json:"start_height"`
	EndHeight      uint64                 `json:"end_height"`
	Active         bool                   `json:"active"`
	ClaimSubmitted bool                   `json:"claim_submitted"`
	ClaimApproved  bool                   `json:"claim_approved"`
	PolicyType     string                 `json:"policy_type"`
	AssetClass     assetstypes.AssetClass `json:"asset_class"`
	TokenContract  string                 `json:"token_contract,omitempty"`
	Valuation      *UsdValuation          `json:"valuation,omitempty"`
}

// Stringer method for Policy.
func (p Policy) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// IsValidAt reports whether the policy is active and height is inside its term.
func (p Policy) IsValidAt(height uint64) bool {
	return p.Active && p.StartHeight <= height && height <= p.EndHeight
}

// Status is a display label derived from the policy flags at height.
func (p Policy) Status(height uint64) string {
	switch {
	case p.ClaimApproved:
		return "claimed"
	case !p.Active:
		return "cancelled"
	case height > p.EndHeight:
		return "expired"
	case p.ClaimSubmitted:
		return "claim_pending"
	default:
		return "active"
	}
}

// Validate checks the stored invariants of a policy.
func (p Policy) Validate() error {
	if p.Id == 0 {
		return ErrPolicyNotFound.Wrap("policy id must be positive")
	}
	if err := validateBech32(p.Owner, "owner"); err != nil {
		return err
	}
	if p.CoverageAmount == 0 {
		return ErrInvalidAmount.Wrapf("policy %d has zero coverage", p.Id)
	}
	if p.EndHeight <= p.StartHeight {
		return ErrInvalidDuration.Wrapf("policy %d ends at %d, not after start %d", p.Id, p.EndHeight, p.StartHeight)
	}
	if err := ValidatePolicyType(p.PolicyType); err != nil {
		return err
	}
	if p.ClaimApproved && p.Active {
		return ErrClaimAlreadySubmitted.Wrapf("policy %d is approved but still active", p.Id)
	}
	if p.ClaimApproved && !p.ClaimSubmitted {
		return ErrClaimNotFound.Wrapf("policy %d is approved without a claim", p.Id)
	}
	if err := p.AssetClass.Validate(); err != nil {
		return err
	}
	switch p.AssetClass {
	case assetstypes.AssetClassToken:
		if !util.IsValidAddress(p.TokenContract, util.HEX) {
			return ErrInvalidAddress.Wrapf("token policy %d needs a contract, got %q", p.Id, p.TokenContract)
		}
	default:
		if p.TokenContract != "" {
			return ErrAssetClassMismatch.Wrapf("native policy %d carries contract %s", p.Id, p.TokenContract)
		}
	}
	return nil
}

// ValidatePolicyType checks the policy type label is 1 to MaxPolicyTypeLength bytes.
func ValidatePolicyType(policyType string) error {
	if len(policyType) == 0 || len(policyType) > MaxPolicyTypeLength {
		return ErrInvalidPolicyType.Wrapf("length must be between 1 and %d, got %d", MaxPolicyTypeLength, len(policyType))
	}
	return nil
}

// ValidateDuration checks that a duration is longer than MinDuration.
func ValidateDuration(duration uint64) error {
	if duration <= MinDuration {
		return ErrInvalidDuration.Wrapf("%d must exceed %d", duration, MinDuration)
	}
	return nil
}

// CreatePolicyRequest carries the owner supplied terms of a new policy.
type CreatePolicyRequest struct {
	Owner          string
	CoverageAmount uint64
	Duration       uint64
	PolicyType     string
	AssetClass     assetstypes.AssetClass
	TokenContract  string
}

// ValidateBasic checks the request without touching state.
func (r CreatePolicyRequest) ValidateBasic() error {
	if r.CoverageAmount == 0 {
		return ErrInvalidAmount.Wrap("coverage must be positive")
	}
	if err := ValidateDuration(r.Duration); err != nil {
		return err
	}
	if err := ValidatePolicyType(r.PolicyType); err != nil {
		return err
	}
	if err := r.AssetClass.Validate(); err != nil {
		return err
	}
	if r.AssetClass == assetstypes.AssetClassToken && !util.IsValidAddress(r.TokenContract, util.HEX) {
		return ErrInvalidAddress.Wrapf("token contract %q is not a hex address", r.TokenContract)
	}
	if r.AssetClass == assetstypes.AssetClassNative && r.TokenContract != "" {
		return ErrAssetClassMismatch.Wrap("native policy cannot name a token contract")
	}
	return nil
}
