package types

import (
	"encoding/json"
)

// MaxReasonLength bounds the claim reason.
const MaxReasonLength = 256

// ClaimStatus is the review state of a claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusDenied   ClaimStatus = "denied"
)

func (s ClaimStatus) String() string { return string(s) }

// Validate checks that s is a known status.
func (s ClaimStatus) Validate() error {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusDenied:
		return nil
	default:
		return ErrClaimNotPending.Wrapf("unknown claim status %q", string(s))
	}
}

// Claim is a payout request against a policy. A claim shares its policy's id.
type Claim struct {
	PolicyId        uint64      `json:"policy_id"`
	Claimant        string      `json:"claimant"`
	Amount          uint64      `json:"amount"`
	Reason          string      `json:"reason"`
	SubmittedHeight uint64      `json:"submitted_height"`
	Status          ClaimStatus `json:"status"`
}

// Stringer method for Claim.
func (c Claim) String() string {
	bz, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// IsPending reports whether the claim still awaits review.
func (c Claim) IsPending() bool {
	return c.Status == ClaimStatusPending
}

// ValidateReason checks the reason against MaxReasonLength.
func ValidateReason(reason string) error {
	if len(reason) > MaxReasonLength {
		return ErrInvalidReason.Wrapf("length %d exceeds %d", len(reason), MaxReasonLength)
	}
	return nil
}

// ValidateAgainst checks the claim against the policy it was filed on.
func (c Claim) ValidateAgainst(p Policy) error {
	if c.PolicyId != p.Id {
		return ErrClaimNotFound.Wrapf("claim for policy %d stored under %d", c.PolicyId, p.Id)
	}
	if c.Claimant != p.Owner {
		return ErrInvalidAddress.Wrapf("claimant %s is not owner %s", c.Claimant, p.Owner)
	}
	if c.Amount == 0 || c.Amount > p.CoverageAmount {
		return ErrInvalidAmount.Wrapf("claim %d of %d exceeds coverage %d", c.PolicyId, c.Amount, p.CoverageAmount)
	}
	if err := ValidateReason(c.Reason); err != nil {
		return err
	}
	if err := c.Status.Validate(); err != nil {
		return err
	}
	if !p.ClaimSubmitted {
		return ErrClaimNotFound.Wrapf("policy %d has a claim but no submitted flag", p.Id)
	}
	if (c.Status == ClaimStatusApproved) != p.ClaimApproved {
		return ErrClaimNotPending.Wrapf("claim %d status %s disagrees with policy", c.PolicyId, c.Status)
	}
	return nil
}
