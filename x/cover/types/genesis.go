package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
)

// PriceRecord is the genesis form of one price cache row.
type PriceRecord struct {
	Symbol string     `json:"symbol"`
	Entry  PriceEntry `json:"entry"`
}

// UserPolicyIds is the stored owner index row, in creation order.
type UserPolicyIds struct {
	Ids []uint64 `json:"ids"`
}

// GenesisState defines the cover module's genesis state. The owner index is
// rebuilt from Policies in id order.
type GenesisState struct {
	Params          Params        `json:"params"`
	PolicyCount     uint64        `json:"policy_count"`
	Policies        []Policy      `json:"policies"`
	Claims          []Claim       `json:"claims"`
	Prices          []PriceRecord `json:"prices"`
	TotalPremiums   uint64        `json:"total_premiums"`
	TotalClaimsPaid uint64        `json:"total_claims_paid"`
}

// NewGenesisState creates a new genesis state with default values.
func NewGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return NewGenesisState()
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs *GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	policies := make(map[uint64]Policy, len(gs.Policies))
	perOwner := make(map[string]int)
	var premiums uint64
	for _, p := range gs.Policies {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := policies[p.Id]; dup {
			return errors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate policy %d", p.Id)
		}
		if p.Id > gs.PolicyCount {
			return errors.Wrapf(sdkerrors.ErrInvalidRequest, "policy %d is beyond policy count %d", p.Id, gs.PolicyCount)
		}
		policies[p.Id] = p

		perOwner[p.Owner]++
		if perOwner[p.Owner] > MaxPoliciesPerUser {
			return ErrTooManyPolicies.Wrapf("owner %s", p.Owner)
		}

		var err error
		if premiums, err = SafeAdd(premiums, p.PremiumPaid); err != nil {
			return err
		}
	}
	if premiums != gs.TotalPremiums {
		return errors.Wrapf(sdkerrors.ErrInvalidRequest, "total premiums %d does not match policy premiums %d", gs.TotalPremiums, premiums)
	}

	seen := make(map[uint64]struct{}, len(gs.Claims))
	var paid uint64
	for _, c := range gs.Claims {
		p, ok := policies[c.PolicyId]
		if !ok {
			return ErrPolicyNotFound.Wrapf("claim references policy %d", c.PolicyId)
		}
		if _, dup := seen[c.PolicyId]; dup {
			return errors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate claim for policy %d", c.PolicyId)
		}
		seen[c.PolicyId] = struct{}{}
		if err := c.ValidateAgainst(p); err != nil {
			return err
		}
		if c.Status == ClaimStatusApproved {
			var err error
			if paid, err = SafeAdd(paid, c.Amount); err != nil {
				return err
			}
		}
	}
	if paid != gs.TotalClaimsPaid {
		return errors.Wrapf(sdkerrors.ErrInvalidRequest, "total claims paid %d does not match approved claims %d", gs.TotalClaimsPaid, paid)
	}
	for _, p := range gs.Policies {
		if _, ok := seen[p.Id]; p.ClaimSubmitted && !ok {
			return ErrClaimNotFound.Wrapf("policy %d is flagged as claimed", p.Id)
		}
	}

	symbols := make(map[string]struct{}, len(gs.Prices))
	for _, pr := range gs.Prices {
		if err := assetstypes.ValidateSymbol(pr.Symbol); err != nil {
			return err
		}
		if _, dup := symbols[pr.Symbol]; dup {
			return errors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate price for %s", pr.Symbol)
		}
		symbols[pr.Symbol] = struct{}{}
	}

	return nil
}

// String implements the Stringer interface.
func (gs GenesisState) String() string {
	out, _ := json.MarshalIndent(gs, "", "  ")
	return string(out)
}
