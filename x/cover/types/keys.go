package types

import (
	"cosmossdk.io/collections"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// PolicySeqKey saves the policy id sequence.
	PolicySeqKey = collections.NewPrefix(1)

	// PolicySeqName is the name of the policy id sequence.
	PolicySeqName = "policy_seq"

	// PoliciesKey saves the policies collection prefix
	PoliciesKey = collections.NewPrefix(2)

	// PoliciesName is the name of the policies collection.
	PoliciesName = "policies"

	// ClaimsKey saves the claims collection prefix
	ClaimsKey = collections.NewPrefix(3)

	// ClaimsName is the name of the claims collection.
	ClaimsName = "claims"

	// UserPoliciesKey saves the owner to policy ids index prefix
	UserPoliciesKey = collections.NewPrefix(4)

	// UserPoliciesName is the name of the userPolicies collection.
	UserPoliciesName = "user_policies"

	// PriceCacheKey saves the price cache collection prefix
	PriceCacheKey = collections.NewPrefix(5)

	// PriceCacheName is the name of the priceCache collection.
	PriceCacheName = "price_cache"

	// TotalPremiumsKey saves the cumulative premiums collected.
	TotalPremiumsKey = collections.NewPrefix(6)

	// TotalPremiumsName is the name of the totalPremiums item.
	TotalPremiumsName = "total_premiums"

	// TotalClaimsPaidKey saves the cumulative claims paid.
	TotalClaimsPaidKey = collections.NewPrefix(7)

	// TotalClaimsPaidName is the name of the totalClaimsPaid item.
	TotalClaimsPaidName = "total_claims_paid"
)

const (
	ModuleName = "cover"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
