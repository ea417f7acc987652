package keeper

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/parametric-cover/cover-node/utils/collcodec"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Schema          collections.Schema
	Params          collections.Item[types.Params]
	PolicySeq       collections.Sequence
	Policies        collections.Map[uint64, types.Policy]
	Claims          collections.Map[uint64, types.Claim]
	UserPolicies    collections.Map[string, types.UserPolicyIds]
	PriceCache      collections.Map[string, types.PriceEntry]
	TotalPremiums   collections.Item[uint64]
	TotalClaimsPaid collections.Item[uint64]

	bankKeeper   types.BankKeeper
	tokenKeeper  types.TokenKeeper
	oracleKeeper types.OracleKeeper
	assetsKeeper types.AssetsKeeper

	authority string
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	bankKeeper types.BankKeeper,
	tokenKeeper types.TokenKeeper,
	oracleKeeper types.OracleKeeper,
	assetsKeeper types.AssetsKeeper,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}

	k := Keeper{
		logger: logger,

		Params:          collections.NewItem(sb, types.ParamsKey, types.ParamsName, collcodec.JSONValue[types.Params]()),
		PolicySeq:       collections.NewSequence(sb, types.PolicySeqKey, types.PolicySeqName),
		Policies:        collections.NewMap(sb, types.PoliciesKey, types.PoliciesName, collections.Uint64Key, collcodec.JSONValue[types.Policy]()),
		Claims:          collections.NewMap(sb, types.ClaimsKey, types.ClaimsName, collections.Uint64Key, collcodec.JSONValue[types.Claim]()),
		UserPolicies:    collections.NewMap(sb, types.UserPoliciesKey, types.UserPoliciesName, collections.StringKey, collcodec.JSONValue[types.UserPolicyIds]()),
		PriceCache:      collections.NewMap(sb, types.PriceCacheKey, types.PriceCacheName, collections.StringKey, collcodec.JSONValue[types.PriceEntry]()),
		TotalPremiums:   collections.NewItem(sb, types.TotalPremiumsKey, types.TotalPremiumsName, collections.Uint64Value),
		TotalClaimsPaid: collections.NewItem(sb, types.TotalClaimsPaidKey, types.TotalClaimsPaidName, collections.Uint64Value),

		bankKeeper:   bankKeeper,
		tokenKeeper:  tokenKeeper,
		oracleKeeper: oracleKeeper,
		assetsKeeper: assetsKeeper,
		authority:    authority,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the module's governance authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress is the treasury account that holds premiums and pays claims.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetPolicy returns a policy by id.
func (k Keeper) GetPolicy(ctx context.Context, id uint64) (types.Policy, error) {
	p, err := k.Policies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Policy{}, types.ErrPolicyNotFound.Wrapf("policy %d", id)
		}
		return types.Policy{}, err
	}
	return p, nil
}

// GetClaim returns the claim filed on a policy.
func (k Keeper) GetClaim(ctx context.Context, id uint64) (types.Claim, error) {
	c, err := k.Claims.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Claim{}, types.ErrClaimNotFound.Wrapf("policy %d", id)
		}
		return types.Claim{}, err
	}
	return c, nil
}

// GetUserPolicies returns the ids of every policy an owner created, oldest first.
func (k Keeper) GetUserPolicies(ctx context.Context, owner string) ([]uint64, error) {
	row, err := k.UserPolicies.Get(ctx, owner)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Ids, nil
}

// IsPolicyValid reports whether a policy is active and within its term at the current height.
func (k Keeper) IsPolicyValid(ctx context.Context, id uint64) (bool, error) {
	p, err := k.GetPolicy(ctx, id)
	if err != nil {
		return false, err
	}
	return p.IsValidAt(blockHeight(ctx)), nil
}

// PolicyCount is the number of policies ever created.
func (k Keeper) PolicyCount(ctx context.Context) (uint64, error) {
	return k.PolicySeq.Peek(ctx)
}

func (k Keeper) getCounter(ctx context.Context, item collections.Item[uint64]) (uint64, error) {
	v, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

func (k Keeper) addToCounter(ctx context.Context, item collections.Item[uint64], amount uint64) error {
	cur, err := k.getCounter(ctx, item)
	if err != nil {
		return err
	}
	next, err := types.SafeAdd(cur, amount)
	if err != nil {
		return err
	}
	return item.Set(ctx, next)
}

func blockHeight(ctx context.Context) uint64 {
	h := sdk.UnwrapSDKContext(ctx).BlockHeight()
	if h < 0 {
		return 0
	}
	return uint64(h)
}
