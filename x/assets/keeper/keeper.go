package keeper

import (
	"context"
	"errors"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/parametric-cover/cover-node/utils/collcodec"
	"github.com/parametric-cover/cover-node/x/assets/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Schema          collections.Schema
	Params          collections.Item[types.Params]
	Assets          collections.Map[string, types.AssetRegistration]
	RiskMultipliers collections.Map[string, uint64]
	AssetClasses    collections.Map[string, bool]

	tokenKeeper types.TokenKeeper

	// treasury is the account holding pooled premiums; it can never be
	// registered as an asset contract.
	treasury  string
	authority string
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	treasury string,
	tokenKeeper types.TokenKeeper,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}

	k := Keeper{
		logger: logger,

		Params:          collections.NewItem(sb, types.ParamsKey, types.ParamsName, collcodec.JSONValue[types.Params]()),
		Assets:          collections.NewMap(sb, types.AssetsKey, types.AssetsName, collections.StringKey, collcodec.JSONValue[types.AssetRegistration]()),
		RiskMultipliers: collections.NewMap(sb, types.RiskMultipliersKey, types.RiskMultipliersName, collections.StringKey, collections.Uint64Value),
		AssetClasses:    collections.NewMap(sb, types.AssetClassesKey, types.AssetClassesName, collections.StringKey, collections.BoolValue),

		tokenKeeper: tokenKeeper,
		treasury:    treasury,
		authority:   authority,
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

// GetAsset returns the registration of a token contract.
func (k Keeper) GetAsset(ctx context.Context, contract string) (types.AssetRegistration, error) {
	asset, err := k.Assets.Get(ctx, types.GetAssetStorageKey(contract))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.AssetRegistration{}, types.ErrAssetNotFound.Wrapf("contract %s", contract)
		}
		return types.AssetRegistration{}, err
	}
	return asset, nil
}

// IsAssetEnabled reports whether contract is registered and enabled. Lookup
// failures read as not enabled.
func (k Keeper) IsAssetEnabled(ctx context.Context, contract string) bool {
	asset, err := k.Assets.Get(ctx, types.GetAssetStorageKey(contract))
	if err != nil {
		return false
	}
	return asset.Enabled
}

// IsSupported reports whether an asset class is switched on.
func (k Keeper) IsSupported(ctx context.Context, class types.AssetClass) bool {
	enabled, err := k.AssetClasses.Get(ctx, class.String())
	if err != nil {
		return false
	}
	return enabled
}

// GetRiskMultiplier returns the configured multiplier of a symbol, or
// DefaultRiskMultiplier when none is set.
func (k Keeper) GetRiskMultiplier(ctx context.Context, symbol string) (uint64, error) {
	m, err := k.RiskMultipliers.Get(ctx, symbol)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultRiskMultiplier, nil
		}
		return 0, err
	}
	return m, nil
}

// ValidateSymbol applies the registry's symbol rule.
func (k Keeper) ValidateSymbol(symbol string) error {
	return types.ValidateSymbol(symbol)
}
