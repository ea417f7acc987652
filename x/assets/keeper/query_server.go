package keeper

import (
	"context"

	"github.com/parametric-cover/cover-node/x/assets/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (k Querier) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	p, err := k.Keeper.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: &p}, nil
}

// Asset returns the registration of one token contract.
func (k Querier) Asset(ctx context.Context, req *types.QueryAssetRequest) (*types.QueryAssetResponse, error) {
	asset, err := k.Keeper.GetAsset(ctx, req.Contract)
	if err != nil {
		return nil, err
	}
	return &types.QueryAssetResponse{Asset: asset}, nil
}

// AllAssets returns every registration, enabled or not.
func (k Querier) AllAssets(ctx context.Context, req *types.QueryAllAssetsRequest) (*types.QueryAllAssetsResponse, error) {
	iter, err := k.Keeper.Assets.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	assets, err := iter.Values()
	if err != nil {
		return nil, err
	}
	return &types.QueryAllAssetsResponse{Assets: assets}, nil
}

func (k Querier) IsAssetEnabled(ctx context.Context, req *types.QueryIsAssetEnabledRequest) (*types.QueryIsAssetEnabledResponse, error) {
	return &types.QueryIsAssetEnabledResponse{Enabled: k.Keeper.IsAssetEnabled(ctx, req.Contract)}, nil
}

func (k Querier) IsSupported(ctx context.Context, req *types.QueryIsSupportedRequest) (*types.QueryIsSupportedResponse, error) {
	return &types.QueryIsSupportedResponse{Supported: k.Keeper.IsSupported(ctx, req.Class)}, nil
}

func (k Querier) RiskMultiplier(ctx context.Context, req *types.QueryRiskMultiplierRequest) (*types.QueryRiskMultiplierResponse, error) {
	m, err := k.Keeper.GetRiskMultiplier(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}
	return &types.QueryRiskMultiplierResponse{Multiplier: m}, nil
}

func (k Querier) TokenMetadata(ctx context.Context, req *types.QueryTokenMetadataRequest) (*types.QueryTokenMetadataResponse, error) {
	md, err := k.Keeper.TokenMetadata(ctx, req.Contract)
	if err != nil {
		return nil, err
	}
	return &types.QueryTokenMetadataResponse{Metadata: md}, nil
}
