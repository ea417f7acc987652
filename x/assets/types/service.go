package types

import "context"

// MsgServer is the set of state-changing handlers of the assets module.
type MsgServer interface {
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	RegisterAsset(ctx context.Context, msg *MsgRegisterAsset) (*MsgRegisterAssetResponse, error)
	UpdateAsset(ctx context.Context, msg *MsgUpdateAsset) (*MsgUpdateAssetResponse, error)
	RevokeAsset(ctx context.Context, msg *MsgRevokeAsset) (*MsgRevokeAssetResponse, error)
	SetRiskMultiplier(ctx context.Context, msg *MsgSetRiskMultiplier) (*MsgSetRiskMultiplierResponse, error)
	SetAssetClassEnabled(ctx context.Context, msg *MsgSetAssetClassEnabled) (*MsgSetAssetClassEnabledResponse, error)
}

// QueryServer is the set of read handlers of the assets module.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Asset(ctx context.Context, req *QueryAssetRequest) (*QueryAssetResponse, error)
	AllAssets(ctx context.Context, req *QueryAllAssetsRequest) (*QueryAllAssetsResponse, error)
	IsAssetEnabled(ctx context.Context, req *QueryIsAssetEnabledRequest) (*QueryIsAssetEnabledResponse, error)
	IsSupported(ctx context.Context, req *QueryIsSupportedRequest) (*QueryIsSupportedResponse, error)
	RiskMultiplier(ctx context.Context, req *QueryRiskMultiplierRequest) (*QueryRiskMultiplierResponse, error)
	TokenMetadata(ctx context.Context, req *QueryTokenMetadataRequest) (*QueryTokenMetadataResponse, error)
}
