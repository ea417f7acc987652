package types

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params *Params `json:"params"`
}

type QueryAssetRequest struct {
	Contract string `json:"contract"`
}

type QueryAssetResponse struct {
	Asset AssetRegistration `json:"asset"`
}

type QueryAllAssetsRequest struct{}

type QueryAllAssetsResponse struct {
	Assets []AssetRegistration `json:"assets"`
}

type QueryIsAssetEnabledRequest struct {
	Contract string `json:"contract"`
}

type QueryIsAssetEnabledResponse struct {
	Enabled bool `json:"enabled"`
}

type QueryIsSupportedRequest struct {
	Class AssetClass `json:"class"`
}

type QueryIsSupportedResponse struct {
	Supported bool `json:"supported"`
}

type QueryRiskMultiplierRequest struct {
	Symbol string `json:"symbol"`
}

type QueryRiskMultiplierResponse struct {
	Multiplier uint64 `json:"multiplier"`
}

type QueryTokenMetadataRequest struct {
	Contract string `json:"contract"`
}

type QueryTokenMetadataResponse struct {
	Metadata TokenMetadata `json:"metadata"`
}
