package keeper_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"

	assetstypes "github.com/parametric-cover/cover-node/x/assets/types"
	"github.com/parametric-cover/cover-node/x/cover/types"
)

func TestCreatePolicy(t *testing.T) {
	t.Run("rejects invalid terms", func(t *testing.T) {
		f := SetupTest(t)

		tests := []struct {
			name string
			req  types.CreatePolicyRequest
			err  error
		}{
			{
				name: "zero coverage",
				req:  types.CreatePolicyRequest{Owner: f.owner.String(), Duration: 200, PolicyType: "T", AssetClass: assetstypes.AssetClassNative},
				err:  types.ErrInvalidAmount,
			},
			{
				name: "duration of one day",
				req:  types.CreatePolicyRequest{Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 143, PolicyType: "T", AssetClass: assetstypes.AssetClassNative},
				err:  types.ErrInvalidDuration,
			},
			{
				name: "empty policy type",
				req:  types.CreatePolicyRequest{Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, AssetClass: assetstypes.AssetClassNative},
				err:  types.ErrInvalidPolicyType,
			},
			{
				name: "policy type too long",
				req:  types.CreatePolicyRequest{Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: strings.Repeat("x", 65), AssetClass: assetstypes.AssetClassNative},
				err:  types.ErrInvalidPolicyType,
			},
			{
				name: "unregistered token",
				req:  types.CreatePolicyRequest{Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T", AssetClass: assetstypes.AssetClassToken, TokenContract: "0x00000000000000000000000000000000000000bb"},
				err:  types.ErrAssetNotSupported,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.k.CreatePolicy(f.ctx, tc.req)
				require.ErrorIs(t, err, tc.err)
			})
		}

		count, err := f.k.PolicyCount(f.ctx)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("minimum duration is accepted", func(t *testing.T) {
		f := SetupTest(t)

		p := f.createNative(t, f.owner, 10_000, 144, types.MinPremium)
		require.Equal(t, uint64(144), p.EndHeight-p.StartHeight)
	})

	t.Run("disabled asset class", func(t *testing.T) {
		f := SetupTest(t)
		require.NoError(t, f.assets.SetAssetClassEnabled(f.ctx, assetstypes.AssetClassNative, false))

		_, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T", AssetClass: assetstypes.AssetClassNative,
		})
		require.ErrorIs(t, err, types.ErrAssetClassDisabled)
	})

	t.Run("revoked token", func(t *testing.T) {
		f := SetupTest(t)
		require.NoError(t, f.assets.RevokeAsset(f.ctx, usdcContract))

		_, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T",
			AssetClass: assetstypes.AssetClassToken, TokenContract: usdcContract,
		})
		require.ErrorIs(t, err, types.ErrAssetNotSupported)
	})

	t.Run("token named without 0x prefix", func(t *testing.T) {
		f := SetupTest(t)
		bare := strings.TrimPrefix(usdcContract, "0x")

		contract := common.HexToAddress(usdcContract)
		f.mockTokenKeeper.EXPECT().
			Transfer(gomock.Any(), contract, types.MinPremium, f.owner, f.k.ModuleAddress(), gomock.Any()).
			Return(true, nil)

		p, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T",
			AssetClass: assetstypes.AssetClassToken, TokenContract: bare,
		})
		require.NoError(t, err)
		require.Equal(t, contract.Hex(), p.TokenContract)

		require.NoError(t, f.assets.RevokeAsset(f.ctx, bare))
		require.False(t, f.assets.IsAssetEnabled(f.ctx, usdcContract))

		_, err = f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T",
			AssetClass: assetstypes.AssetClassToken, TokenContract: usdcContract,
		})
		require.ErrorIs(t, err, types.ErrAssetNotSupported)
	})

	t.Run("records an active policy", func(t *testing.T) {
		f := SetupTest(t)

		p := f.createNative(t, f.owner, 100_000, 1_440, 2_020)

		require.Equal(t, uint64(1), p.Id)
		require.True(t, p.Active)
		require.Equal(t, uint64(startHeight), p.StartHeight)
		require.Equal(t, uint64(startHeight+1_440), p.EndHeight)
		require.Equal(t, uint64(2_020), p.PremiumPaid)
		require.Nil(t, p.Valuation)

		stored, err := f.k.GetPolicy(f.ctx, 1)
		require.NoError(t, err)
		require.Equal(t, p, stored)

		ids, err := f.k.GetUserPolicies(f.ctx, f.owner.String())
		require.NoError(t, err)
		require.Equal(t, []uint64{1}, ids)

		total, err := f.k.TotalPremiums.Get(f.ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(2_020), total)
	})

	t.Run("failed premium charge writes nothing", func(t *testing.T) {
		f := SetupTest(t)

		f.mockBankKeeper.EXPECT().SendCoins(gomock.Any(), f.owner, f.k.ModuleAddress(), nativeCoins(types.MinPremium)).
			Return(errors.New("insufficient funds"))

		_, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T", AssetClass: assetstypes.AssetClassNative,
		})
		require.ErrorIs(t, err, types.ErrTransferFailed)

		count, err := f.k.PolicyCount(f.ctx)
		require.NoError(t, err)
		require.Zero(t, count)

		ids, err := f.k.GetUserPolicies(f.ctx, f.owner.String())
		require.NoError(t, err)
		require.Empty(t, ids)

		total, err := f.k.TotalPremiums.Get(f.ctx)
		require.NoError(t, err)
		require.Zero(t, total)
	})

	t.Run("token policy charges the token", func(t *testing.T) {
		f := SetupTest(t)

		contract := common.HexToAddress(usdcContract)
		f.mockTokenKeeper.EXPECT().
			Transfer(gomock.Any(), contract, types.MinPremium, f.owner, f.k.ModuleAddress(), gomock.Any()).
			Return(true, nil)

		p, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T",
			AssetClass: assetstypes.AssetClassToken, TokenContract: strings.ToLower(usdcContract),
		})
		require.NoError(t, err)
		require.Equal(t, assetstypes.AssetClassToken, p.AssetClass)
		require.Equal(t, contract.Hex(), p.TokenContract)
	})

	t.Run("token that declines the transfer", func(t *testing.T) {
		f := SetupTest(t)

		f.mockTokenKeeper.EXPECT().
			Transfer(gomock.Any(), common.HexToAddress(usdcContract), types.MinPremium, f.owner, f.k.ModuleAddress(), gomock.Any()).
			Return(false, nil)

		_, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T",
			AssetClass: assetstypes.AssetClassToken, TokenContract: usdcContract,
		})
		require.ErrorIs(t, err, types.ErrTransferFailed)

		_, err = f.k.GetPolicy(f.ctx, 1)
		require.ErrorIs(t, err, types.ErrPolicyNotFound)
	})

	t.Run("owner index is bounded", func(t *testing.T) {
		f := SetupTest(t)

		for i := 0; i < types.MaxPoliciesPerUser; i++ {
			f.createNative(t, f.owner, 10_000, 200, types.MinPremium)
		}

		_, err := f.k.CreatePolicy(f.ctx, types.CreatePolicyRequest{
			Owner: f.owner.String(), CoverageAmount: 10_000, Duration: 200, PolicyType: "T", AssetClass: assetstypes.AssetClassNative,
		})
		require.ErrorIs(t, err, types.ErrTooManyPolicies)

		// other owners are unaffected
		p := f.createNative(t, f.stranger, 10_000, 200, types.MinPremium)
		require.Equal(t, uint64(types.MaxPoliciesPerUser+1), p.Id)
	})

	t.Run("dynamic pricing snapshots the usd value", func(t *testing.T) {
		f := SetupTest(t)
		f.setOracle(t)
		require.NoError(t, f.k.SetDynamicPricing(f.ctx, true))

		// 2.50 USD
		f.expectOracle(types.DefaultNativeSymbol, 2_500_000, uint64(startHeight), true)

		// rate 250 bps: base 2_500_000, factor 10_100
		p := f.createNative(t, f.owner, 100_000_000, 1_440, 2_525_000)

		require.NotNil(t, p.Valuation)
		require.Equal(t, uint64(2_500_000), p.Valuation.Price)
		require.Equal(t, uint64(250_000_000), p.Valuation.CoverageUSD)
		require.Equal(t, uint64(6_312_500), p.Valuation.PremiumUSD)
	})

	t.Run("dynamic pricing falls back to static without an oracle", func(t *testing.T) {
		f := SetupTest(t)
		require.NoError(t, f.k.SetDynamicPricing(f.ctx, true))

		p := f.createNative(t, f.owner, 100_000, 1_440, 2_020)
		require.Nil(t, p.Valuation)
	})
}

func TestCancelPolicy(t *testing.T) {
	f := SetupTest(t)

	p := f.createNative(t, f.owner, 10_000, 200, types.MinPremium)
	require.Equal(t, uint64(1), p.Id)
	require.True(t, p.Active)

	err := f.k.CancelPolicy(f.ctx, f.stranger.String(), 1)
	require.ErrorIs(t, err, sdkErrors.ErrUnauthorized)

	err = f.k.CancelPolicy(f.ctx, f.owner.String(), 7)
	require.ErrorIs(t, err, types.ErrPolicyNotFound)

	require.NoError(t, f.k.CancelPolicy(f.ctx, f.owner.String(), 1))

	stored, err := f.k.GetPolicy(f.ctx, 1)
	require.NoError(t, err)
	require.False(t, stored.Active)

	err = f.k.CancelPolicy(f.ctx, f.owner.String(), 1)
	require.ErrorIs(t, err, types.ErrPolicyNotActive)

	// cancellation keeps the id in the owner index
	ids, err := f.k.GetUserPolicies(f.ctx, f.owner.String())
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, ids)

	err = f.k.SubmitClaim(f.ctx, f.owner.String(), 1, 1_000, "late")
	require.ErrorIs(t, err, types.ErrPolicyNotActive)
}

func TestCancelPolicy_ClaimSubmitted(t *testing.T) {
	f := SetupTest(t)

	f.createNative(t, f.owner, 10_000, 200, types.MinPremium)
	require.NoError(t, f.k.SubmitClaim(f.ctx, f.owner.String(), 1, 5_000, "hail"))

	err := f.k.CancelPolicy(f.ctx, f.owner.String(), 1)
	require.ErrorIs(t, err, types.ErrClaimAlreadySubmitted)
}

func TestIsPolicyValid(t *testing.T) {
	f := SetupTest(t)

	f.createNative(t, f.owner, 10_000, 200, types.MinPremium)

	valid, err := f.k.IsPolicyValid(f.ctx, 1)
	require.NoError(t, err)
	require.True(t, valid)

	f.atHeight(startHeight + 200)
	valid, err = f.k.IsPolicyValid(f.ctx, 1)
	require.NoError(t, err)
	require.True(t, valid)

	f.atHeight(startHeight + 201)
	valid, err = f.k.IsPolicyValid(f.ctx, 1)
	require.NoError(t, err)
	require.False(t, valid)

	_, err = f.k.IsPolicyValid(f.ctx, 2)
	require.ErrorIs(t, err, types.ErrPolicyNotFound)
}
