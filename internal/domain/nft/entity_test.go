//go:build unit

package nft_test

import (
	"strings"
	"testing"
	"time"

	"nft-market/internal/domain/nft"
	"nft-market/internal/domain/payment"
	"nft-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PurchaseBuilder)
	errIs  error
}

func TestOwnership(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		actual, err := builder.NewPurchaseBuilder().WithCreatedAt(now).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, builder.TestPayerWallet, actual.PayerWallet().String())
		assert.Equal(t, "nft-42", actual.AssetID().String())
		assert.Equal(t, builder.TestTransactionRef, actual.TransactionRef().String())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("ウォレットアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なbase58アドレスOK",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUserWallet(builder.TestPayeeWallet) },
			},
			{
				name:   "空のアドレスNG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUserWallet("") },
				errIs:  payment.ErrInvalidAddress,
			},
			{
				name:   "base58でない文字列NG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUserWallet("not-base58-0OIl") },
				errIs:  payment.ErrInvalidAddress,
			},
			{
				name:   "短すぎるキーNG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUserWallet("abc") },
				errIs:  payment.ErrInvalidAddress,
			},
		})
	})

	t.Run("アセットID検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "通常のIDOK",
				mutate: func(b *builder.PurchaseBuilder) { b.WithNFTID("monalisa") },
			},
			{
				name:   "最大長ちょうどOK",
				mutate: func(b *builder.PurchaseBuilder) { b.WithNFTID(strings.Repeat("a", nft.MaxAssetIDLength)) },
			},
			{
				name:   "空のIDNG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithNFTID("") },
				errIs:  nft.ErrInvalidAssetID,
			},
			{
				name:   "最大長超過NG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithNFTID(strings.Repeat("a", nft.MaxAssetIDLength+1)) },
				errIs:  nft.ErrInvalidAssetID,
			},
			{
				name:   "スラッシュ入りNG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithNFTID("a/b") },
				errIs:  nft.ErrInvalidAssetID,
			},
			{
				name:   "空白入りNG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithNFTID("a b") },
				errIs:  nft.ErrInvalidAssetID,
			},
		})
	})

	t.Run("トランザクション参照検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空の参照NG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithTransactionRef("") },
				errIs:  payment.ErrEmptyReference,
			},
			{
				name:   "空白のみの参照NG",
				mutate: func(b *builder.PurchaseBuilder) { b.WithTransactionRef("   ") },
				errIs:  payment.ErrEmptyReference,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewPurchaseBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
