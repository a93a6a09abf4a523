//go:build unit

package nft_test

import (
	"testing"

	"nft-market/internal/domain/nft"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewLinks(t *testing.T) {
	mustAssetID := func(s string) nft.AssetID {
		id, err := nft.NewAssetID(s)
		require.NoError(t, err)
		return id
	}

	t.Run("メタデータリンク生成", func(t *testing.T) {
		links, err := nft.NewLinks("https://market.example.com", mustAssetID("monalisa"))
		require.NoError(t, err)

		expected := nft.Links{
			Web:   "https://market.example.com/nft/monalisa",
			Email: "nft-monalisa@market.example.com",
			SVG:   "https://market.example.com/nft/monalisa.svg",
		}
		if diff := cmp.Diff(expected, links); diff != "" {
			t.Errorf("Links mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("末尾スラッシュは無視される", func(t *testing.T) {
		links, err := nft.NewLinks("https://market.example.com/", mustAssetID("x1"))
		require.NoError(t, err)
		require.Equal(t, "https://market.example.com/nft/x1", links.Web)
	})

	t.Run("メールのホストはポートを含まない", func(t *testing.T) {
		links, err := nft.NewLinks("http://localhost:8080", mustAssetID("x1"))
		require.NoError(t, err)
		require.Equal(t, "nft-x1@localhost", links.Email)
		require.Equal(t, "http://localhost:8080/nft/x1.svg", links.SVG)
	})

	t.Run("不正なベースURLNG", func(t *testing.T) {
		_, err := nft.NewLinks("not a url", mustAssetID("x1"))
		require.Error(t, err)
	})
}
