package queries

import (
	"context"
	"time"

	"nft-market/internal/domain/nft"
	"nft-market/internal/infra"
	"nft-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNFTNotFound = errs.New("nft not found")

// Read models (DTO for read side)
type NFTView struct {
	AssetID string `json:"nft_id"`
	Web     string `json:"web"`
	Email   string `json:"email"`
	SVG     string `json:"svg"`
}

type OwnershipView struct {
	ID             uuid.UUID `json:"id"`
	PayerWallet    string    `json:"payer_wallet"`
	AssetID        string    `json:"asset_id"`
	TransactionRef string    `json:"transaction_ref"`
	CreatedAt      time.Time `json:"created_at"`
}

type NFTQueries interface {
	GetByAssetID(ctx context.Context, assetID string) (*NFTView, error)
	GetOwnershipByAssetID(ctx context.Context, assetID string) (*OwnershipView, error)
}

// OwnershipReadStore answers point lookups against the ownerships table.
// With duplicates permitted per asset, "the" record is the most recent one.
type OwnershipReadStore interface {
	FindLatestByAssetID(ctx context.Context, assetID string) (*OwnershipView, error)
}

type nftQueriesImpl struct {
	repo          OwnershipReadStore
	publicBaseURL string
}

func NewNFTQueries(repo OwnershipReadStore, publicBaseURL string) NFTQueries {
	return &nftQueriesImpl{repo: repo, publicBaseURL: publicBaseURL}
}

func (q *nftQueriesImpl) GetByAssetID(ctx context.Context, assetID string) (*NFTView, error) {
	view, err := q.GetOwnershipByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	id, err := nft.NewAssetID(view.AssetID)
	if err != nil {
		return nil, errs.Wrap(err, "stored asset id is malformed")
	}
	links, err := nft.NewLinks(q.publicBaseURL, id)
	if err != nil {
		return nil, err
	}

	return &NFTView{
		AssetID: view.AssetID,
		Web:     links.Web,
		Email:   links.Email,
		SVG:     links.SVG,
	}, nil
}

func (q *nftQueriesImpl) GetOwnershipByAssetID(ctx context.Context, assetID string) (*OwnershipView, error) {
	view, err := q.repo.FindLatestByAssetID(ctx, assetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNFTNotFound
		}
		return nil, err
	}
	return view, nil
}
