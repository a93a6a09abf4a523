package response

import (
	"time"

	"nft-market/internal/usecase/commands"
	"nft-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseNFTResponse struct {
	TransactionID string `json:"transaction_id"`
	NFTID         string `json:"nft_id"`
}

func FromPurchaseResult(result *commands.PurchaseResult) PurchaseNFTResponse {
	return PurchaseNFTResponse{
		TransactionID: result.TransactionRef,
		NFTID:         result.AssetID,
	}
}

type NFTResponse struct {
	NFTID string `json:"nft_id"`
	Web   string `json:"web"`
	Email string `json:"email"`
	SVG   string `json:"svg"`
}

func FromNFTView(view *queries.NFTView) NFTResponse {
	return NFTResponse{
		NFTID: view.AssetID,
		Web:   view.Web,
		Email: view.Email,
		SVG:   view.SVG,
	}
}

type OwnershipResponse struct {
	ID             uuid.UUID `json:"id"`
	PayerWallet    string    `json:"payer_wallet"`
	NFTID          string    `json:"nft_id"`
	TransactionRef string    `json:"transaction_ref"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromOwnershipView(view *queries.OwnershipView) OwnershipResponse {
	return OwnershipResponse{
		ID:             view.ID,
		PayerWallet:    view.PayerWallet,
		NFTID:          view.AssetID,
		TransactionRef: view.TransactionRef,
		CreatedAt:      view.CreatedAt,
	}
}
