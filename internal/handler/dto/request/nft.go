package request

// PurchaseNFTRequest deliberately carries no price field: the purchase
// price is a server-side constant and anything a client sends for it is
// rejected by the strict JSON decoder.
type PurchaseNFTRequest struct {
	UserWallet string `json:"user_wallet" binding:"required"`
	NFTID      string `json:"nft_id" binding:"required,max=128"`
}

// ReconcileRequest replays the ownership write for a payment that is
// already committed on the ledger. The operator supplies the reference of
// the confirmed transfer.
type ReconcileRequest struct {
	UserWallet     string `json:"user_wallet" binding:"required"`
	NFTID          string `json:"nft_id" binding:"required,max=128"`
	TransactionRef string `json:"transaction_ref" binding:"required"`
}
