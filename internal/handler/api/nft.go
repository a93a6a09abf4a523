package api

import (
	"errors"
	"net/http"

	"nft-market/internal/domain/nft"
	"nft-market/internal/domain/payment"
	reqdto "nft-market/internal/handler/dto/request"
	resdto "nft-market/internal/handler/dto/response"
	"nft-market/internal/handler/httperr"
	"nft-market/internal/usecase/commands"
	"nft-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NFTHandler struct {
	cmds commands.PurchaseCommands
	q    queries.NFTQueries
}

func NewNFTHandler(cmds commands.PurchaseCommands, q queries.NFTQueries) *NFTHandler {
	return &NFTHandler{cmds: cmds, q: q}
}

// @Summary Purchase NFT
// @Description Pay the fixed token price for an asset and record ownership
// @Tags nft
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseNFTRequest true "Purchase request"
// @Success 200 {object} resdto.PurchaseNFTResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /purchase-nft [post]
func (h *NFTHandler) PurchaseNFT(c *gin.Context) {
	var req reqdto.PurchaseNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PurchaseNFT(c.Request.Context(), req)
	if err != nil {
		h.abortPurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseResult(result))
}

// @Summary Get NFT
// @Description Look up the public metadata endpoints of a purchased asset
// @Tags nft
// @Produce json
// @Param nft_id query string true "Asset ID"
// @Success 200 {object} resdto.NFTResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /get-nft [get]
func (h *NFTHandler) GetNFT(c *gin.Context) {
	assetID := c.Query("nft_id")
	if assetID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing nft_id"), "nft_id is required", nil)
		return
	}

	view, err := h.q.GetByAssetID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, queries.ErrNFTNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "NFT not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNFTView(view))
}

// One status per error kind. RecordFailedError must reach the caller with
// the transaction reference: the payment is real even though the record is
// missing, and hiding that would turn a reconciliation gap into silent loss.
func (h *NFTHandler) abortPurchaseError(c *gin.Context, err error) {
	var recordErr *commands.RecordFailedError

	switch {
	case errors.As(err, &recordErr):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Payment succeeded but ownership record failed",
			gin.H{"transaction_id": recordErr.TransactionRef, "nft_id": recordErr.AssetID})
	case errors.Is(err, payment.ErrInvalidAddress):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid wallet address", nil)
	case errors.Is(err, nft.ErrInvalidAssetID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid nft id", nil)
	case errors.Is(err, payment.ErrInsufficientFunds):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient funds", nil)
	case errors.Is(err, payment.ErrTransferRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Transfer rejected by ledger", nil)
	case errors.Is(err, payment.ErrLedgerUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Ledger unavailable", nil)
	case errors.Is(err, commands.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
