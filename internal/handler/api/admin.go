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

type AdminHandler struct {
	cmds commands.PurchaseCommands
	q    queries.NFTQueries
}

func NewAdminHandler(cmds commands.PurchaseCommands, q queries.NFTQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary Reconcile ownership
// @Description Replay the ownership write for an already-confirmed payment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReconcileRequest true "Reconcile request"
// @Success 200 {object} resdto.OwnershipResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	var req reqdto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ReplayRecord(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAddress):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid wallet address", nil)
		case errors.Is(err, nft.ErrInvalidAssetID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid nft id", nil)
		case errors.Is(err, payment.ErrEmptyReference):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid transaction reference", nil)
		case errors.Is(err, commands.ErrStorageUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	// Read-after-write so the operator sees the record as persisted.
	view, err := h.q.GetOwnershipByAssetID(c.Request.Context(), result.AssetID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load ownership", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOwnershipView(view))
}
