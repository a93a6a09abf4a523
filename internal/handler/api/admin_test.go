//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"nft-market/internal/domain/payment"
	"nft-market/internal/handler/api"
	resdto "nft-market/internal/handler/dto/response"
	"nft-market/internal/usecase/commands"
	"nft-market/tests/common/builder"
	"nft-market/tests/common/httptest"
	"nft-market/tests/common/testutil"
	commandsmock "nft-market/tests/mock/commands"
	queriesmock "nft-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	mockQueries  *queriesmock.MockNFTQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNFTQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("operator", "ops@example.com")
		c.Set("operator_role", "operator")
		c.Next()
	}

	// Setup routes
	s.router.POST("/api/admin/reconcile", authMiddleware, s.handler.Reconcile)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestReconcile
// ================================================================================

func (s *AdminHandlerTestSuite) TestReconcile() {
	url := "/api/admin/reconcile"

	reqBody := builder.NewPurchaseBuilder().BuildReconcileRequestDTO()
	replayResult := &commands.PurchaseResult{
		TransactionRef: reqBody.TransactionRef,
		AssetID:        reqBody.NFTID,
	}
	storedView := builder.NewPurchaseBuilder().BuildOwnershipView()

	s.Run("success: replays the write and returns the persisted record", func() {
		s.mockCommands.EXPECT().ReplayRecord(gomock.Any(), reqBody).
			Return(replayResult, nil).Times(1)
		s.mockQueries.EXPECT().GetOwnershipByAssetID(gomock.Any(), reqBody.NFTID).
			Return(storedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.OwnershipResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(storedView.ID, body.ID)
		s.Equal(reqBody.UserWallet, body.PayerWallet)
		s.Equal(reqBody.NFTID, body.NFTID)
		s.Equal(reqBody.TransactionRef, body.TransactionRef)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: user_wallet (required)", mutate: testutil.Field("user_wallet", nil)},
			{name: "missing field: nft_id (required)", mutate: testutil.Field("nft_id", nil)},
			{name: "missing field: transaction_ref (required)", mutate: testutil.Field("transaction_ref", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for a whitespace transaction ref", func() {
		s.mockCommands.EXPECT().ReplayRecord(gomock.Any(), gomock.Any()).
			Return(nil, payment.ErrEmptyReference).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("transaction_ref", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid transaction reference")
	})

	s.Run("error: 503 Service Unavailable when the write fails", func() {
		s.mockCommands.EXPECT().ReplayRecord(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStorageUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})
}
