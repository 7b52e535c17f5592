package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/dto"
	"github.com/factoryops/factory_books_app/internal/handlers"
	"github.com/factoryops/factory_books_app/internal/middleware"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) Post(ctx context.Context, tenantID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPostingService *MockPostingService
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.UserIdentityMiddleware())

	suite.mockPostingService = new(MockPostingService)

	tenant := suite.router.Group("/api/v1/tenants/:tenant_id")
	handlers.RegisterJournalRoutes(tenant, suite.mockPostingService)
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Success() {
	tenantID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:           uuid.NewString(),
		TenantID:          tenantID,
		DebitAccountCode:  domain.AccountCash,
		CreditAccountCode: domain.AccountSalesRevenue,
		DebitAmount:       decimal.NewFromInt(150),
		CreditAmount:      decimal.NewFromInt(150),
		EntryDate:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		TemplateID:        domain.TemplateCashSale,
	}
	suite.mockPostingService.On("Post",
		mock.Anything,
		tenantID,
		mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
			return req.TemplateID == string(domain.TemplateCashSale) && req.Amount.Equal(decimal.NewFromInt(150))
		}),
		"user-42",
	).Return(entry, nil).Once()

	body, _ := json.Marshal(gin.H{
		"templateID": "CASH_SALE",
		"amount":     "150",
		"date":       "2025-03-14T00:00:00Z",
	})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/tenants/%s/journal-entries", tenantID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-42")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal(domain.AccountCash, resp.DebitAccountCode)
	suite.Equal("2025-03-14", resp.EntryDate)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MissingFieldsRejected() {
	body, _ := json.Marshal(gin.H{"amount": "10"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tenants/t-1/journal-entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_ValidationErrorMapsTo400() {
	suite.mockPostingService.On("Post", mock.Anything, "t-1", mock.Anything, "system").
		Return(nil, fmt.Errorf("%w: unknown posting template", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(gin.H{
		"templateID": "NOT_A_TEMPLATE",
		"amount":     "10",
		"date":       "2025-03-14T00:00:00Z",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tenants/t-1/journal-entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFoundMapsTo404() {
	suite.mockPostingService.On("GetEntry", mock.Anything, "t-1", "e-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tenants/t-1/journal-entries/e-missing", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestListEntries_AsOfCoversWholeDay() {
	suite.mockPostingService.On("ListEntries", mock.Anything, "t-1",
		mock.MatchedBy(func(asOf *time.Time) bool {
			// End of 2025-01-31, so the whole day's entries are included.
			return asOf != nil && asOf.Format("2006-01-02") == "2025-01-31" && asOf.Hour() == 23
		}),
	).Return([]domain.JournalEntry{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tenants/t-1/journal-entries?as_of=2025-01-31", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestListEntries_BadAsOfRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tenants/t-1/journal-entries?as_of=31-01-2025", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything)
}
