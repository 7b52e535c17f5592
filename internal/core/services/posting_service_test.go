package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/core/services"
	"github.com/factoryops/factory_books_app/internal/dto"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	service  portssvc.PostingSvcFacade
	ctx      context.Context
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.service = services.NewPostingService(suite.mockRepo, noopActivity{})
	suite.ctx = context.Background()
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}

func (suite *PostingServiceTestSuite) TestPost_CashSale_Success() {
	var saved domain.JournalEntry
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.JournalEntry)
		}).
		Return(nil).Once()

	req := dto.CreateJournalEntryRequest{
		TemplateID:  string(domain.TemplateCashSale),
		Amount:      decimal.RequireFromString("150.50"),
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "Walk-in sale",
	}
	entry, err := suite.service.Post(suite.ctx, "tenant-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.AccountCash, entry.DebitAccountCode)
	suite.Equal(domain.AccountSalesRevenue, entry.CreditAccountCode)
	suite.True(entry.DebitAmount.Equal(req.Amount))
	suite.True(entry.CreditAmount.Equal(req.Amount))
	suite.True(entry.DebitAmount.Equal(entry.CreditAmount))
	suite.Equal("tenant-1", entry.TenantID)
	suite.Equal("user-1", entry.CreatedBy)
	suite.Equal("user-1", entry.LastUpdatedBy)
	suite.True(entry.Source.IsZero())
	suite.Equal(saved.EntryID, entry.EntryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPost_CarriesSourceAndCheque() {
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	req := dto.CreateJournalEntryRequest{
		TemplateID: string(domain.TemplateChequeInCashed),
		Amount:     decimal.NewFromInt(400),
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SourceType: string(domain.SourceTransaction),
		SourceID:   "txn-77",
		ChequeID:   "chq-12",
	}
	entry, err := suite.service.Post(suite.ctx, "tenant-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.SourceTransaction, entry.Source.Type)
	suite.Equal("txn-77", entry.Source.DocumentID)
	suite.Equal("chq-12", entry.ChequeID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPost_RejectsNonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		req := dto.CreateJournalEntryRequest{
			TemplateID: string(domain.TemplateCashSale),
			Amount:     amount,
			Date:       time.Now().UTC(),
		}
		entry, err := suite.service.Post(suite.ctx, "tenant-1", req, "user-1")

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(entry)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_RejectsUnknownTemplate() {
	req := dto.CreateJournalEntryRequest{
		TemplateID: "FREEFORM_ENTRY",
		Amount:     decimal.NewFromInt(100),
		Date:       time.Now().UTC(),
	}
	entry, err := suite.service.Post(suite.ctx, "tenant-1", req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_RejectsSourceTypeWithoutID() {
	req := dto.CreateJournalEntryRequest{
		TemplateID: string(domain.TemplateARCollection),
		Amount:     decimal.NewFromInt(100),
		Date:       time.Now().UTC(),
		SourceType: string(domain.SourcePayment),
	}
	entry, err := suite.service.Post(suite.ctx, "tenant-1", req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_PersistenceErrorPropagates() {
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.JournalEntry")).
		Return(apperrors.ErrPersistence).Once()

	req := dto.CreateJournalEntryRequest{
		TemplateID: string(domain.TemplateCashExpense),
		Amount:     decimal.NewFromInt(25),
		Date:       time.Now().UTC(),
	}
	entry, err := suite.service.Post(suite.ctx, "tenant-1", req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.Nil(entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Every template produces an entry whose legs carry the same amount, so the
// journal's total debits always equal total credits no matter what mix of
// events is posted.
func (suite *PostingServiceTestSuite) TestPost_EveryTemplateBalances() {
	var posted []domain.JournalEntry
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			posted = append(posted, args.Get(1).(domain.JournalEntry))
		}).
		Return(nil)

	amount := decimal.NewFromInt(1)
	for templateID, template := range domain.PostingTemplates {
		entry, err := suite.service.Post(suite.ctx, "tenant-1", dto.CreateJournalEntryRequest{
			TemplateID: string(templateID),
			Amount:     amount,
			Date:       time.Now().UTC(),
		}, "user-1")

		suite.Require().NoError(err)
		suite.Equal(template.DebitAccountCode, entry.DebitAccountCode)
		suite.Equal(template.CreditAccountCode, entry.CreditAccountCode)
		suite.NotEqual(entry.DebitAccountCode, entry.CreditAccountCode)
		amount = amount.Add(decimal.RequireFromString("7.13"))
	}

	totalDebits, totalCredits := decimal.Zero, decimal.Zero
	for _, e := range posted {
		totalDebits = totalDebits.Add(e.DebitAmount)
		totalCredits = totalCredits.Add(e.CreditAmount)
	}
	suite.Len(posted, len(domain.PostingTemplates))
	suite.True(totalDebits.Equal(totalCredits))
}

func (suite *PostingServiceTestSuite) TestGetEntry_NotFound() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, "tenant-1", "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntry(suite.ctx, "tenant-1", "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestListEntries_PassesAsOf() {
	asOf := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	expected := []domain.JournalEntry{{EntryID: "e-1"}}
	suite.mockRepo.On("ListEntries", suite.ctx, "tenant-1", &asOf).
		Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(suite.ctx, "tenant-1", &asOf)

	suite.Require().NoError(err)
	suite.Equal(expected, entries)
	suite.mockRepo.AssertExpectations(suite.T())
}
