package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCheque(ctx context.Context, tenantID, chequeID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) DeleteEntries(ctx context.Context, tenantID string, entryIDs []string) error {
	args := m.Called(ctx, tenantID, entryIDs)
	return args.Error(0)
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SeedDefaultAccounts(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindLedgerEntryByID(ctx context.Context, tenantID, ledgerEntryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, tenantID, ledgerEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindPaymentByID(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockLedgerRepository) FilterExistingLedgerEntryIDs(ctx context.Context, tenantID string, ids []string) (map[string]bool, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockLedgerRepository) FilterExistingPaymentIDs(ctx context.Context, tenantID string, ids []string) (map[string]bool, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockLedgerRepository) ReopenOutstanding(ctx context.Context, tenantID, ledgerEntryID string, amount decimal.Decimal) error {
	args := m.Called(ctx, tenantID, ledgerEntryID, amount)
	return args.Error(0)
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

// --- Mock ChequeRepository ---

type MockChequeRepository struct {
	mock.Mock
}

func (m *MockChequeRepository) FindChequeByID(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, tenantID, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) UpdateChequeStatus(ctx context.Context, tenantID, chequeID string, from, to domain.ChequeStatus, updatedBy string) error {
	args := m.Called(ctx, tenantID, chequeID, from, to, updatedBy)
	return args.Error(0)
}

var _ portsrepo.ChequeRepository = (*MockChequeRepository)(nil)

// --- No-op activity recorder ---

type noopActivity struct{}

func (noopActivity) Record(ctx context.Context, activity domain.Activity) {}

var _ portssvc.ActivitySvcFacade = noopActivity{}
