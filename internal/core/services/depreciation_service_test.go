package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/core/services"
	"github.com/factoryops/factory_books_app/internal/dto"
	"github.com/factoryops/factory_books_app/internal/utils/accounting"
)

// fakeAssetRepo is an in-memory AssetRepository with real fence semantics,
// so sequential-run behavior can be exercised end to end.
type fakeAssetRepo struct {
	mu            sync.Mutex
	assets        []domain.FixedAsset
	runs          []domain.DepreciationRun
	records       []domain.DepreciationRecord
	ledgerEntries []domain.LedgerEntry
}

func (f *fakeAssetRepo) ListAssets(ctx context.Context, tenantID string) ([]domain.FixedAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.FixedAsset, len(f.assets))
	copy(out, f.assets)
	return out, nil
}

func (f *fakeAssetRepo) ListRuns(ctx context.Context, tenantID string) ([]domain.DepreciationRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.DepreciationRun, len(f.runs))
	copy(out, f.runs)
	return out, nil
}

func (f *fakeAssetRepo) ApplyDepreciationBatch(ctx context.Context, batch portsrepo.DepreciationBatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, run := range f.runs {
		if run.Period == batch.Run.Period {
			return fmt.Errorf("%w: depreciation run for period %s already exists", apperrors.ErrDuplicate, batch.Run.Period)
		}
	}
	f.records = append(f.records, batch.Records...)
	for _, updated := range batch.Assets {
		for i := range f.assets {
			if f.assets[i].AssetID == updated.AssetID {
				f.assets[i] = updated
			}
		}
	}
	if batch.LedgerEntry.LedgerEntryID != "" {
		f.ledgerEntries = append(f.ledgerEntries, batch.LedgerEntry)
	}
	f.runs = append(f.runs, batch.Run)
	return nil
}

var _ portsrepo.AssetRepository = (*fakeAssetRepo)(nil)

// stubPostingService records depreciation journal posts and can be told to
// fail for specific periods, keyed by the entry date's month.
type stubPostingService struct {
	posted      []dto.CreateJournalEntryRequest
	failPeriods map[string]bool
}

func (s *stubPostingService) Post(ctx context.Context, tenantID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if s.failPeriods[accounting.FormatPeriod(req.Date)] {
		return nil, fmt.Errorf("%w: journal store unavailable", apperrors.ErrPersistence)
	}
	s.posted = append(s.posted, req)
	return &domain.JournalEntry{EntryID: uuid.NewString()}, nil
}

func (s *stubPostingService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubPostingService) ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error) {
	return nil, nil
}

var _ portssvc.PostingSvcFacade = (*stubPostingService)(nil)

type DepreciationServiceTestSuite struct {
	suite.Suite
	repo    *fakeAssetRepo
	posting *stubPostingService
	ctx     context.Context
}

func (suite *DepreciationServiceTestSuite) SetupTest() {
	suite.repo = &fakeAssetRepo{}
	suite.posting = &stubPostingService{failPeriods: map[string]bool{}}
	suite.ctx = context.Background()
}

func TestDepreciationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}

func (suite *DepreciationServiceTestSuite) newService(now time.Time) portssvc.DepreciationSvcFacade {
	return services.NewDepreciationService(suite.repo, suite.posting, noopActivity{},
		services.WithClock(func() time.Time { return now }))
}

func machineAsset(monthly int64) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:             "asset-1",
		TenantID:            "tenant-1",
		Name:                "Lathe",
		PurchaseCost:        decimal.NewFromInt(12000),
		SalvageValue:        decimal.Zero,
		BookValue:           decimal.NewFromInt(12000),
		MonthlyDepreciation: decimal.NewFromInt(monthly),
		PurchaseDate:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:              domain.AssetActive,
	}
}

func (suite *DepreciationServiceTestSuite) TestGetPendingPeriods_ExcludesCurrentMonth() {
	suite.repo.assets = []domain.FixedAsset{machineAsset(1000)}
	service := suite.newService(time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC))

	periods, err := service.GetPendingPeriods(suite.ctx, "tenant-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01", "2024-02", "2024-03"}, periods)
}

func (suite *DepreciationServiceTestSuite) TestGetPendingPeriods_NoActiveAssets() {
	disposed := machineAsset(1000)
	disposed.Status = domain.AssetDisposed
	suite.repo.assets = []domain.FixedAsset{disposed}
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	periods, err := service.GetPendingPeriods(suite.ctx, "tenant-1")

	suite.Require().NoError(err)
	suite.Empty(periods)
}

func (suite *DepreciationServiceTestSuite) TestRunForPeriod_WritesBatchAndPostsJournal() {
	suite.repo.assets = []domain.FixedAsset{machineAsset(1000)}
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	result, err := service.RunForPeriod(suite.ctx, "tenant-1", "2024-01")

	suite.Require().NoError(err)
	suite.Equal("2024-01", result.Period)
	suite.Equal(1, result.AssetsCount)
	suite.True(result.TotalDepreciation.Equal(decimal.NewFromInt(1000)))
	suite.True(result.JournalPosted)
	suite.NotEmpty(result.JournalEntryID)
	suite.NotEmpty(result.LedgerEntryID)

	suite.Require().Len(suite.repo.records, 1)
	record := suite.repo.records[0]
	suite.Equal("asset-1", record.AssetID)
	suite.True(record.Amount.Equal(decimal.NewFromInt(1000)))
	suite.True(record.BookValueEnd.Equal(decimal.NewFromInt(11000)))

	suite.True(suite.repo.assets[0].AccumulatedDepreciation.Equal(decimal.NewFromInt(1000)))
	suite.True(suite.repo.assets[0].BookValue.Equal(decimal.NewFromInt(11000)))

	suite.Require().Len(suite.posting.posted, 1)
	post := suite.posting.posted[0]
	suite.Equal(string(domain.TemplateDepreciation), post.TemplateID)
	suite.True(post.Amount.Equal(decimal.NewFromInt(1000)))
	// Posted on the last day of the period, sourced from the ledger entry.
	suite.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), post.Date)
	suite.Equal(string(domain.SourceTransaction), post.SourceType)
	suite.Equal(result.LedgerEntryID, post.SourceID)
}

func (suite *DepreciationServiceTestSuite) TestRunForPeriod_SecondRunIsFenced() {
	suite.repo.assets = []domain.FixedAsset{machineAsset(1000)}
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	_, err := service.RunForPeriod(suite.ctx, "tenant-1", "2024-01")
	suite.Require().NoError(err)

	result, err := service.RunForPeriod(suite.ctx, "tenant-1", "2024-01")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodAlreadyProcessed)
	suite.Nil(result)
	// No double-counting: one record, one run, one journal post.
	suite.Len(suite.repo.records, 1)
	suite.Len(suite.repo.runs, 1)
	suite.Len(suite.posting.posted, 1)
	suite.True(suite.repo.assets[0].AccumulatedDepreciation.Equal(decimal.NewFromInt(1000)))
}

func (suite *DepreciationServiceTestSuite) TestRunForPeriod_RejectsMalformedPeriod() {
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	result, err := service.RunForPeriod(suite.ctx, "tenant-1", "January 2024")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
}

func (suite *DepreciationServiceTestSuite) TestRunAllPending_ProcessesInOrder() {
	suite.repo.assets = []domain.FixedAsset{machineAsset(1000)}
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	result, err := service.RunAllPending(suite.ctx, "tenant-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01", "2024-02", "2024-03"}, result.ProcessedPeriods)
	suite.Empty(result.FailedAt)
	suite.Empty(result.Errors)

	suite.True(suite.repo.assets[0].AccumulatedDepreciation.Equal(decimal.NewFromInt(3000)))
	suite.True(suite.repo.assets[0].BookValue.Equal(decimal.NewFromInt(9000)))
	suite.Len(suite.repo.records, 3)
	suite.Len(suite.repo.runs, 3)
	suite.Len(suite.posting.posted, 3)

	// Re-invoking finds nothing left to do.
	again, err := service.RunAllPending(suite.ctx, "tenant-1")
	suite.Require().NoError(err)
	suite.Empty(again.ProcessedPeriods)
	suite.Empty(again.FailedAt)
}

func (suite *DepreciationServiceTestSuite) TestRunAllPending_HaltsOnFirstFailure() {
	suite.repo.assets = []domain.FixedAsset{machineAsset(1000)}
	suite.posting.failPeriods["2024-02"] = true
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	result, err := service.RunAllPending(suite.ctx, "tenant-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01"}, result.ProcessedPeriods)
	suite.Equal("2024-02", result.FailedAt)
	suite.Require().Len(result.Errors, 1)
	suite.Contains(result.Errors[0], "journal post failed")

	// The failed period's batch committed before the post: its fence stands
	// and 2024-03 was never attempted.
	suite.Len(suite.repo.runs, 2)
	suite.True(suite.repo.assets[0].AccumulatedDepreciation.Equal(decimal.NewFromInt(2000)))
	suite.Len(suite.posting.posted, 1)

	// The fenced period is not pending anymore; recovery is manual.
	pending, err := service.GetPendingPeriods(suite.ctx, "tenant-1")
	suite.Require().NoError(err)
	suite.Equal([]string{"2024-03"}, pending)
}

// Monthly 5000 against a 12000 base: 5000, 5000, then a 2000 clamp, then a
// fence-only period with nothing left to depreciate.
func (suite *DepreciationServiceTestSuite) TestRunAllPending_ClampsToDepreciableBase() {
	suite.repo.assets = []domain.FixedAsset{machineAsset(5000)}
	service := suite.newService(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	result, err := service.RunAllPending(suite.ctx, "tenant-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01", "2024-02", "2024-03", "2024-04"}, result.ProcessedPeriods)

	suite.Require().Len(suite.repo.records, 3)
	suite.True(suite.repo.records[0].Amount.Equal(decimal.NewFromInt(5000)))
	suite.True(suite.repo.records[1].Amount.Equal(decimal.NewFromInt(5000)))
	suite.True(suite.repo.records[2].Amount.Equal(decimal.NewFromInt(2000)))
	suite.True(suite.repo.assets[0].AccumulatedDepreciation.Equal(decimal.NewFromInt(12000)))
	suite.True(suite.repo.assets[0].BookValue.IsZero())

	// 2024-04 has a run fence but no records, ledger entry or journal post.
	suite.Len(suite.repo.runs, 4)
	suite.Len(suite.repo.ledgerEntries, 3)
	suite.Len(suite.posting.posted, 3)
	last := suite.repo.runs[3]
	suite.Equal("2024-04", last.Period)
	suite.Equal(0, last.AssetsCount)
	suite.True(last.TotalDepreciation.IsZero())
	suite.Empty(last.LedgerEntryID)
}

func (suite *DepreciationServiceTestSuite) TestRunAllPending_SkipsAssetsPurchasedLater() {
	early := machineAsset(1000)
	late := machineAsset(500)
	late.AssetID = "asset-2"
	late.PurchaseDate = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	suite.repo.assets = []domain.FixedAsset{early, late}
	service := suite.newService(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	result, err := service.RunAllPending(suite.ctx, "tenant-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01", "2024-02", "2024-03"}, result.ProcessedPeriods)

	// asset-2 only participates from its purchase month onward.
	perAsset := make(map[string][]string)
	for _, record := range suite.repo.records {
		perAsset[record.AssetID] = append(perAsset[record.AssetID], record.Period)
	}
	suite.Equal([]string{"2024-01", "2024-02", "2024-03"}, perAsset["asset-1"])
	suite.Equal([]string{"2024-03"}, perAsset["asset-2"])
}
