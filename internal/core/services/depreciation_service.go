package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/dto"
	"github.com/factoryops/factory_books_app/internal/utils/accounting"
)

var ErrPeriodAlreadyProcessed = errors.New("depreciation period already processed")

// schedulerUserID stamps audit fields on scheduler-originated writes.
const schedulerUserID = "depreciation-scheduler"

// depreciationService is the per-period depreciation batch processor.
//
// Each period's depreciation is a function of the prior period's ending book
// value, so periods must run strictly in order: the run fence, the ascending
// order and the fail-fast halt are the safeguard against silent corruption.
type depreciationService struct {
	BaseService
	assetRepo  portsrepo.AssetRepository
	postingSvc portssvc.PostingSvcFacade
	activity   portssvc.ActivitySvcFacade
	now        func() time.Time
}

// DepreciationServiceOption is a functional option for configuring the
// depreciation service.
type DepreciationServiceOption func(*depreciationService)

// WithClock overrides the time source used for period-boundary computation.
func WithClock(now func() time.Time) DepreciationServiceOption {
	return func(s *depreciationService) {
		s.now = now
	}
}

// NewDepreciationService creates a new DepreciationService.
func NewDepreciationService(assetRepo portsrepo.AssetRepository, postingSvc portssvc.PostingSvcFacade, activity portssvc.ActivitySvcFacade, options ...DepreciationServiceOption) portssvc.DepreciationSvcFacade {
	svc := &depreciationService{
		assetRepo:  assetRepo,
		postingSvc: postingSvc,
		activity:   activity,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

// GetPendingPeriods computes every calendar month from the earliest active
// asset's purchase month through last month inclusive, minus the months
// already fenced by a depreciation run, sorted strictly ascending. The
// current, incomplete month is never included.
func (s *depreciationService) GetPendingPeriods(ctx context.Context, tenantID string) ([]string, error) {
	assets, err := s.assetRepo.ListAssets(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return s.pendingPeriods(ctx, tenantID, assets)
}

func (s *depreciationService) pendingPeriods(ctx context.Context, tenantID string, assets []domain.FixedAsset) ([]string, error) {
	var earliest *time.Time
	for _, a := range assets {
		if a.Status != domain.AssetActive {
			continue
		}
		purchase := a.PurchaseDate
		if earliest == nil || purchase.Before(*earliest) {
			earliest = &purchase
		}
	}
	if earliest == nil {
		return nil, nil
	}

	runs, err := s.assetRepo.ListRuns(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciation runs", slog.String("tenant_id", tenantID))
		return nil, err
	}
	processed := make(map[string]bool, len(runs))
	for _, r := range runs {
		processed[r.Period] = true
	}

	return accounting.PendingPeriods(*earliest, s.now(), processed), nil
}

// RunForPeriod depreciates a single period. The per-asset records, updated
// assets, aggregate ledger entry and run fence commit in one atomic batch;
// the dependent journal post runs after the commit and is not part of that
// unit. When the post fails, the committed batch stands and the result
// reports JournalPosted=false; the period must never be re-run, because that
// would double-count the record/ledger side.
func (s *depreciationService) RunForPeriod(ctx context.Context, tenantID, period string) (*domain.PeriodRunResult, error) {
	if _, err := accounting.ParsePeriod(period); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	assets, err := s.assetRepo.ListAssets(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("tenant_id", tenantID))
		return nil, err
	}

	result, _, err := s.runPeriod(ctx, tenantID, period, assets)
	return result, err
}

// runPeriod executes one period against the given asset snapshots and
// returns the snapshots with accumulated depreciation advanced.
func (s *depreciationService) runPeriod(ctx context.Context, tenantID, period string, assets []domain.FixedAsset) (*domain.PeriodRunResult, []domain.FixedAsset, error) {
	periodEnd, err := accounting.PeriodEnd(period)
	if err != nil {
		return nil, assets, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := s.now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     schedulerUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: schedulerUserID,
	}

	var (
		records       []domain.DepreciationRecord
		updatedAssets []domain.FixedAsset
		total         = decimal.Zero
	)
	snapshots := make([]domain.FixedAsset, len(assets))
	copy(snapshots, assets)

	for i, asset := range snapshots {
		if asset.Status != domain.AssetActive || asset.IsFullyDepreciated() {
			continue
		}
		// Assets acquired after this period have nothing to depreciate yet.
		if accounting.FormatPeriod(asset.PurchaseDate) > period {
			continue
		}

		amount := asset.PeriodDepreciation()
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		asset.AccumulatedDepreciation = asset.AccumulatedDepreciation.Add(amount)
		asset.BookValue = asset.PurchaseCost.Sub(asset.AccumulatedDepreciation)
		asset.LastUpdatedAt = now
		asset.LastUpdatedBy = schedulerUserID
		snapshots[i] = asset

		records = append(records, domain.DepreciationRecord{
			RecordID:     uuid.NewString(),
			TenantID:     tenantID,
			AssetID:      asset.AssetID,
			Period:       period,
			Amount:       amount,
			BookValueEnd: asset.BookValue,
			AuditFields:  audit,
		})
		updatedAssets = append(updatedAssets, asset)
		total = total.Add(amount)
	}

	run := domain.DepreciationRun{
		RunID:             uuid.NewString(),
		TenantID:          tenantID,
		Period:            period,
		AssetsCount:       len(records),
		TotalDepreciation: total,
		AuditFields:       audit,
	}
	batch := portsrepo.DepreciationBatch{
		TenantID: tenantID,
		Records:  records,
		Assets:   updatedAssets,
		Run:      run,
	}
	if total.GreaterThan(decimal.Zero) {
		batch.LedgerEntry = domain.LedgerEntry{
			LedgerEntryID: uuid.NewString(),
			TenantID:      tenantID,
			Type:          domain.LedgerExpense,
			Amount:        total,
			Category:      "Depreciation",
			SubCategory:   period,
			PaymentStatus: domain.PaymentPaid,
			EntryDate:     periodEnd,
			Description:   fmt.Sprintf("Depreciation for %s (%d assets)", period, len(records)),
			AuditFields:   audit,
		}
		batch.Run.LedgerEntryID = batch.LedgerEntry.LedgerEntryID
	}

	if err := s.assetRepo.ApplyDepreciationBatch(ctx, batch); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent caller won the fence; the period is processed.
			return nil, snapshots, fmt.Errorf("%w: %s: %v", ErrPeriodAlreadyProcessed, period, err)
		}
		s.LogError(ctx, err, "Failed to commit depreciation batch",
			slog.String("tenant_id", tenantID),
			slog.String("period", period))
		return nil, snapshots, err
	}

	result := &domain.PeriodRunResult{
		Period:            period,
		AssetsCount:       len(records),
		TotalDepreciation: total,
		LedgerEntryID:     batch.Run.LedgerEntryID,
	}

	if total.LessThanOrEqual(decimal.Zero) {
		// Nothing left to depreciate; the fence still marks the period done.
		s.LogInfo(ctx, "Depreciation period fenced with no depreciable assets",
			slog.String("tenant_id", tenantID),
			slog.String("period", period))
		return result, snapshots, nil
	}

	entry, err := s.postingSvc.Post(ctx, tenantID, dto.CreateJournalEntryRequest{
		TemplateID:  string(domain.TemplateDepreciation),
		Amount:      total,
		Date:        periodEnd,
		Description: batch.LedgerEntry.Description,
		SourceType:  string(domain.SourceTransaction),
		SourceID:    batch.LedgerEntry.LedgerEntryID,
	}, schedulerUserID)
	if err != nil {
		// The batch is committed and must not be rolled back: a rollback
		// write can itself fail and compound the problem. Re-running the
		// period would double-count the record/ledger side, so the journal
		// leg has to be re-entered manually.
		template := domain.PostingTemplates[domain.TemplateDepreciation]
		s.LogError(ctx, err, "MANUAL RECOVERY REQUIRED: depreciation batch committed but journal post failed",
			slog.String("tenant_id", tenantID),
			slog.String("period", period),
			slog.String("ledger_entry_id", batch.LedgerEntry.LedgerEntryID),
			slog.String("recovery_debit_account", template.DebitAccountCode),
			slog.String("recovery_credit_account", template.CreditAccountCode),
			slog.String("recovery_amount", total.String()))
		return result, snapshots, fmt.Errorf("journal post failed for period %s after batch commit: %w", period, err)
	}

	result.JournalEntryID = entry.EntryID
	result.JournalPosted = true

	if s.activity != nil {
		s.activity.Record(ctx, domain.Activity{
			TenantID:    tenantID,
			Action:      "depreciation.run",
			Module:      "assets",
			TargetID:    batch.Run.RunID,
			UserID:      schedulerUserID,
			Description: fmt.Sprintf("Depreciated %d assets for %s", len(records), period),
			Metadata: map[string]string{
				"period": period,
				"total":  total.String(),
			},
		})
	}

	s.LogInfo(ctx, "Depreciation period processed",
		slog.String("tenant_id", tenantID),
		slog.String("period", period),
		slog.Int("assets", len(records)),
		slog.String("total", total.String()))
	return result, snapshots, nil
}

// RunAllPending processes every pending period strictly in ascending order.
// After each success the in-memory asset snapshots advance, so the next
// period computes against correct bases without re-reading storage. The
// first failure halts the run; later periods are never attempted. Safe to
// re-invoke: pending periods are recomputed from storage.
func (s *depreciationService) RunAllPending(ctx context.Context, tenantID string) (*domain.RunAllResult, error) {
	assets, err := s.assetRepo.ListAssets(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("tenant_id", tenantID))
		return nil, err
	}

	pending, err := s.pendingPeriods(ctx, tenantID, assets)
	if err != nil {
		return nil, err
	}

	result := &domain.RunAllResult{}
	for _, period := range pending {
		_, advanced, err := s.runPeriod(ctx, tenantID, period, assets)
		if err != nil {
			if errors.Is(err, ErrPeriodAlreadyProcessed) {
				// Lost a fence race; storage has the authoritative asset
				// state now, so refresh before the next period.
				assets, err = s.assetRepo.ListAssets(ctx, tenantID)
				if err != nil {
					result.FailedAt = period
					result.Errors = append(result.Errors, err.Error())
					break
				}
				continue
			}
			result.FailedAt = period
			result.Errors = append(result.Errors, err.Error())
			break
		}
		assets = advanced
		result.ProcessedPeriods = append(result.ProcessedPeriods, period)
	}

	s.LogInfo(ctx, "Depreciation sweep finished",
		slog.String("tenant_id", tenantID),
		slog.Int("processed", len(result.ProcessedPeriods)),
		slog.String("failed_at", result.FailedAt))
	return result, nil
}
