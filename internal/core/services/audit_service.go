package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
)

// auditService cross-checks journal entries against the business documents
// they were derived from. A business-record write and its journal write are
// not one atomic operation, so drift is possible and must be detectable.
type auditService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	ledgerRepo  portsrepo.LedgerRepository
	activity    portssvc.ActivitySvcFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(journalRepo portsrepo.JournalRepository, ledgerRepo portsrepo.LedgerRepository, activity portssvc.ActivitySvcFacade) portssvc.AuditSvcFacade {
	return &auditService{
		journalRepo: journalRepo,
		ledgerRepo:  ledgerRepo,
		activity:    activity,
	}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// resolveSources loads all journal entries for the tenant and resolves which
// of their source references still point at an existing document.
func (s *auditService) resolveSources(ctx context.Context, tenantID string) ([]domain.JournalEntry, map[string]bool, map[string]bool, error) {
	entries, err := s.journalRepo.ListEntries(ctx, tenantID, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	var transactionIDs, paymentIDs []string
	for _, e := range entries {
		switch e.Source.Type {
		case domain.SourceTransaction:
			transactionIDs = append(transactionIDs, e.Source.DocumentID)
		case domain.SourcePayment:
			paymentIDs = append(paymentIDs, e.Source.DocumentID)
		}
	}

	existingTransactions, err := s.ledgerRepo.FilterExistingLedgerEntryIDs(ctx, tenantID, transactionIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	existingPayments, err := s.ledgerRepo.FilterExistingPaymentIDs(ctx, tenantID, paymentIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	return entries, existingTransactions, existingPayments, nil
}

// Diagnose classifies every journal entry by the state of its source
// reference.
func (s *auditService) Diagnose(ctx context.Context, tenantID string) (*domain.DiagnoseReport, error) {
	entries, existingTransactions, existingPayments, err := s.resolveSources(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve journal sources", slog.String("tenant_id", tenantID))
		return nil, err
	}

	report := &domain.DiagnoseReport{TotalEntries: len(entries)}
	for _, e := range entries {
		switch e.Source.Type {
		case domain.SourceTransaction:
			if existingTransactions[e.Source.DocumentID] {
				report.LinkedToTransaction++
			} else {
				report.OrphanedByTransaction++
			}
		case domain.SourcePayment:
			if existingPayments[e.Source.DocumentID] {
				report.LinkedToPayment++
			} else {
				report.OrphanedByPayment++
			}
		default:
			report.Unlinked++
		}
	}

	s.LogInfo(ctx, "Journal diagnosis complete",
		slog.String("tenant_id", tenantID),
		slog.Int("total", report.TotalEntries),
		slog.Int("orphaned_by_transaction", report.OrphanedByTransaction),
		slog.Int("orphaned_by_payment", report.OrphanedByPayment),
		slog.Int("unlinked", report.Unlinked))
	return report, nil
}

// Audit compares every cash-leg journal entry's amount with the amount on
// its source document, and flags sources shared by more than one entry.
func (s *auditService) Audit(ctx context.Context, tenantID string) (*domain.AuditReport, error) {
	entries, err := s.journalRepo.ListEntries(ctx, tenantID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries for audit", slog.String("tenant_id", tenantID))
		return nil, err
	}

	report := &domain.AuditReport{}
	sourceCounts := make(map[domain.SourceRef]int)
	ledgerCache := make(map[string]*domain.LedgerEntry)
	paymentCache := make(map[string]*domain.Payment)

	for _, e := range entries {
		if !e.Source.IsZero() && e.ChequeID == "" {
			// Cheque lifecycle entries legitimately share their source (the
			// realization and its reversal); they are governed by the cheque
			// entry-count invariant instead.
			sourceCounts[e.Source]++
		}

		if !e.TouchesCash() || e.Source.IsZero() {
			continue
		}
		report.EntriesChecked++

		var sourceAmount *decimal.Decimal
		switch e.Source.Type {
		case domain.SourceTransaction:
			ledgerEntry, ok := ledgerCache[e.Source.DocumentID]
			if !ok {
				ledgerEntry, err = s.ledgerRepo.FindLedgerEntryByID(ctx, tenantID, e.Source.DocumentID)
				if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
					return nil, err
				}
				ledgerCache[e.Source.DocumentID] = ledgerEntry
			}
			if ledgerEntry != nil {
				amount := ledgerEntry.Amount
				sourceAmount = &amount
			}
		case domain.SourcePayment:
			payment, ok := paymentCache[e.Source.DocumentID]
			if !ok {
				payment, err = s.ledgerRepo.FindPaymentByID(ctx, tenantID, e.Source.DocumentID)
				if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
					return nil, err
				}
				paymentCache[e.Source.DocumentID] = payment
			}
			if payment != nil && !payment.NoCashMovement && !payment.IsEndorsement {
				amount := payment.Amount
				sourceAmount = &amount
			}
		}

		if sourceAmount == nil {
			// Orphaned or cash-exempt source; Diagnose covers orphans.
			continue
		}

		difference := e.CashAmount().Sub(*sourceAmount)
		if difference.Abs().GreaterThanOrEqual(domain.RoundingTolerance) {
			report.Mismatches = append(report.Mismatches, domain.Mismatch{
				EntryID:           e.EntryID,
				LinkType:          e.Source.Type,
				LinkedID:          e.Source.DocumentID,
				JournalCashAmount: e.CashAmount(),
				SourceAmount:      *sourceAmount,
				Difference:        difference,
			})
		}
	}

	for ref, count := range sourceCounts {
		if count > 1 {
			report.Duplicates = append(report.Duplicates, domain.Duplicate{
				SourceType: ref.Type,
				SourceID:   ref.DocumentID,
				Count:      count,
			})
		}
	}
	sort.Slice(report.Duplicates, func(i, j int) bool {
		return report.Duplicates[i].SourceID < report.Duplicates[j].SourceID
	})

	if len(report.Mismatches) > 0 || len(report.Duplicates) > 0 {
		s.LogWarn(ctx, "Journal audit found drift",
			slog.String("tenant_id", tenantID),
			slog.Int("mismatches", len(report.Mismatches)),
			slog.Int("duplicates", len(report.Duplicates)))
	}
	return report, nil
}

// CleanupOrphaned deletes journal entries whose source document no longer
// exists. Dry runs return the candidate set without mutation. Unlinked
// entries may be deliberate manual postings and are deleted only on explicit
// opt-in.
func (s *auditService) CleanupOrphaned(ctx context.Context, tenantID string, dryRun, includeUnlinked bool) (*domain.CleanupResult, error) {
	entries, existingTransactions, existingPayments, err := s.resolveSources(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve journal sources for cleanup", slog.String("tenant_id", tenantID))
		return nil, err
	}

	result := &domain.CleanupResult{DryRun: dryRun}
	for _, e := range entries {
		switch e.Source.Type {
		case domain.SourceTransaction:
			if !existingTransactions[e.Source.DocumentID] {
				result.Deleted = append(result.Deleted, e)
			}
		case domain.SourcePayment:
			if !existingPayments[e.Source.DocumentID] {
				result.Deleted = append(result.Deleted, e)
			}
		default:
			if includeUnlinked {
				result.Deleted = append(result.Deleted, e)
			}
		}
	}

	if dryRun || len(result.Deleted) == 0 {
		s.LogInfo(ctx, "Orphan cleanup dry run",
			slog.String("tenant_id", tenantID),
			slog.Int("candidates", len(result.Deleted)))
		return result, nil
	}

	entryIDs := make([]string, len(result.Deleted))
	for i, e := range result.Deleted {
		entryIDs[i] = e.EntryID
	}
	if err := s.journalRepo.DeleteEntries(ctx, tenantID, entryIDs); err != nil {
		s.LogError(ctx, err, "Failed to delete orphaned journal entries", slog.String("tenant_id", tenantID))
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(ctx, domain.Activity{
			TenantID:    tenantID,
			Action:      "journal.cleanup_orphaned",
			Module:      "accounting",
			Description: fmt.Sprintf("Deleted %d orphaned journal entries", len(entryIDs)),
			Metadata:    map[string]string{"includeUnlinked": fmt.Sprintf("%t", includeUnlinked)},
		})
	}

	s.LogInfo(ctx, "Orphaned journal entries deleted",
		slog.String("tenant_id", tenantID),
		slog.Int("deleted", len(entryIDs)))
	return result, nil
}
