package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
	"github.com/factoryops/factory_books_app/internal/dto"
)

var (
	ErrChequeTransition = errors.New("illegal cheque status transition")
	ErrChequeEntryCount = errors.New("cheque journal-entry count violates lifecycle invariant")
	ErrChequeNotLinked  = errors.New("cheque has no linked transaction")
)

// chequeService governs when a cheque's cash effect becomes a journal entry.
// Pending cheques have no journal presence; cashing realizes cash, and a
// bounce after cashing posts one reversing entry and reopens the linked
// outstanding balance.
type chequeService struct {
	BaseService
	chequeRepo  portsrepo.ChequeRepository
	journalRepo portsrepo.JournalRepository
	ledgerRepo  portsrepo.LedgerRepository
	postingSvc  portssvc.PostingSvcFacade
	activity    portssvc.ActivitySvcFacade
}

// NewChequeService creates a new ChequeService.
func NewChequeService(chequeRepo portsrepo.ChequeRepository, journalRepo portsrepo.JournalRepository, ledgerRepo portsrepo.LedgerRepository, postingSvc portssvc.PostingSvcFacade, activity portssvc.ActivitySvcFacade) portssvc.ChequeSvcFacade {
	return &chequeService{
		chequeRepo:  chequeRepo,
		journalRepo: journalRepo,
		ledgerRepo:  ledgerRepo,
		postingSvc:  postingSvc,
		activity:    activity,
	}
}

var _ portssvc.ChequeSvcFacade = (*chequeService)(nil)

// verifyEntryCount checks the lifecycle invariant: a cheque owns 0, 1 or 2
// journal entries depending on its state. Any other count is corruption.
func (s *chequeService) verifyEntryCount(ctx context.Context, cheque *domain.Cheque, want int) error {
	entries, err := s.journalRepo.ListEntriesByCheque(ctx, cheque.TenantID, cheque.ChequeID)
	if err != nil {
		return err
	}
	if len(entries) != want {
		return fmt.Errorf("%w: %v: cheque %s in status %s has %d entries, want %d",
			apperrors.ErrConsistency, ErrChequeEntryCount, cheque.ChequeID, cheque.Status, len(entries), want)
	}
	return nil
}

// MarkCashed transitions PENDING -> CASHED and posts the cash-realization
// entry (incoming: DR Cash / CR AR; outgoing: DR AP / CR Cash).
func (s *chequeService) MarkCashed(ctx context.Context, tenantID, chequeID, userID string) (*domain.Cheque, error) {
	cheque, err := s.chequeRepo.FindChequeByID(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}
	if !cheque.CanTransition(domain.ChequeCashed) {
		return nil, fmt.Errorf("%w: %v: %s -> %s", apperrors.ErrValidation, ErrChequeTransition, cheque.Status, domain.ChequeCashed)
	}
	if cheque.LinkedTransactionID == "" {
		return nil, fmt.Errorf("%w: %v: %s", apperrors.ErrValidation, ErrChequeNotLinked, chequeID)
	}
	// A pending cheque must have no journal presence yet.
	if err := s.verifyEntryCount(ctx, cheque, 0); err != nil {
		return nil, err
	}

	if err := s.chequeRepo.UpdateChequeStatus(ctx, tenantID, chequeID, cheque.Status, domain.ChequeCashed, userID); err != nil {
		return nil, err
	}
	cheque.Status = domain.ChequeCashed

	template := cheque.CashedTemplate()
	entry, err := s.postingSvc.Post(ctx, tenantID, dto.CreateJournalEntryRequest{
		TemplateID:  string(template),
		Amount:      cheque.Amount,
		Date:        time.Now().UTC(),
		Description: fmt.Sprintf("Cheque %s cashed", chequeID),
		SourceType:  string(domain.SourceTransaction),
		SourceID:    cheque.LinkedTransactionID,
		ChequeID:    chequeID,
	}, userID)
	if err != nil {
		// The status update is committed; do not roll it back. The missing
		// realization entry has to be re-entered manually.
		tpl := domain.PostingTemplates[template]
		s.LogError(ctx, err, "MANUAL RECOVERY REQUIRED: cheque cashed but realization entry failed",
			slog.String("tenant_id", tenantID),
			slog.String("cheque_id", chequeID),
			slog.String("recovery_debit_account", tpl.DebitAccountCode),
			slog.String("recovery_credit_account", tpl.CreditAccountCode),
			slog.String("recovery_amount", cheque.Amount.String()))
		return nil, fmt.Errorf("cheque %s cashed but journal post failed: %w", chequeID, err)
	}

	if s.activity != nil {
		s.activity.Record(ctx, domain.Activity{
			TenantID:    tenantID,
			Action:      "cheque.cashed",
			Module:      "cheques",
			TargetID:    chequeID,
			UserID:      userID,
			Description: fmt.Sprintf("Cheque cashed for %s", cheque.Amount),
			Metadata:    map[string]string{"journalEntryID": entry.EntryID},
		})
	}

	s.LogInfo(ctx, "Cheque cashed",
		slog.String("tenant_id", tenantID),
		slog.String("cheque_id", chequeID),
		slog.String("entry_id", entry.EntryID))
	return cheque, nil
}

// MarkBounced handles both bounce paths. A pending cheque bounces with no
// journal effect (nothing was realized). A cashed cheque bounces with exactly
// one reversing entry, debit/credit swapped and amount identical to the
// realization entry, and the linked transaction's outstanding balance reopens.
func (s *chequeService) MarkBounced(ctx context.Context, tenantID, chequeID, userID string) (*domain.Cheque, error) {
	cheque, err := s.chequeRepo.FindChequeByID(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}

	switch cheque.Status {
	case domain.ChequePending:
		return s.bounceBeforeCashing(ctx, cheque, userID)
	case domain.ChequeCashed:
		return s.bounceAfterCashing(ctx, cheque, userID)
	default:
		return nil, fmt.Errorf("%w: %v: %s is terminal", apperrors.ErrValidation, ErrChequeTransition, cheque.Status)
	}
}

func (s *chequeService) bounceBeforeCashing(ctx context.Context, cheque *domain.Cheque, userID string) (*domain.Cheque, error) {
	// No cash was realized, so there is nothing to reverse.
	if err := s.verifyEntryCount(ctx, cheque, 0); err != nil {
		return nil, err
	}
	if err := s.chequeRepo.UpdateChequeStatus(ctx, cheque.TenantID, cheque.ChequeID, cheque.Status, domain.ChequeBouncedBeforeCashed, userID); err != nil {
		return nil, err
	}
	cheque.Status = domain.ChequeBouncedBeforeCashed

	if s.activity != nil {
		s.activity.Record(ctx, domain.Activity{
			TenantID:    cheque.TenantID,
			Action:      "cheque.bounced",
			Module:      "cheques",
			TargetID:    cheque.ChequeID,
			UserID:      userID,
			Description: "Cheque bounced before cashing",
		})
	}

	s.LogInfo(ctx, "Cheque bounced before cashing",
		slog.String("tenant_id", cheque.TenantID),
		slog.String("cheque_id", cheque.ChequeID))
	return cheque, nil
}

func (s *chequeService) bounceAfterCashing(ctx context.Context, cheque *domain.Cheque, userID string) (*domain.Cheque, error) {
	// Exactly the realization entry must exist before the reversal.
	if err := s.verifyEntryCount(ctx, cheque, 1); err != nil {
		return nil, err
	}
	if err := s.chequeRepo.UpdateChequeStatus(ctx, cheque.TenantID, cheque.ChequeID, cheque.Status, domain.ChequeBouncedAfterCashed, userID); err != nil {
		return nil, err
	}
	cheque.Status = domain.ChequeBouncedAfterCashed

	template := cheque.BouncedTemplate()
	entry, err := s.postingSvc.Post(ctx, cheque.TenantID, dto.CreateJournalEntryRequest{
		TemplateID:  string(template),
		Amount:      cheque.Amount,
		Date:        time.Now().UTC(),
		Description: fmt.Sprintf("Cheque %s bounced after cashing", cheque.ChequeID),
		SourceType:  string(domain.SourceTransaction),
		SourceID:    cheque.LinkedTransactionID,
		ChequeID:    cheque.ChequeID,
	}, userID)
	if err != nil {
		tpl := domain.PostingTemplates[template]
		s.LogError(ctx, err, "MANUAL RECOVERY REQUIRED: cheque bounced but reversing entry failed",
			slog.String("tenant_id", cheque.TenantID),
			slog.String("cheque_id", cheque.ChequeID),
			slog.String("recovery_debit_account", tpl.DebitAccountCode),
			slog.String("recovery_credit_account", tpl.CreditAccountCode),
			slog.String("recovery_amount", cheque.Amount.String()))
		return nil, fmt.Errorf("cheque %s bounced but reversal post failed: %w", cheque.ChequeID, err)
	}

	// Reopen the outstanding balance the cashed cheque had settled.
	if err := s.ledgerRepo.ReopenOutstanding(ctx, cheque.TenantID, cheque.LinkedTransactionID, cheque.Amount); err != nil {
		s.LogError(ctx, err, "Failed to reopen outstanding balance after bounce",
			slog.String("tenant_id", cheque.TenantID),
			slog.String("cheque_id", cheque.ChequeID),
			slog.String("linked_transaction_id", cheque.LinkedTransactionID))
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(ctx, domain.Activity{
			TenantID:    cheque.TenantID,
			Action:      "cheque.bounced",
			Module:      "cheques",
			TargetID:    cheque.ChequeID,
			UserID:      userID,
			Description: "Cheque bounced after cashing; reversal posted",
			Metadata:    map[string]string{"journalEntryID": entry.EntryID},
		})
	}

	s.LogInfo(ctx, "Cheque bounced after cashing",
		slog.String("tenant_id", cheque.TenantID),
		slog.String("cheque_id", cheque.ChequeID),
		slog.String("entry_id", entry.EntryID))
	return cheque, nil
}
