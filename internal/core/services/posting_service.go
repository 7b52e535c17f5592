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
)

var (
	ErrAmountNotPositive = errors.New("journal amount must be positive")
	ErrUnknownTemplate   = errors.New("unknown posting template")
	ErrSourceIncomplete  = errors.New("source type given without a document id")
)

// postingService is the journal posting engine: it translates a business
// event into exactly one balanced journal entry through the fixed template
// table. It reads nothing it must reconcile against.
type postingService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	activity    portssvc.ActivitySvcFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(journalRepo portsrepo.JournalRepository, activity portssvc.ActivitySvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo: journalRepo,
		activity:    activity,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// Post validates the request and persists one journal entry. The amount is
// copied identically into the debit and credit fields, so the entry is
// balanced by construction and never re-checked after the fact.
func (s *postingService) Post(ctx context.Context, tenantID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %v (got %s)", apperrors.ErrValidation, ErrAmountNotPositive, req.Amount)
	}

	template, ok := domain.PostingTemplates[domain.TemplateID(req.TemplateID)]
	if !ok {
		return nil, fmt.Errorf("%w: %v: %q", apperrors.ErrValidation, ErrUnknownTemplate, req.TemplateID)
	}

	if req.SourceType != "" && req.SourceID == "" {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrSourceIncomplete)
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:           uuid.NewString(),
		TenantID:          tenantID,
		DebitAccountCode:  template.DebitAccountCode,
		CreditAccountCode: template.CreditAccountCode,
		DebitAmount:       req.Amount,
		CreditAmount:      req.Amount,
		EntryDate:         req.Date,
		Description:       req.Description,
		TemplateID:        template.ID,
		Source: domain.SourceRef{
			Type:       domain.SourceType(req.SourceType),
			DocumentID: req.SourceID,
		},
		ChequeID: req.ChequeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to persist journal entry",
			slog.String("tenant_id", tenantID),
			slog.String("template_id", req.TemplateID))
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(ctx, domain.Activity{
			TenantID:    tenantID,
			Action:      "journal.post",
			Module:      "accounting",
			TargetID:    entry.EntryID,
			UserID:      creatorUserID,
			Description: template.Description,
			Metadata: map[string]string{
				"templateID": req.TemplateID,
				"amount":     req.Amount.String(),
			},
		})
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("tenant_id", tenantID),
		slog.String("entry_id", entry.EntryID),
		slog.String("template_id", req.TemplateID),
		slog.String("amount", req.Amount.String()))
	return &entry, nil
}

// GetEntry fetches a single journal entry by id.
func (s *postingService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries returns the tenant's journal entries, optionally as of a date.
func (s *postingService) ListEntries(ctx context.Context, tenantID string, asOf *time.Time) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return entries, nil
}
