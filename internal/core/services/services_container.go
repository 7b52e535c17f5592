package services

import (
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repositories. The activity
// service is built first so the others can record into it.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	activitySvc := NewActivityService(repos.ActivityRepo)
	postingSvc := NewPostingService(repos.JournalRepo, activitySvc)

	return &portssvc.ServiceContainer{
		Posting:      postingSvc,
		Reporting:    NewReportingService(repos.AccountRepo, repos.ReportingRepo),
		Audit:        NewAuditService(repos.JournalRepo, repos.LedgerRepo, activitySvc),
		Depreciation: NewDepreciationService(repos.AssetRepo, postingSvc, activitySvc),
		Cheque:       NewChequeService(repos.ChequeRepo, repos.JournalRepo, repos.LedgerRepo, postingSvc, activitySvc),
		Activity:     activitySvc,
	}
}
