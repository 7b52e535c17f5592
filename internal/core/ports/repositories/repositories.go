package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	ReportingRepo ReportingRepository
	LedgerRepo    LedgerRepository
	ChequeRepo    ChequeRepository
	AssetRepo     AssetRepository
	ActivityRepo  ActivityRepository
}
