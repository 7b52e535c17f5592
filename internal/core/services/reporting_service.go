package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
)

// reportingService builds the trial balance and balance sheet from journal
// entries. Reads are point-in-time scans, not consistent snapshots.
type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepository, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// EnsureChartOfAccounts seeds the default chart for the tenant. Idempotent:
// existing accounts are left untouched.
func (s *reportingService) EnsureChartOfAccounts(ctx context.Context, tenantID string) error {
	if err := s.accountRepo.SeedDefaultAccounts(ctx, tenantID); err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts", slog.String("tenant_id", tenantID))
		return err
	}
	return nil
}

// TrialBalance aggregates all journal entries (optionally date-filtered) into
// per-account debit/credit totals and per-account balances on each account's
// normal side.
func (s *reportingService) TrialBalance(ctx context.Context, tenantID string, asOf *time.Time) (*domain.TrialBalanceReport, error) {
	if err := s.EnsureChartOfAccounts(ctx, tenantID); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalanceReport{
		Rows:         rows,
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for i, row := range rows {
		if row.NormalSide == domain.DebitNormal {
			report.Rows[i].Balance = row.TotalDebit.Sub(row.TotalCredit)
		} else {
			report.Rows[i].Balance = row.TotalCredit.Sub(row.TotalDebit)
		}
		report.TotalDebits = report.TotalDebits.Add(row.TotalDebit)
		report.TotalCredits = report.TotalCredits.Add(row.TotalCredit)
	}

	report.Difference = report.TotalDebits.Sub(report.TotalCredits)
	report.IsBalanced = report.Difference.Abs().LessThan(domain.RoundingTolerance)

	if !report.IsBalanced {
		s.LogError(ctx, fmt.Errorf("%w: trial balance off by %s", apperrors.ErrConsistency, report.Difference),
			"Trial balance does not balance",
			slog.String("tenant_id", tenantID),
			slog.String("total_debits", report.TotalDebits.String()),
			slog.String("total_credits", report.TotalCredits.String()))
	}

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("tenant_id", tenantID),
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("is_balanced", report.IsBalanced))
	return report, nil
}

// BalanceSheet classifies trial-balance accounts into assets, liabilities and
// equity, and injects net income (revenue minus expenses up to asOf) as a
// synthetic equity line, since revenue and expense accounts have no
// balance-sheet presence of their own.
func (s *reportingService) BalanceSheet(ctx context.Context, tenantID string, asOf *time.Time) (*domain.BalanceSheetReport, error) {
	trialBalance, err := s.TrialBalance(ctx, tenantID, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	netIncome := decimal.Zero

	for _, row := range trialBalance.Rows {
		switch row.AccountType {
		case domain.Asset:
			// Signed on the debit side; contra-assets appear negative.
			amount := row.TotalDebit.Sub(row.TotalCredit)
			report.Assets = append(report.Assets, domain.BalanceSheetLine{
				AccountCode: row.AccountCode,
				AccountName: row.AccountName,
				Amount:      amount,
			})
			report.TotalAssets = report.TotalAssets.Add(amount)
		case domain.Liability:
			amount := row.TotalCredit.Sub(row.TotalDebit)
			report.Liabilities = append(report.Liabilities, domain.BalanceSheetLine{
				AccountCode: row.AccountCode,
				AccountName: row.AccountName,
				Amount:      amount,
			})
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case domain.Equity:
			amount := row.TotalCredit.Sub(row.TotalDebit)
			report.Equity = append(report.Equity, domain.BalanceSheetLine{
				AccountCode: row.AccountCode,
				AccountName: row.AccountName,
				Amount:      amount,
			})
			report.TotalEquity = report.TotalEquity.Add(amount)
		case domain.Revenue:
			netIncome = netIncome.Add(row.TotalCredit.Sub(row.TotalDebit))
		case domain.Expense:
			netIncome = netIncome.Sub(row.TotalDebit.Sub(row.TotalCredit))
		}
	}

	report.Equity = append(report.Equity, domain.BalanceSheetLine{
		AccountName: "Net Income",
		Amount:      netIncome,
	})
	report.TotalEquity = report.TotalEquity.Add(netIncome)

	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabilitiesAndEquity)
	report.IsBalanced = report.Difference.Abs().LessThan(domain.RoundingTolerance)

	if !report.IsBalanced {
		// Never absorbed silently: the exact numeric difference is surfaced.
		s.LogError(ctx, fmt.Errorf("%w: balance sheet off by %s", apperrors.ErrConsistency, report.Difference),
			"Balance sheet does not balance",
			slog.String("tenant_id", tenantID),
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", report.TotalLiabilitiesAndEquity.String()))
	}

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("tenant_id", tenantID),
		slog.Bool("is_balanced", report.IsBalanced))
	return report, nil
}
