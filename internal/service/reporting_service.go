package service

import (
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"

	"github.com/shopspring/decimal"
)

// reportingService implements ports.ReportingService over ledger snapshots.
type reportingService struct {
	ledger ports.LedgerService
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledger ports.LedgerService) ports.ReportingService {
	return &reportingService{ledger: ledger}
}

// Summary aggregates every account and loan currently in the ledger.
func (s *reportingService) Summary() domain.LedgerSummary {
	sum := domain.LedgerSummary{
		AccountsByType: map[domain.AccountType]int{
			domain.AccountTypeSavings:      0,
			domain.AccountTypeChecking:     0,
			domain.AccountTypeFixedDeposit: 0,
		},
		TotalDeposits:    decimal.Zero,
		TotalOverdrawn:   decimal.Zero,
		OutstandingLoans: decimal.Zero,
		TotalDisbursed:   decimal.Zero,
	}

	for _, a := range s.ledger.ListAccounts() {
		sum.TotalAccounts++
		sum.AccountsByType[a.Type]++
		if a.Balance.IsPositive() {
			sum.TotalDeposits = sum.TotalDeposits.Add(a.Balance)
		} else {
			sum.TotalOverdrawn = sum.TotalOverdrawn.Add(a.Balance)
		}
	}

	for _, l := range s.ledger.ListLoans() {
		sum.TotalDisbursed = sum.TotalDisbursed.Add(l.Principal)
		if l.Status == domain.LoanStatusClosed {
			sum.ClosedLoans++
			continue
		}
		sum.ActiveLoans++
		sum.OutstandingLoans = sum.OutstandingLoans.Add(l.Remaining)
		if l.Overdue {
			sum.OverdueLoans++
		}
	}

	return sum
}
