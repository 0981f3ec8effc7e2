package domain

import "github.com/shopspring/decimal"

// LedgerSummary aggregates the registry at a point in time.
type LedgerSummary struct {
	AccountsByType   map[AccountType]int
	TotalAccounts    int
	TotalDeposits    decimal.Decimal // sum of positive balances
	TotalOverdrawn   decimal.Decimal // sum of negative balances, as a negative number
	ActiveLoans      int
	ClosedLoans      int
	OverdueLoans     int
	OutstandingLoans decimal.Decimal // remaining balance over active loans
	TotalDisbursed   decimal.Decimal // principal over all loans
}
