package ports

import (
	"bank-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LedgerService is the account and loan registry. Every call is
// serialized per ledger and returns copies, never live entities.
type LedgerService interface {
	CreateAccount(req CreateAccountRequest) (domain.AccountSnapshot, error)
	FindAccount(number string) (domain.AccountSnapshot, error)
	Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error)  // new balance
	Withdraw(number string, amount decimal.Decimal) (decimal.Decimal, error) // new balance
	InspectAccount(number string, probe decimal.Decimal) (domain.Inspection, error)
	ListAccounts() []domain.AccountSnapshot

	OriginateLoan(req OriginateLoanRequest) (domain.LoanSnapshot, error)
	FindLoan(loanID string) (domain.LoanSnapshot, error)
	ApplyLoanPayment(loanID string, amount decimal.Decimal) (domain.PaymentBreakdown, error)
	CloseLoan(loanID string) (domain.LoanSnapshot, error)
	LoanSchedule(loanID string, entries int) ([]domain.ScheduleEntry, error)
	LoanPayments(loanID string, limit int) ([]domain.Payment, error) // most recent last; limit <= 0 returns all
	ListLoans() []domain.LoanSnapshot
}

// CreateAccountRequest holds input for opening an account. Only the
// parameter of the chosen type is read.
type CreateAccountRequest struct {
	Type           domain.AccountType
	Number         string
	HolderName     string
	InitialBalance decimal.Decimal
	InterestRate   *decimal.Decimal // savings; nil = ledger default
	TermMonths     int              // fixed deposit
}

// OriginateLoanRequest holds input for a new loan.
type OriginateLoanRequest struct {
	AccountNumber string
	BorrowerName  string
	Principal     decimal.Decimal
	InterestRate  decimal.Decimal // annual percent
	TermMonths    int
	Type          domain.LoanType
}
