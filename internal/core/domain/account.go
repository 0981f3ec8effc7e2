package domain

import (
	"fmt"
	"time"

	"bank-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// AccountType tags which deposit-account variant an Account is.
type AccountType string

const (
	AccountTypeSavings      AccountType = "SAVINGS"
	AccountTypeChecking     AccountType = "CHECKING"
	AccountTypeFixedDeposit AccountType = "FIXED_DEPOSIT"
)

// AccountNumberLength is the exact length of every account number.
const AccountNumberLength = 12

// fixedDepositRate is the annual percent used for fixed-deposit projections,
// regardless of any rate stored on the account.
var fixedDepositRate = decimal.NewFromInt(7)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeFixedDeposit:
		return true
	}
	return false
}

// AccountParams holds the inputs for opening an account. Only the field
// belonging to the chosen Type is read.
type AccountParams struct {
	Type           AccountType
	Number         string
	HolderName     string
	InitialBalance decimal.Decimal
	InterestRate   decimal.Decimal // savings, annual percent
	OverdraftLimit decimal.Decimal // checking
	TermMonths     int             // fixed deposit
}

// Account is a deposit account. The variant-specific fields are only
// meaningful for the matching Type.
type Account struct {
	Number         string
	HolderName     string
	Type           AccountType
	Balance        decimal.Decimal
	InterestRate   decimal.Decimal
	OverdraftLimit decimal.Decimal
	TermMonths     int
	OpenedAt       time.Time
}

// NewAccount validates p and builds the account.
func NewAccount(p AccountParams, now time.Time) (*Account, error) {
	if !p.Type.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown account type %q", p.Type))
	}
	if err := validateAccountNumber(p.Number); err != nil {
		return nil, err
	}
	if err := validateHolderName(p.HolderName); err != nil {
		return nil, err
	}
	if p.InitialBalance.IsNegative() {
		return nil, apperror.Validation("initial balance cannot be negative")
	}

	a := &Account{
		Number:     p.Number,
		HolderName: p.HolderName,
		Type:       p.Type,
		Balance:    p.InitialBalance,
		OpenedAt:   now,
	}

	switch p.Type {
	case AccountTypeSavings:
		if !p.InterestRate.IsPositive() {
			return nil, apperror.Validation("savings interest rate must be greater than zero")
		}
		a.InterestRate = p.InterestRate
	case AccountTypeChecking:
		if p.OverdraftLimit.IsNegative() {
			return nil, apperror.Validation("overdraft limit cannot be negative")
		}
		a.OverdraftLimit = p.OverdraftLimit
	case AccountTypeFixedDeposit:
		if p.TermMonths < 0 {
			return nil, apperror.Validation("fixed deposit term cannot be negative")
		}
		a.TermMonths = p.TermMonths
	}

	return a, nil
}

// validateAccountNumber checks the exact-length rule.
func validateAccountNumber(number string) error {
	if len(number) != AccountNumberLength {
		return apperror.Validation(fmt.Sprintf("account number must be exactly %d characters", AccountNumberLength))
	}
	return nil
}

// validateHolderName accepts a non-empty name made of ASCII letters and spaces.
func validateHolderName(name string) error {
	if !IsHolderName(name) {
		return apperror.Validation("holder name must contain only letters and spaces")
	}
	return nil
}

// IsHolderName reports whether name is non-empty and made of letters and spaces.
func IsHolderName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != ' ' && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// Deposit credits amount and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.Balance, apperror.ErrInvalidAmount()
	}
	a.Balance = a.Balance.Add(amount)
	return a.Balance, nil
}

// Withdraw debits amount and returns the new balance. Checking accounts may
// go negative down to -OverdraftLimit; every other type stays >= 0.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.Balance, apperror.ErrInvalidAmount()
	}
	if amount.GreaterThan(a.AvailableFunds()) {
		return a.Balance, apperror.ErrInsufficientFunds()
	}
	a.Balance = a.Balance.Sub(amount)
	return a.Balance, nil
}

// AvailableFunds is the most that can be withdrawn right now.
func (a *Account) AvailableFunds() decimal.Decimal {
	if a.Type == AccountTypeChecking {
		return a.Balance.Add(a.OverdraftLimit)
	}
	return a.Balance
}

// Overdrawn reports whether the balance is below zero.
func (a *Account) Overdrawn() bool {
	return a.Balance.IsNegative()
}

// Inspection is the type-specific read-out of an account: an annual interest
// projection for savings and fixed deposits, overdraft headroom for checking.
type Inspection struct {
	AccountNumber string
	Type          AccountType

	// Savings / fixed deposit.
	AnnualRate        *decimal.Decimal
	TermMonths        *int
	ProjectedInterest *decimal.Decimal

	// Checking.
	AvailableFunds    *decimal.Decimal
	Probe             *decimal.Decimal
	WithdrawalAllowed *bool
}

// Inspect computes the interest projection or the overdraft check. probe is
// the hypothetical withdrawal amount and is only read for checking accounts.
func (a *Account) Inspect(probe decimal.Decimal) Inspection {
	in := Inspection{AccountNumber: a.Number, Type: a.Type}

	switch a.Type {
	case AccountTypeSavings:
		rate := a.InterestRate
		interest := a.Balance.Mul(rate).Div(decimal.NewFromInt(100))
		in.AnnualRate = &rate
		in.ProjectedInterest = &interest
	case AccountTypeFixedDeposit:
		rate := fixedDepositRate
		term := a.TermMonths
		interest := a.Balance.Mul(rate).Mul(decimal.NewFromInt(int64(term))).Div(decimal.NewFromInt(1200))
		in.AnnualRate = &rate
		in.TermMonths = &term
		in.ProjectedInterest = &interest
	case AccountTypeChecking:
		available := a.AvailableFunds()
		allowed := probe.LessThanOrEqual(available)
		in.AvailableFunds = &available
		in.Probe = &probe
		in.WithdrawalAllowed = &allowed
	}

	return in
}

// AccountSnapshot is a read-only copy of an account.
type AccountSnapshot struct {
	Number         string
	HolderName     string
	Type           AccountType
	Balance        decimal.Decimal
	InterestRate   *decimal.Decimal
	OverdraftLimit *decimal.Decimal
	TermMonths     *int
	OpenedAt       time.Time
}

// Describe returns a snapshot carrying only the fields of a's variant.
func (a *Account) Describe() AccountSnapshot {
	s := AccountSnapshot{
		Number:     a.Number,
		HolderName: a.HolderName,
		Type:       a.Type,
		Balance:    a.Balance,
		OpenedAt:   a.OpenedAt,
	}

	switch a.Type {
	case AccountTypeSavings:
		rate := a.InterestRate
		s.InterestRate = &rate
	case AccountTypeChecking:
		limit := a.OverdraftLimit
		s.OverdraftLimit = &limit
	case AccountTypeFixedDeposit:
		term := a.TermMonths
		s.TermMonths = &term
	}

	return s
}
