package service

import (
	"fmt"
	"slices"
	"sync"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerOptions are the registry's tunables.
type LedgerOptions struct {
	LoanIDSeed         int64
	OverdraftLimit     decimal.Decimal // applied to every checking account
	DefaultSavingsRate decimal.Decimal
}

// LedgerServiceImpl implements ports.LedgerService.
// A single mutex serializes every operation; the id counter belongs to the
// instance, so two ledgers never share a loan id sequence.
type LedgerServiceImpl struct {
	mu sync.Mutex

	accounts     map[string]*domain.Account
	accountOrder []string
	loans        map[string]*domain.Loan
	loanOrder    []string
	nextLoanID   int64

	opts  LedgerOptions
	clock ports.Clock
	log   zerolog.Logger
}

// NewLedgerService creates an empty ledger.
func NewLedgerService(opts LedgerOptions, clock ports.Clock, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts:   make(map[string]*domain.Account),
		loans:      make(map[string]*domain.Loan),
		nextLoanID: opts.LoanIDSeed,
		opts:       opts,
		clock:      clock,
		log:        log,
	}
}

// CreateAccount validates and registers a new account.
func (s *LedgerServiceImpl) CreateAccount(req ports.CreateAccountRequest) (domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Number]; exists {
		return domain.AccountSnapshot{}, apperror.ErrDuplicateAccount(req.Number)
	}

	params := domain.AccountParams{
		Type:           req.Type,
		Number:         req.Number,
		HolderName:     req.HolderName,
		InitialBalance: req.InitialBalance,
		InterestRate:   s.opts.DefaultSavingsRate,
		OverdraftLimit: s.opts.OverdraftLimit,
		TermMonths:     req.TermMonths,
	}
	if req.InterestRate != nil {
		params.InterestRate = *req.InterestRate
	}

	acct, err := domain.NewAccount(params, s.clock.Now())
	if err != nil {
		return domain.AccountSnapshot{}, err
	}

	s.accounts[acct.Number] = acct
	s.accountOrder = append(s.accountOrder, acct.Number)

	s.log.Info().
		Str("account_number", acct.Number).
		Str("account_type", string(acct.Type)).
		Stringer("balance", acct.Balance).
		Msg("account opened")

	return acct.Describe(), nil
}

// FindAccount looks an account up by number.
func (s *LedgerServiceImpl) FindAccount(number string) (domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[number]
	if !ok {
		return domain.AccountSnapshot{}, apperror.ErrAccountNotFound(number)
	}
	return acct.Describe(), nil
}

// Deposit credits an account.
func (s *LedgerServiceImpl) Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[number]
	if !ok {
		return decimal.Zero, apperror.ErrAccountNotFound(number)
	}

	balance, err := acct.Deposit(amount)
	if err != nil {
		return decimal.Zero, err
	}

	s.log.Info().
		Str("account_number", number).
		Stringer("amount", amount).
		Stringer("balance", balance).
		Msg("deposit")

	return balance, nil
}

// Withdraw debits an account, honoring the checking overdraft limit.
func (s *LedgerServiceImpl) Withdraw(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[number]
	if !ok {
		return decimal.Zero, apperror.ErrAccountNotFound(number)
	}

	balance, err := acct.Withdraw(amount)
	if err != nil {
		return decimal.Zero, err
	}

	s.log.Info().
		Str("account_number", number).
		Stringer("amount", amount).
		Stringer("balance", balance).
		Msg("withdrawal")
	s.warnIfOverdrawn(acct)

	return balance, nil
}

func (s *LedgerServiceImpl) warnIfOverdrawn(acct *domain.Account) {
	if acct.Overdrawn() {
		s.log.Warn().
			Str("account_number", acct.Number).
			Stringer("balance", acct.Balance).
			Stringer("overdraft_limit", acct.OverdraftLimit).
			Msg("account overdrawn")
	}
}

// InspectAccount returns the interest projection or overdraft check.
func (s *LedgerServiceImpl) InspectAccount(number string, probe decimal.Decimal) (domain.Inspection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[number]
	if !ok {
		return domain.Inspection{}, apperror.ErrAccountNotFound(number)
	}
	return acct.Inspect(probe), nil
}

// ListAccounts returns every account in the order it was opened.
func (s *LedgerServiceImpl) ListAccounts() []domain.AccountSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.AccountSnapshot, 0, len(s.accountOrder))
	for _, number := range s.accountOrder {
		out = append(out, s.accounts[number].Describe())
	}
	return out
}

// OriginateLoan creates a loan against an existing account and disburses
// the principal into it. A loan id is only consumed on success.
func (s *LedgerServiceImpl) OriginateLoan(req ports.OriginateLoanRequest) (domain.LoanSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[req.AccountNumber]
	if !ok {
		return domain.LoanSnapshot{}, apperror.ErrAccountNotFound(req.AccountNumber)
	}

	now := s.clock.Now()
	id := fmt.Sprintf("LOAN%d", s.nextLoanID)

	loan, err := domain.NewLoan(id, acct.Number, req.BorrowerName, req.Principal, req.InterestRate, req.TermMonths, req.Type, now)
	if err != nil {
		return domain.LoanSnapshot{}, err
	}

	if _, err := acct.Deposit(loan.Principal); err != nil {
		return domain.LoanSnapshot{}, err
	}

	s.nextLoanID++
	s.loans[id] = loan
	s.loanOrder = append(s.loanOrder, id)

	s.log.Info().
		Str("loan_id", id).
		Str("account_number", acct.Number).
		Str("loan_type", string(loan.Type)).
		Stringer("principal", loan.Principal).
		Stringer("monthly_payment", loan.MonthlyPayment).
		Msg("loan originated")

	return loan.Snapshot(now), nil
}

// FindLoan looks a loan up by id.
func (s *LedgerServiceImpl) FindLoan(loanID string) (domain.LoanSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return domain.LoanSnapshot{}, apperror.ErrLoanNotFound(loanID)
	}
	return loan.Snapshot(s.clock.Now()), nil
}

// ApplyLoanPayment withdraws amount from the linked account and applies it
// to the loan. Sufficiency is checked against the account's own balance,
// without any overdraft. The full amount is withdrawn even when the loan
// clamps it to the remaining balance.
func (s *LedgerServiceImpl) ApplyLoanPayment(loanID string, amount decimal.Decimal) (domain.PaymentBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return domain.PaymentBreakdown{}, apperror.ErrLoanNotFound(loanID)
	}
	if !loan.IsActive() {
		return domain.PaymentBreakdown{}, apperror.ErrLoanClosed(loanID)
	}
	if !amount.IsPositive() {
		return domain.PaymentBreakdown{}, apperror.ErrInvalidAmount()
	}

	acct, ok := s.accounts[loan.AccountNumber]
	if !ok {
		return domain.PaymentBreakdown{}, apperror.ErrAccountNotFound(loan.AccountNumber)
	}
	// Raw balance, checking accounts included: overdraft headroom does not
	// fund loan payments, although Withdraw below would allow it.
	if acct.Balance.LessThan(amount) {
		return domain.PaymentBreakdown{}, apperror.ErrInsufficientFunds()
	}

	if _, err := acct.Withdraw(amount); err != nil {
		return domain.PaymentBreakdown{}, err
	}

	breakdown, err := loan.ApplyPayment(amount, s.clock.Now())
	if err != nil {
		return domain.PaymentBreakdown{}, err
	}

	s.log.Info().
		Str("loan_id", loanID).
		Str("account_number", acct.Number).
		Stringer("amount", breakdown.Applied).
		Stringer("interest", breakdown.Interest).
		Stringer("principal", breakdown.Principal).
		Stringer("remaining", breakdown.Remaining).
		Msg("loan payment applied")

	if breakdown.Closed {
		s.log.Info().Str("loan_id", loanID).Msg("loan paid off")
	}

	return breakdown, nil
}

// CloseLoan forces a loan closed. Closing a closed loan is a no-op.
func (s *LedgerServiceImpl) CloseLoan(loanID string) (domain.LoanSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return domain.LoanSnapshot{}, apperror.ErrLoanNotFound(loanID)
	}

	loan.Close()
	s.log.Info().Str("loan_id", loanID).Msg("loan closed")

	return loan.Snapshot(s.clock.Now()), nil
}

// LoanSchedule projects the next payments of a loan. entries <= 0 asks
// for the longest projection.
func (s *LedgerServiceImpl) LoanSchedule(loanID string, entries int) ([]domain.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, apperror.ErrLoanNotFound(loanID)
	}
	if entries <= 0 {
		entries = domain.MaxScheduleEntries
	}

	schedule := slices.Collect(loan.ProjectSchedule(entries))
	if schedule == nil {
		schedule = []domain.ScheduleEntry{}
	}
	return schedule, nil
}

// LoanPayments returns the last limit payments, oldest first.
func (s *LedgerServiceImpl) LoanPayments(loanID string, limit int) ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, apperror.ErrLoanNotFound(loanID)
	}

	history := loan.History()
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}

// ListLoans returns every loan in origination order.
func (s *LedgerServiceImpl) ListLoans() []domain.LoanSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	out := make([]domain.LoanSnapshot, 0, len(s.loanOrder))
	for _, id := range s.loanOrder {
		out = append(out, s.loans[id].Snapshot(now))
	}
	return out
}
