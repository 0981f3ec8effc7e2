package domain

import (
	"fmt"
	"iter"
	"time"

	"bank-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// LoanType is the product a loan was originated under.
type LoanType string

const (
	LoanTypePersonal LoanType = "Personal"
	LoanTypeHome     LoanType = "Home"
	LoanTypeCar      LoanType = "Car"
	LoanTypeBusiness LoanType = "Business"
)

// LoanStatus is the state of the amortization state machine.
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "ACTIVE"
	LoanStatusClosed LoanStatus = "CLOSED"
)

// MaxScheduleEntries caps how far ahead a schedule projection looks.
const MaxScheduleEntries = 6

// approxMonth is the month length used by the overdue heuristic.
const approxMonth = 30 * 24 * time.Hour

// workingScale is the number of decimal places kept by the amortization
// arithmetic. Money is rounded to cents only when rendered.
const workingScale = 20

var (
	payoffEpsilon  = decimal.New(1, -2) // 0.01
	monthlyDivisor = decimal.NewFromInt(1200)

	defaultRates = map[LoanType]decimal.Decimal{
		LoanTypePersonal: decimal.NewFromInt(12),
		LoanTypeHome:     decimal.RequireFromString("7.5"),
		LoanTypeCar:      decimal.RequireFromString("9.5"),
		LoanTypeBusiness: decimal.NewFromInt(14),
	}
)

// Valid reports whether t is a known loan type.
func (t LoanType) Valid() bool {
	_, ok := defaultRates[t]
	return ok
}

// DefaultRate returns the annual percent offered for t when the borrower
// does not negotiate one. Unknown types get zero.
func DefaultRate(t LoanType) decimal.Decimal {
	return defaultRates[t]
}

// Payment is one entry of a loan's payment history.
type Payment struct {
	PaidAt time.Time
	Amount decimal.Decimal
}

// PaymentBreakdown is the outcome of applying a payment.
// Applied is Requested clamped to the pre-payment remaining balance.
// Interest may exceed Applied when the payment does not cover it; the
// shortfall is absorbed and Principal is zero.
type PaymentBreakdown struct {
	Requested decimal.Decimal
	Applied   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Remaining decimal.Decimal
	Closed    bool
}

// ScheduleEntry is one projected future payment.
type ScheduleEntry struct {
	Number    int
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// Loan is an amortizing loan linked to one account.
type Loan struct {
	ID             string
	AccountNumber  string
	BorrowerName   string
	Type           LoanType
	Principal      decimal.Decimal
	Remaining      decimal.Decimal
	InterestRate   decimal.Decimal // annual percent
	TermMonths     int
	MonthlyPayment decimal.Decimal
	PaymentsMade   int
	Status         LoanStatus
	StartedAt      time.Time

	history []Payment
}

// NewLoan originates a loan and derives its fixed monthly payment.
func NewLoan(id, accountNumber, borrower string, principal, rate decimal.Decimal, termMonths int, loanType LoanType, now time.Time) (*Loan, error) {
	if !loanType.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown loan type %q", loanType))
	}
	if !principal.IsPositive() {
		return nil, apperror.Validation("principal must be greater than zero")
	}
	// A negative rate is malformed input (ValidationError); 0 is straight-line.
	if rate.IsNegative() {
		return nil, apperror.Validation("interest rate cannot be negative")
	}
	if termMonths <= 0 {
		return nil, apperror.Validation("term must be at least one month")
	}

	return &Loan{
		ID:             id,
		AccountNumber:  accountNumber,
		BorrowerName:   borrower,
		Type:           loanType,
		Principal:      principal,
		Remaining:      principal,
		InterestRate:   rate,
		TermMonths:     termMonths,
		MonthlyPayment: MonthlyPayment(principal, rate, termMonths),
		Status:         LoanStatusActive,
		StartedAt:      now,
	}, nil
}

// MonthlyPayment is the standard amortization formula
// P*r*(1+r)^n / ((1+r)^n - 1) with r = rate/1200. A non-positive rate
// falls back to straight-line P/n. termMonths must be positive.
func MonthlyPayment(principal, rate decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if !rate.IsPositive() {
		return principal.Div(n)
	}

	r := rate.Div(monthlyDivisor)
	// 1+r is positive, so PowInt32 cannot hit its 0**0 error.
	growth, _ := decimal.NewFromInt(1).Add(r).PowInt32(int32(termMonths))
	growth = growth.Round(workingScale)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

func (l *Loan) monthlyRate() decimal.Decimal {
	return l.InterestRate.Div(monthlyDivisor)
}

// IsActive returns true while the loan accepts payments.
func (l *Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// ApplyPayment splits amount into interest on the pre-payment balance and
// principal, and closes the loan once the balance falls to 0.01 or less.
func (l *Loan) ApplyPayment(amount decimal.Decimal, now time.Time) (PaymentBreakdown, error) {
	if !amount.IsPositive() {
		return PaymentBreakdown{}, apperror.ErrInvalidAmount()
	}
	if !l.IsActive() {
		return PaymentBreakdown{}, apperror.ErrLoanClosed(l.ID)
	}

	applied := decimal.Min(amount, l.Remaining)
	interest := l.Remaining.Mul(l.monthlyRate()).Round(workingScale)
	principal := applied.Sub(interest)
	if principal.IsNegative() {
		principal = decimal.Zero
	}

	l.Remaining = l.Remaining.Sub(principal)
	l.PaymentsMade++
	l.history = append(l.history, Payment{PaidAt: now, Amount: applied})

	if l.Remaining.LessThanOrEqual(payoffEpsilon) {
		l.Remaining = decimal.Zero
		l.Status = LoanStatusClosed
	}

	return PaymentBreakdown{
		Requested: amount,
		Applied:   applied,
		Interest:  interest,
		Principal: principal,
		Remaining: l.Remaining,
		Closed:    !l.IsActive(),
	}, nil
}

// TotalInterestProjection is the interest implied by the original terms.
// It does not change as payments are made.
func (l *Loan) TotalInterestProjection() decimal.Decimal {
	return l.MonthlyPayment.Mul(decimal.NewFromInt(int64(l.TermMonths))).Sub(l.Principal)
}

// RemainingPayments is TermMonths minus PaymentsMade. It goes negative
// when more payments than scheduled were made.
func (l *Loan) RemainingPayments() int {
	return l.TermMonths - l.PaymentsMade
}

// ProjectSchedule yields up to limit upcoming payments of MonthlyPayment,
// simulated on a scratch balance. limit is capped at MaxScheduleEntries and
// at RemainingPayments. A closed loan has no schedule.
func (l *Loan) ProjectSchedule(limit int) iter.Seq[ScheduleEntry] {
	n := min(limit, MaxScheduleEntries, l.RemainingPayments())
	if !l.IsActive() {
		n = 0
	}

	balance := l.Remaining
	rate := l.monthlyRate()
	payment := l.MonthlyPayment
	first := l.PaymentsMade

	return func(yield func(ScheduleEntry) bool) {
		b := balance
		for i := 1; i <= n; i++ {
			interest := b.Mul(rate).Round(workingScale)
			principal := payment.Sub(interest)
			b = b.Sub(principal)
			if !yield(ScheduleEntry{Number: first + i, Interest: interest, Principal: principal, Balance: b}) {
				return
			}
		}
	}
}

// IsOverdue approximates months as 30 days and reports whether more of
// them, fractions included, have passed since origination than payments
// made plus one.
func (l *Loan) IsOverdue(now time.Time) bool {
	if !l.IsActive() {
		return false
	}
	return now.Sub(l.StartedAt) > time.Duration(l.PaymentsMade+1)*approxMonth
}

// Close forces the loan to the closed state. Calling it again is a no-op.
func (l *Loan) Close() {
	l.Remaining = decimal.Zero
	l.Status = LoanStatusClosed
}

// History returns a copy of the recorded payments, oldest first.
func (l *Loan) History() []Payment {
	out := make([]Payment, len(l.history))
	copy(out, l.history)
	return out
}

// LoanSnapshot is a read-only copy of a loan with its derived figures.
type LoanSnapshot struct {
	ID                string
	AccountNumber     string
	BorrowerName      string
	Type              LoanType
	Principal         decimal.Decimal
	Remaining         decimal.Decimal
	InterestRate      decimal.Decimal
	TermMonths        int
	MonthlyPayment    decimal.Decimal
	PaymentsMade      int
	RemainingPayments int
	TotalInterest     decimal.Decimal
	Status            LoanStatus
	Overdue           bool
	StartedAt         time.Time
}

// Snapshot copies the loan state, evaluating the overdue flag at now.
func (l *Loan) Snapshot(now time.Time) LoanSnapshot {
	return LoanSnapshot{
		ID:                l.ID,
		AccountNumber:     l.AccountNumber,
		BorrowerName:      l.BorrowerName,
		Type:              l.Type,
		Principal:         l.Principal,
		Remaining:         l.Remaining,
		InterestRate:      l.InterestRate,
		TermMonths:        l.TermMonths,
		MonthlyPayment:    l.MonthlyPayment,
		PaymentsMade:      l.PaymentsMade,
		RemainingPayments: l.RemainingPayments(),
		TotalInterest:     l.TotalInterestProjection(),
		Status:            l.Status,
		Overdue:           l.IsOverdue(now),
		StartedAt:         l.StartedAt,
	}
}
