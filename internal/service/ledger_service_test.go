package service

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	checkingNo = "100000000001"
	savingsNo  = "100000000002"
	depositNo  = "100000000003"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLedgerOptions() LedgerOptions {
	return LedgerOptions{
		LoanIDSeed:         1001,
		OverdraftLimit:     dec("1000"),
		DefaultSavingsRate: dec("5"),
	}
}

func newTestLedger(t *testing.T) (*LedgerServiceImpl, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return NewLedgerService(testLedgerOptions(), clock, newTestLogger()), clock
}

func openAccount(t *testing.T, l *LedgerServiceImpl, typ domain.AccountType, number, balance string) {
	t.Helper()
	_, err := l.CreateAccount(ports.CreateAccountRequest{
		Type:           typ,
		Number:         number,
		HolderName:     "Jane Doe",
		InitialBalance: dec(balance),
		TermMonths:     12,
	})
	require.NoError(t, err)
}

func originate(t *testing.T, l *LedgerServiceImpl, number, principal, rate string, term int) domain.LoanSnapshot {
	t.Helper()
	loan, err := l.OriginateLoan(ports.OriginateLoanRequest{
		AccountNumber: number,
		BorrowerName:  "Jane Doe",
		Principal:     dec(principal),
		InterestRate:  dec(rate),
		TermMonths:    term,
		Type:          domain.LoanTypePersonal,
	})
	require.NoError(t, err)
	return loan
}

// ==================== Accounts ====================

func TestLedger_CreateAccount_AppliesDefaults(t *testing.T) {
	l, clock := newTestLedger(t)

	savings, err := l.CreateAccount(ports.CreateAccountRequest{
		Type: domain.AccountTypeSavings, Number: savingsNo, HolderName: "Jane Doe", InitialBalance: dec("100"),
	})
	require.NoError(t, err)
	require.NotNil(t, savings.InterestRate)
	assert.True(t, savings.InterestRate.Equal(dec("5")))
	assert.Equal(t, clock.Now(), savings.OpenedAt)

	rate := dec("3.5")
	custom, err := l.CreateAccount(ports.CreateAccountRequest{
		Type: domain.AccountTypeSavings, Number: "100000000009", HolderName: "Jane Doe", InterestRate: &rate,
	})
	require.NoError(t, err)
	assert.True(t, custom.InterestRate.Equal(rate))

	checking, err := l.CreateAccount(ports.CreateAccountRequest{
		Type: domain.AccountTypeChecking, Number: checkingNo, HolderName: "Jane Doe",
	})
	require.NoError(t, err)
	require.NotNil(t, checking.OverdraftLimit)
	assert.True(t, checking.OverdraftLimit.Equal(dec("1000")))
}

func TestLedger_CreateAccount_DuplicateLeavesRegistryUnchanged(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "100")

	before := len(l.ListAccounts())
	_, err := l.CreateAccount(ports.CreateAccountRequest{
		Type: domain.AccountTypeChecking, Number: savingsNo, HolderName: "John Roe", InitialBalance: dec("999"),
	})
	assertAppError(t, err, "LDG_003")

	assert.Len(t, l.ListAccounts(), before)
	acct, err := l.FindAccount(savingsNo)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypeSavings, acct.Type)
	assert.True(t, acct.Balance.Equal(dec("100")))
}

func TestLedger_CreateAccount_Validation(t *testing.T) {
	l, _ := newTestLedger(t)

	tests := []struct {
		name string
		req  ports.CreateAccountRequest
	}{
		{"short number", ports.CreateAccountRequest{Type: domain.AccountTypeSavings, Number: "123", HolderName: "Jane"}},
		{"bad name", ports.CreateAccountRequest{Type: domain.AccountTypeSavings, Number: savingsNo, HolderName: "Jane_Doe"}},
		{"negative balance", ports.CreateAccountRequest{Type: domain.AccountTypeSavings, Number: savingsNo, HolderName: "Jane", InitialBalance: dec("-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.CreateAccount(tt.req)
			assertAppError(t, err, "LDG_001")
		})
	}
	assert.Empty(t, l.ListAccounts())
}

func TestLedger_FindAccount_NotFound(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.FindAccount("999999999999")
	assertAppError(t, err, "LDG_004")

	_, err = l.Deposit("999999999999", dec("1"))
	assertAppError(t, err, "LDG_004")

	_, err = l.Withdraw("999999999999", dec("1"))
	assertAppError(t, err, "LDG_004")

	_, err = l.InspectAccount("999999999999", decimal.Zero)
	assertAppError(t, err, "LDG_004")
}

func TestLedger_DepositAndWithdraw(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeChecking, checkingNo, "200")

	bal, err := l.Deposit(checkingNo, dec("50"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("250")))

	_, err = l.Deposit(checkingNo, dec("0"))
	assertAppError(t, err, "LDG_002")

	_, err = l.Withdraw(checkingNo, dec("1250.01"))
	assertAppError(t, err, "LDG_007")

	bal, err = l.Withdraw(checkingNo, dec("1250"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("-1000")))
}

func TestLedger_Withdraw_OverdraftLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	l := NewLedgerService(testLedgerOptions(), newFakeClock(), zerolog.New(&buf))
	openAccount(t, l, domain.AccountTypeChecking, checkingNo, "100")

	_, err := l.Withdraw(checkingNo, dec("300"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "account overdrawn")
}

func TestLedger_InspectAccount(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeFixedDeposit, depositNo, "1000")

	in, err := l.InspectAccount(depositNo, decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, in.ProjectedInterest)
	assert.True(t, in.ProjectedInterest.Equal(dec("70")))
}

func TestLedger_ListAccounts_InsertionOrder(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, "300000000000", "1")
	openAccount(t, l, domain.AccountTypeSavings, "100000000000", "1")
	openAccount(t, l, domain.AccountTypeSavings, "200000000000", "1")

	var numbers []string
	for _, a := range l.ListAccounts() {
		numbers = append(numbers, a.Number)
	}
	assert.Equal(t, []string{"300000000000", "100000000000", "200000000000"}, numbers)
}

// ==================== Loans ====================

func TestLedger_OriginateLoan_DisbursesAndAssignsIDs(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeChecking, checkingNo, "100")

	first := originate(t, l, checkingNo, "5000", "12", 24)
	second := originate(t, l, checkingNo, "1000", "0", 10)

	assert.Equal(t, "LOAN1001", first.ID)
	assert.Equal(t, "LOAN1002", second.ID)
	assert.InDelta(t, 235.37, first.MonthlyPayment.InexactFloat64(), 0.005)
	assert.True(t, second.MonthlyPayment.Equal(dec("100")))

	acct, err := l.FindAccount(checkingNo)
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(dec("6100")))
}

func TestLedger_OriginateLoan_FailuresDoNotConsumeIDs(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")

	_, err := l.OriginateLoan(ports.OriginateLoanRequest{AccountNumber: "999999999999", Principal: dec("100"), TermMonths: 12, Type: domain.LoanTypeCar})
	assertAppError(t, err, "LDG_004")

	_, err = l.OriginateLoan(ports.OriginateLoanRequest{AccountNumber: savingsNo, Principal: dec("0"), TermMonths: 12, Type: domain.LoanTypeCar})
	assertAppError(t, err, "LDG_001")

	_, err = l.OriginateLoan(ports.OriginateLoanRequest{AccountNumber: savingsNo, Principal: dec("100"), TermMonths: 0, Type: domain.LoanTypeCar})
	assertAppError(t, err, "LDG_001")

	acct, err := l.FindAccount(savingsNo)
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())
	assert.Empty(t, l.ListLoans())

	loan := originate(t, l, savingsNo, "100", "0", 1)
	assert.Equal(t, "LOAN1001", loan.ID)
}

func TestLedger_IndependentLoanIDSequences(t *testing.T) {
	a, _ := newTestLedger(t)
	b, _ := newTestLedger(t)
	openAccount(t, a, domain.AccountTypeSavings, savingsNo, "0")
	openAccount(t, b, domain.AccountTypeSavings, savingsNo, "0")

	assert.Equal(t, "LOAN1001", originate(t, a, savingsNo, "100", "0", 1).ID)
	assert.Equal(t, "LOAN1002", originate(t, a, savingsNo, "100", "0", 1).ID)
	assert.Equal(t, "LOAN1001", originate(t, b, savingsNo, "100", "0", 1).ID)
}

func TestLedger_ApplyLoanPayment_ScheduledPayment(t *testing.T) {
	l, clock := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")
	loan := originate(t, l, savingsNo, "5000", "12", 24)

	clock.Advance(30 * 24 * time.Hour)
	b, err := l.ApplyLoanPayment(loan.ID, loan.MonthlyPayment)
	require.NoError(t, err)
	assert.True(t, b.Interest.Equal(dec("50")))
	assert.InDelta(t, 4814.63, b.Remaining.InexactFloat64(), 0.01)

	got, err := l.FindLoan(loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PaymentsMade)
	assert.Equal(t, 23, got.RemainingPayments)

	acct, err := l.FindAccount(savingsNo)
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(dec("5000").Sub(loan.MonthlyPayment)))

	payments, err := l.LoanPayments(loan.ID, 10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, clock.Now(), payments[0].PaidAt)
}

func TestLedger_ApplyLoanPayment_Rejections(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")
	loan := originate(t, l, savingsNo, "1000", "12", 12)

	_, err := l.ApplyLoanPayment("LOAN9999", dec("10"))
	assertAppError(t, err, "LDG_005")

	_, err = l.ApplyLoanPayment(loan.ID, dec("0"))
	assertAppError(t, err, "LDG_002")

	_, err = l.ApplyLoanPayment(loan.ID, dec("1000.01"))
	assertAppError(t, err, "LDG_007")

	got, err := l.FindLoan(loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.PaymentsMade)
	acct, err := l.FindAccount(savingsNo)
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(dec("1000")))

	_, err = l.CloseLoan(loan.ID)
	require.NoError(t, err)
	_, err = l.ApplyLoanPayment(loan.ID, dec("10"))
	assertAppError(t, err, "LDG_006")
}

func TestLedger_ApplyLoanPayment_IgnoresOverdraftHeadroom(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeChecking, checkingNo, "0")
	loan := originate(t, l, checkingNo, "100", "0", 10)

	// checking could withdraw 1100, but payments only see the raw balance
	_, err := l.ApplyLoanPayment(loan.ID, dec("100.01"))
	assertAppError(t, err, "LDG_007")
}

func TestLedger_ApplyLoanPayment_OverpaymentWithdrawsFullAmount(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "500")
	loan := originate(t, l, savingsNo, "300", "0", 3)

	b, err := l.ApplyLoanPayment(loan.ID, dec("400"))
	require.NoError(t, err)
	assert.True(t, b.Applied.Equal(dec("300")))
	assert.True(t, b.Closed)

	acct, err := l.FindAccount(savingsNo)
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(dec("400")))

	got, err := l.FindLoan(loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusClosed, got.Status)
	assert.True(t, got.Remaining.IsZero())
}

func TestLedger_CloseLoan_Idempotent(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")
	loan := originate(t, l, savingsNo, "1000", "12", 12)

	first, err := l.CloseLoan(loan.ID)
	require.NoError(t, err)
	second, err := l.CloseLoan(loan.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.LoanStatusClosed, second.Status)

	_, err = l.CloseLoan("LOAN9999")
	assertAppError(t, err, "LDG_005")
}

func TestLedger_LoanSchedule(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")
	loan := originate(t, l, savingsNo, "5000", "12", 24)

	schedule, err := l.LoanSchedule(loan.ID, 0)
	require.NoError(t, err)
	assert.Len(t, schedule, domain.MaxScheduleEntries)

	schedule, err = l.LoanSchedule(loan.ID, 2)
	require.NoError(t, err)
	assert.Len(t, schedule, 2)

	got, err := l.FindLoan(loan.ID)
	require.NoError(t, err)
	assert.True(t, got.Remaining.Equal(dec("5000")))

	_, err = l.CloseLoan(loan.ID)
	require.NoError(t, err)
	schedule, err = l.LoanSchedule(loan.ID, 6)
	require.NoError(t, err)
	assert.NotNil(t, schedule)
	assert.Empty(t, schedule)

	_, err = l.LoanSchedule("LOAN9999", 6)
	assertAppError(t, err, "LDG_005")
}

func TestLedger_LoanPayments_ReturnsMostRecent(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")
	loan := originate(t, l, savingsNo, "10000", "0", 100)

	for i := 1; i <= 12; i++ {
		_, err := l.ApplyLoanPayment(loan.ID, decimal.NewFromInt(int64(i)))
		require.NoError(t, err)
	}

	recent, err := l.LoanPayments(loan.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.True(t, recent[0].Amount.Equal(dec("3")))
	assert.True(t, recent[9].Amount.Equal(dec("12")))

	all, err := l.LoanPayments(loan.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	_, err = l.LoanPayments("LOAN9999", 10)
	assertAppError(t, err, "LDG_005")
}

func TestLedger_FindLoan_Overdue(t *testing.T) {
	l, clock := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")
	loan := originate(t, l, savingsNo, "1000", "12", 12)
	assert.False(t, loan.Overdue)

	clock.Advance(61 * 24 * time.Hour)
	got, err := l.FindLoan(loan.ID)
	require.NoError(t, err)
	assert.True(t, got.Overdue)

	_, err = l.FindLoan("LOAN9999")
	assertAppError(t, err, "LDG_005")
}

func TestLedger_ConcurrentDeposits(t *testing.T) {
	l, _ := newTestLedger(t)
	openAccount(t, l, domain.AccountTypeSavings, savingsNo, "0")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Deposit(savingsNo, dec("2"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	acct, err := l.FindAccount(savingsNo)
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(dec("100")))
}
