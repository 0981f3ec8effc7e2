package dto

import (
	"time"

	"bank-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ========== Auth DTOs ==========

// LoginRequest is the request body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// LoginResponse carries an operator bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt string `json:"expires_at"`
}

// ToLoginResponse builds the login body.
func ToLoginResponse(token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{Token: token, TokenType: "Bearer", ExpiresAt: timestamp(expiresAt)}
}

// ========== Account DTOs ==========

// CreateAccountRequest is the request body for POST /api/v1/accounts.
type CreateAccountRequest struct {
	Type           string           `json:"type" binding:"required,oneof=SAVINGS CHECKING FIXED_DEPOSIT"`
	AccountNumber  string           `json:"account_number" binding:"required,account_number"`
	HolderName     string           `json:"holder_name" binding:"required,holder_name"`
	InitialBalance *decimal.Decimal `json:"initial_balance" binding:"required"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"` // savings; defaults when omitted
	TermMonths     int              `json:"term_months" binding:"gte=0"`
}

// AmountRequest is the request body for deposits, withdrawals and loan payments.
type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// BalanceResponse is returned after a deposit or withdrawal.
type BalanceResponse struct {
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	AccountNumber  string  `json:"account_number"`
	HolderName     string  `json:"holder_name"`
	Type           string  `json:"type"`
	Balance        string  `json:"balance"`
	InterestRate   *string `json:"interest_rate,omitempty"`
	OverdraftLimit *string `json:"overdraft_limit,omitempty"`
	TermMonths     *int    `json:"term_months,omitempty"`
	OpenedAt       string  `json:"opened_at"`
}

// InspectionResponse carries the interest projection or the overdraft check.
type InspectionResponse struct {
	AccountNumber     string  `json:"account_number"`
	Type              string  `json:"type"`
	AnnualRate        *string `json:"annual_rate,omitempty"`
	TermMonths        *int    `json:"term_months,omitempty"`
	ProjectedInterest *string `json:"projected_interest,omitempty"`
	AvailableFunds    *string `json:"available_funds,omitempty"`
	Amount            *string `json:"amount,omitempty"`
	WithdrawalAllowed *bool   `json:"withdrawal_allowed,omitempty"`
}

// ========== Loan DTOs ==========

// OriginateLoanRequest is the request body for POST /api/v1/loans.
type OriginateLoanRequest struct {
	AccountNumber string           `json:"account_number" binding:"required,account_number"`
	BorrowerName  string           `json:"borrower_name" binding:"required,holder_name"`
	Principal     *decimal.Decimal `json:"principal" binding:"required"`
	InterestRate  *decimal.Decimal `json:"interest_rate,omitempty"` // defaults per loan type
	TermMonths    int              `json:"term_months" binding:"required,gt=0"`
	LoanType      string           `json:"loan_type" binding:"required,oneof=Personal Home Car Business"`
}

// LoanResponse is the public view of a loan.
type LoanResponse struct {
	LoanID            string `json:"loan_id"`
	AccountNumber     string `json:"account_number"`
	BorrowerName      string `json:"borrower_name"`
	LoanType          string `json:"loan_type"`
	Principal         string `json:"principal"`
	Remaining         string `json:"remaining"`
	InterestRate      string `json:"interest_rate"`
	TermMonths        int    `json:"term_months"`
	MonthlyPayment    string `json:"monthly_payment"`
	PaymentsMade      int    `json:"payments_made"`
	RemainingPayments int    `json:"remaining_payments"`
	TotalInterest     string `json:"total_interest"`
	Status            string `json:"status"`
	Overdue           bool   `json:"overdue"`
	StartedAt         string `json:"started_at"`
}

// PaymentResponse is the breakdown of an applied loan payment.
type PaymentResponse struct {
	LoanID    string `json:"loan_id"`
	Requested string `json:"requested"`
	Applied   string `json:"applied"`
	Interest  string `json:"interest"`
	Principal string `json:"principal"`
	Remaining string `json:"remaining"`
	Closed    bool   `json:"closed"`
}

// ScheduleEntryResponse is one projected payment.
type ScheduleEntryResponse struct {
	Number    int    `json:"number"`
	Interest  string `json:"interest"`
	Principal string `json:"principal"`
	Balance   string `json:"balance"`
}

// ScheduleResponse is the projected schedule of a loan.
type ScheduleResponse struct {
	LoanID  string                  `json:"loan_id"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

// PaymentHistoryEntry is one recorded loan payment.
type PaymentHistoryEntry struct {
	PaidAt string `json:"paid_at"`
	Amount string `json:"amount"`
}

// PaymentHistoryResponse lists the recent payments of a loan.
type PaymentHistoryResponse struct {
	LoanID   string                `json:"loan_id"`
	Payments []PaymentHistoryEntry `json:"payments"`
}

// ========== Report DTOs ==========

// SummaryResponse is the ledger-wide summary.
type SummaryResponse struct {
	TotalAccounts    int            `json:"total_accounts"`
	AccountsByType   map[string]int `json:"accounts_by_type"`
	TotalDeposits    string         `json:"total_deposits"`
	TotalOverdrawn   string         `json:"total_overdrawn"`
	ActiveLoans      int            `json:"active_loans"`
	ClosedLoans      int            `json:"closed_loans"`
	OverdueLoans     int            `json:"overdue_loans"`
	OutstandingLoans string         `json:"outstanding_loans"`
	TotalDisbursed   string         `json:"total_disbursed"`
}

// ========== Health DTOs ==========

// DependencyHealth is the probe result of one dependency.
type DependencyHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health. It is not wrapped in the
// response envelope.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
}

// Money renders an amount rounded to cents.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := Money(*d)
	return &s
}

func ratePtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToAccountResponse converts an account snapshot.
func ToAccountResponse(a domain.AccountSnapshot) AccountResponse {
	return AccountResponse{
		AccountNumber:  a.Number,
		HolderName:     a.HolderName,
		Type:           string(a.Type),
		Balance:        Money(a.Balance),
		InterestRate:   ratePtr(a.InterestRate),
		OverdraftLimit: moneyPtr(a.OverdraftLimit),
		TermMonths:     a.TermMonths,
		OpenedAt:       timestamp(a.OpenedAt),
	}
}

// ToInspectionResponse converts an account inspection.
func ToInspectionResponse(in domain.Inspection) InspectionResponse {
	return InspectionResponse{
		AccountNumber:     in.AccountNumber,
		Type:              string(in.Type),
		AnnualRate:        ratePtr(in.AnnualRate),
		TermMonths:        in.TermMonths,
		ProjectedInterest: moneyPtr(in.ProjectedInterest),
		AvailableFunds:    moneyPtr(in.AvailableFunds),
		Amount:            moneyPtr(in.Probe),
		WithdrawalAllowed: in.WithdrawalAllowed,
	}
}

// ToLoanResponse converts a loan snapshot.
func ToLoanResponse(l domain.LoanSnapshot) LoanResponse {
	return LoanResponse{
		LoanID:            l.ID,
		AccountNumber:     l.AccountNumber,
		BorrowerName:      l.BorrowerName,
		LoanType:          string(l.Type),
		Principal:         Money(l.Principal),
		Remaining:         Money(l.Remaining),
		InterestRate:      l.InterestRate.String(),
		TermMonths:        l.TermMonths,
		MonthlyPayment:    Money(l.MonthlyPayment),
		PaymentsMade:      l.PaymentsMade,
		RemainingPayments: l.RemainingPayments,
		TotalInterest:     Money(l.TotalInterest),
		Status:            string(l.Status),
		Overdue:           l.Overdue,
		StartedAt:         timestamp(l.StartedAt),
	}
}

// ToPaymentResponse converts a payment breakdown.
func ToPaymentResponse(loanID string, b domain.PaymentBreakdown) PaymentResponse {
	return PaymentResponse{
		LoanID:    loanID,
		Requested: Money(b.Requested),
		Applied:   Money(b.Applied),
		Interest:  Money(b.Interest),
		Principal: Money(b.Principal),
		Remaining: Money(b.Remaining),
		Closed:    b.Closed,
	}
}

// ToScheduleResponse converts a projected schedule.
func ToScheduleResponse(loanID string, entries []domain.ScheduleEntry) ScheduleResponse {
	out := ScheduleResponse{LoanID: loanID, Entries: make([]ScheduleEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, ScheduleEntryResponse{
			Number:    e.Number,
			Interest:  Money(e.Interest),
			Principal: Money(e.Principal),
			Balance:   Money(e.Balance),
		})
	}
	return out
}

// ToPaymentHistoryResponse converts a loan's payment history.
func ToPaymentHistoryResponse(loanID string, payments []domain.Payment) PaymentHistoryResponse {
	out := PaymentHistoryResponse{LoanID: loanID, Payments: make([]PaymentHistoryEntry, 0, len(payments))}
	for _, p := range payments {
		out.Payments = append(out.Payments, PaymentHistoryEntry{
			PaidAt: timestamp(p.PaidAt),
			Amount: Money(p.Amount),
		})
	}
	return out
}

// ToSummaryResponse converts the ledger summary.
func ToSummaryResponse(s domain.LedgerSummary) SummaryResponse {
	byType := make(map[string]int, len(s.AccountsByType))
	for t, n := range s.AccountsByType {
		byType[string(t)] = n
	}
	return SummaryResponse{
		TotalAccounts:    s.TotalAccounts,
		AccountsByType:   byType,
		TotalDeposits:    Money(s.TotalDeposits),
		TotalOverdrawn:   Money(s.TotalOverdrawn),
		ActiveLoans:      s.ActiveLoans,
		ClosedLoans:      s.ClosedLoans,
		OverdueLoans:     s.OverdueLoans,
		OutstandingLoans: Money(s.OutstandingLoans),
		TotalDisbursed:   Money(s.TotalDisbursed),
	}
}
