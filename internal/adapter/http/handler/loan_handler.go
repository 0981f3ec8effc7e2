package handler

import (
	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/adapter/http/middleware"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultPaymentHistory = 10

// LoanHandler serves the loan endpoints.
type LoanHandler struct {
	ledger ports.LedgerService
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(ledger ports.LedgerService) *LoanHandler {
	return &LoanHandler{ledger: ledger}
}

// Originate handles POST /api/v1/loans. An omitted rate falls back to the
// loan type's default.
func (h *LoanHandler) Originate(c *gin.Context) {
	var req dto.OriginateLoanRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	loanType := domain.LoanType(req.LoanType)
	rate := domain.DefaultRate(loanType)
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}

	loan, err := h.ledger.OriginateLoan(ports.OriginateLoanRequest{
		AccountNumber: req.AccountNumber,
		BorrowerName:  req.BorrowerName,
		Principal:     *req.Principal,
		InterestRate:  rate,
		TermMonths:    req.TermMonths,
		Type:          loanType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, loan.ID)
	response.Created(c, dto.ToLoanResponse(loan))
}

// List handles GET /api/v1/loans.
func (h *LoanHandler) List(c *gin.Context) {
	loans := h.ledger.ListLoans()
	out := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, dto.ToLoanResponse(l))
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/loans/:id.
func (h *LoanHandler) Get(c *gin.Context) {
	loan, err := h.ledger.FindLoan(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToLoanResponse(loan))
}

// Pay handles POST /api/v1/loans/:id/payments.
func (h *LoanHandler) Pay(c *gin.Context) {
	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	loanID := c.Param("id")
	breakdown, err := h.ledger.ApplyLoanPayment(loanID, *req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToPaymentResponse(loanID, breakdown))
}

// Payments handles GET /api/v1/loans/:id/payments?limit=.
// limit=0 returns the full history.
func (h *LoanHandler) Payments(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultPaymentHistory)
	if err != nil {
		response.Error(c, err)
		return
	}

	loanID := c.Param("id")
	payments, err := h.ledger.LoanPayments(loanID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToPaymentHistoryResponse(loanID, payments))
}

// Schedule handles GET /api/v1/loans/:id/schedule?entries=.
func (h *LoanHandler) Schedule(c *gin.Context) {
	entries, err := intQuery(c, "entries", domain.MaxScheduleEntries)
	if err != nil {
		response.Error(c, err)
		return
	}

	loanID := c.Param("id")
	schedule, err := h.ledger.LoanSchedule(loanID, entries)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToScheduleResponse(loanID, schedule))
}

// Close handles POST /api/v1/loans/:id/close.
func (h *LoanHandler) Close(c *gin.Context) {
	loan, err := h.ledger.CloseLoan(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToLoanResponse(loan))
}
