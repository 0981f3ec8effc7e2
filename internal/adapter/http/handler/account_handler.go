package handler

import (
	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/adapter/http/middleware"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the deposit account endpoints.
type AccountHandler struct {
	ledger ports.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger ports.LedgerService) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	acct, err := h.ledger.CreateAccount(ports.CreateAccountRequest{
		Type:           domain.AccountType(req.Type),
		Number:         req.AccountNumber,
		HolderName:     req.HolderName,
		InitialBalance: *req.InitialBalance,
		InterestRate:   req.InterestRate,
		TermMonths:     req.TermMonths,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, acct.Number)
	response.Created(c, dto.ToAccountResponse(acct))
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts := h.ledger.ListAccounts()
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.ToAccountResponse(a))
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/accounts/:number.
func (h *AccountHandler) Get(c *gin.Context) {
	acct, err := h.ledger.FindAccount(c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAccountResponse(acct))
}

// Deposit handles POST /api/v1/accounts/:number/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	number := c.Param("number")
	balance, err := h.ledger.Deposit(number, *req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{AccountNumber: number, Balance: dto.Money(balance)})
}

// Withdraw handles POST /api/v1/accounts/:number/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	number := c.Param("number")
	balance, err := h.ledger.Withdraw(number, *req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{AccountNumber: number, Balance: dto.Money(balance)})
}

// Inspect handles GET /api/v1/accounts/:number/inspection?amount=.
// amount is the hypothetical withdrawal checked against a checking account.
func (h *AccountHandler) Inspect(c *gin.Context) {
	probe, err := decimalQuery(c, "amount")
	if err != nil {
		response.Error(c, err)
		return
	}

	in, err := h.ledger.InspectAccount(c.Param("number"), probe)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToInspectionResponse(in))
}
