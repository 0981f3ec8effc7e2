package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code, so callers
// can write errors.Is(err, apperror.ErrLoanClosed()).
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Code extracts the error code from err, or "" if err is not an AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Ledger (LDG) ----

// Validation reports malformed input: account number length, name charset,
// negative amounts or terms.
func Validation(message string) *AppError {
	return New("LDG_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("LDG_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrDuplicateAccount(number string) *AppError {
	return New("LDG_003", fmt.Sprintf("Account %s already exists", number), http.StatusConflict)
}

func ErrAccountNotFound(number string) *AppError {
	return New("LDG_004", fmt.Sprintf("Account %s not found", number), http.StatusNotFound)
}

func ErrLoanNotFound(loanID string) *AppError {
	return New("LDG_005", fmt.Sprintf("Loan %s not found", loanID), http.StatusNotFound)
}

func ErrLoanClosed(loanID string) *AppError {
	return New("LDG_006", fmt.Sprintf("Loan %s is closed", loanID), http.StatusConflict)
}

func ErrInsufficientFunds() *AppError {
	return New("LDG_007", "Insufficient funds", http.StatusPaymentRequired)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Idempotency (IDEM) ----

func ErrRequestInProgress() *AppError {
	return New("IDEM_001", "A request with this Idempotency-Key is still being processed", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrPayloadTooLarge() *AppError {
	return New("SYS_002", "Request body too large", http.StatusRequestEntityTooLarge)
}
