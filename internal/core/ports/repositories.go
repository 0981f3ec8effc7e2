package ports

import (
	"context"

	"bank-ledger/internal/core/domain"
)

// AuditRepository persists the audit trail.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
