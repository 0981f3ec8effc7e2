package postgres

import (
	"context"
	"errors"
	"fmt"

	"bank-ledger/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed audit repository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create appends an entry to the audit trail.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `INSERT INTO audit_logs (id, operator, action, resource_type, resource_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var details *string
	if log.Details != "" {
		details = &log.Details
	}

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.Operator, string(log.Action), log.ResourceType,
		log.ResourceID, details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// Name identifies the audit store on /health.
func (r *AuditRepo) Name() string {
	return "postgresql"
}

// Ping fails when the database is unreachable or the audit table is gone.
func (r *AuditRepo) Ping(ctx context.Context) error {
	var present bool
	if err := r.pool.QueryRow(ctx, `SELECT to_regclass('audit_logs') IS NOT NULL`).Scan(&present); err != nil {
		return fmt.Errorf("audit store unreachable: %w", err)
	}
	if !present {
		return errors.New("audit_logs table missing")
	}
	return nil
}
