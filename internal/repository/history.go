package repository

import (
	"context"
	"fmt"

	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/models"
)

// PaymentHistoryRepository defines the interface for the append-only payment history
type PaymentHistoryRepository interface {
	Append(ctx context.Context, entry *models.PaymentEntry) error
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	ListByKey(ctx context.Context, key string) ([]models.PaymentEntry, error)
}

type paymentHistoryRepository struct {
	db db.DBTX
}

// NewPaymentHistoryRepository creates a new PaymentHistoryRepository
func NewPaymentHistoryRepository(database db.DBTX) PaymentHistoryRepository {
	return &paymentHistoryRepository{db: database}
}

// Append inserts a history entry. A reused non-empty payment reference yields
// models.ErrDuplicatePaymentReference.
func (r *paymentHistoryRepository) Append(ctx context.Context, entry *models.PaymentEntry) error {
	query := `
		INSERT INTO payment_history (
			id, record_key, amount, seconds, package_label, payment_reference, plan, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.RecordKey,
		entry.Amount,
		entry.Seconds,
		entry.PackageLabel,
		entry.PaymentReference,
		entry.Plan,
		entry.Date,
	)
	if err != nil {
		if _, dup := isUniqueViolation(err); dup {
			return models.ErrDuplicatePaymentReference
		}
		return fmt.Errorf("failed to append payment history: %w", err)
	}

	return nil
}

// ExistsByReference reports whether a payment reference was already recorded on any account
func (r *paymentHistoryRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payment_history WHERE payment_reference = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, reference).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to look up payment reference: %w", err)
	}
	return exists, nil
}

// ListByKey returns an account's history in insertion order
func (r *paymentHistoryRepository) ListByKey(ctx context.Context, key string) ([]models.PaymentEntry, error) {
	query := `
		SELECT id, record_key, amount, seconds, package_label, payment_reference, plan, created_at
		FROM payment_history
		WHERE record_key = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment history: %w", err)
	}
	defer rows.Close() //nolint:errcheck // rows.Err checked below

	entries := []models.PaymentEntry{}
	for rows.Next() {
		var e models.PaymentEntry
		if err := rows.Scan(
			&e.ID,
			&e.RecordKey,
			&e.Amount,
			&e.Seconds,
			&e.PackageLabel,
			&e.PaymentReference,
			&e.Plan,
			&e.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment history: %w", err)
	}

	return entries, nil
}
