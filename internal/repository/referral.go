package repository

import (
	"context"
	"fmt"

	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/models"
)

// ReferralRepository defines the interface for referral reward records
type ReferralRepository interface {
	Create(ctx context.Context, entry *models.ReferralEntry) error
	ListByReferrer(ctx context.Context, referrerKey string) ([]models.ReferralEntry, error)
}

type referralRepository struct {
	db db.DBTX
}

// NewReferralRepository creates a new ReferralRepository
func NewReferralRepository(database db.DBTX) ReferralRepository {
	return &referralRepository{db: database}
}

// Create records a paid-out referral. The unique referred_key turns a second
// payout for the same referred account into models.ErrAlreadyRewarded.
func (r *referralRepository) Create(ctx context.Context, entry *models.ReferralEntry) error {
	query := `
		INSERT INTO referrals (
			id, referrer_key, referred_key, referred_email, referred_name, reward_seconds, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.ReferrerKey,
		entry.ReferredKey,
		entry.ReferredEmail,
		entry.ReferredName,
		entry.RewardSeconds,
		entry.Date,
	)
	if err != nil {
		if _, dup := isUniqueViolation(err); dup {
			return models.ErrAlreadyRewarded
		}
		return fmt.Errorf("failed to create referral: %w", err)
	}

	return nil
}

// ListByReferrer returns the rewards an account earned, oldest first
func (r *referralRepository) ListByReferrer(ctx context.Context, referrerKey string) ([]models.ReferralEntry, error) {
	query := `
		SELECT id, referrer_key, referred_key, referred_email, referred_name, reward_seconds, created_at
		FROM referrals
		WHERE referrer_key = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, referrerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	defer rows.Close() //nolint:errcheck // rows.Err checked below

	entries := []models.ReferralEntry{}
	for rows.Next() {
		var e models.ReferralEntry
		if err := rows.Scan(
			&e.ID,
			&e.ReferrerKey,
			&e.ReferredKey,
			&e.ReferredEmail,
			&e.ReferredName,
			&e.RewardSeconds,
			&e.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate referrals: %w", err)
	}

	return entries, nil
}
