// Package repository provides data access layer implementations for the time ledger.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByKey(ctx context.Context, key string) (*models.Account, error)
	FindByKeyForUpdate(ctx context.Context, key string) (*models.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*models.Account, error)
	ExistsByDeviceFingerprint(ctx context.Context, fingerprint string) (bool, error)
	ExistsByIPAddress(ctx context.Context, ipAddress string) (bool, error)
	AddSeconds(ctx context.Context, key string, remainingDelta, purchasedDelta int64) (*models.CreditResult, error)
	AddReferralReward(ctx context.Context, key string, rewardSeconds int64) error
	SetReferralCode(ctx context.Context, key, code string) (bool, error)
	SetReferredBy(ctx context.Context, key, referrerKey string) (bool, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.DBTX
}

// NewAccountRepository creates a new AccountRepository bound to a pool or a transaction
func NewAccountRepository(database db.DBTX) AccountRepository {
	return &accountRepository{db: database}
}

const accountColumns = `
		record_key, email, display_name, remaining_seconds, total_purchased_seconds,
		referral_code, referred_by, total_referrals, device_fingerprint, ip_address,
		created_at, last_updated`

func scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.RecordKey,
		&account.Email,
		&account.DisplayName,
		&account.RemainingSeconds,
		&account.TotalPurchasedSeconds,
		&account.ReferralCode,
		&account.ReferredBy,
		&account.TotalReferrals,
		&account.DeviceFingerprint,
		&account.IPAddress,
		&account.CreatedAt,
		&account.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create inserts a new account. It returns models.ErrAlreadyExists when the key or email is taken.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (
			record_key, email, display_name, remaining_seconds, total_purchased_seconds,
			referred_by, device_fingerprint, ip_address, created_at, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.RecordKey,
		account.Email,
		account.DisplayName,
		account.RemainingSeconds,
		account.TotalPurchasedSeconds,
		account.ReferredBy,
		account.DeviceFingerprint,
		account.IPAddress,
		account.CreatedAt,
	)
	if err != nil {
		if _, dup := isUniqueViolation(err); dup {
			return models.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	account.LastUpdated = account.CreatedAt
	return nil
}

// FindByKey retrieves an account by its record key
func (r *accountRepository) FindByKey(ctx context.Context, key string) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE record_key = $1
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by key: %w", err)
	}

	return account, nil
}

// FindByKeyForUpdate retrieves an account and locks its row until the surrounding transaction ends
func (r *accountRepository) FindByKeyForUpdate(ctx context.Context, key string) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE record_key = $1
		FOR UPDATE
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	return account, nil
}

// FindByReferralCode retrieves the account owning a referral code
func (r *accountRepository) FindByReferralCode(ctx context.Context, code string) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE referral_code = $1
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by referral code: %w", err)
	}

	return account, nil
}

// ExistsByDeviceFingerprint reports whether any account was created from the device
func (r *accountRepository) ExistsByDeviceFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE device_fingerprint = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, fingerprint).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to look up device fingerprint: %w", err)
	}
	return exists, nil
}

// ExistsByIPAddress reports whether any account was created from the network address
func (r *accountRepository) ExistsByIPAddress(ctx context.Context, ipAddress string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE ip_address = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ipAddress).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to look up ip address: %w", err)
	}
	return exists, nil
}

// AddSeconds atomically increments the balance counters and returns their new values
func (r *accountRepository) AddSeconds(ctx context.Context, key string, remainingDelta, purchasedDelta int64) (*models.CreditResult, error) {
	query := `
		UPDATE accounts
		SET remaining_seconds = remaining_seconds + $2,
		    total_purchased_seconds = total_purchased_seconds + $3,
		    last_updated = NOW()
		WHERE record_key = $1
		RETURNING remaining_seconds, total_purchased_seconds
	`

	var result models.CreditResult
	err := r.db.QueryRowContext(ctx, query, key, remainingDelta, purchasedDelta).
		Scan(&result.NewRemaining, &result.NewTotalPurchased)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add seconds: %w", err)
	}

	return &result, nil
}

// AddReferralReward atomically credits a referrer and bumps its referral counter
func (r *accountRepository) AddReferralReward(ctx context.Context, key string, rewardSeconds int64) error {
	query := `
		UPDATE accounts
		SET remaining_seconds = remaining_seconds + $2,
		    total_referrals = total_referrals + 1,
		    last_updated = NOW()
		WHERE record_key = $1
	`

	result, err := r.db.ExecContext(ctx, query, key, rewardSeconds)
	if err != nil {
		return fmt.Errorf("failed to add referral reward: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// SetReferralCode stores code only if the account has none yet.
// It returns false when another caller already stored a code.
func (r *accountRepository) SetReferralCode(ctx context.Context, key, code string) (bool, error) {
	query := `
		UPDATE accounts
		SET referral_code = $2,
		    last_updated = NOW()
		WHERE record_key = $1 AND referral_code IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, key, code)
	if err != nil {
		if _, dup := isUniqueViolation(err); dup {
			return false, models.ErrReferralCodeTaken
		}
		return false, fmt.Errorf("failed to set referral code: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// SetReferredBy records the referrer once. Self-referral and overwrites are no-ops.
func (r *accountRepository) SetReferredBy(ctx context.Context, key, referrerKey string) (bool, error) {
	query := `
		UPDATE accounts
		SET referred_by = $2,
		    last_updated = NOW()
		WHERE record_key = $1 AND referred_by IS NULL AND record_key <> $2
	`

	result, err := r.db.ExecContext(ctx, query, key, referrerKey)
	if err != nil {
		return false, fmt.Errorf("failed to set referred_by: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}
