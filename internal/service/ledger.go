package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/interview-ledger/internal/config"
	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/repository"
	"github.com/google/uuid"
)

// LedgerService is the single owner of account balances. Every mutation runs
// in one transaction that locks the account row before touching history.
type LedgerService struct {
	db     *db.DB
	cfg    config.LedgerConfig
	logger *slog.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(database *db.DB, cfg config.LedgerConfig, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		db:     database,
		cfg:    cfg,
		logger: logger,
	}
}

// CreateAccount opens a ledger with the free-trial grant and its welcome entry
func (s *LedgerService) CreateAccount(ctx context.Context, key, email, displayName string, device models.DeviceInfo) (*models.Account, error) {
	var account *models.Account

	err := s.db.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx db.DBTX) error {
		created, err := s.performCreateAccount(ctx,
			repository.NewAccountRepository(tx),
			repository.NewPaymentHistoryRepository(tx),
			key, email, displayName, device,
		)
		if err != nil {
			return err
		}
		account = created
		return nil
	})
	if err != nil {
		return nil, wrapError(err, "failed to create account")
	}

	s.logger.Info("account created",
		slog.String("record_key", key),
		slog.Int64("remaining_seconds", account.RemainingSeconds),
	)

	return account, nil
}

func (s *LedgerService) performCreateAccount(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	historyRepo repository.PaymentHistoryRepository,
	key, email, displayName string,
	device models.DeviceInfo,
) (*models.Account, error) {
	now := time.Now().UTC()

	account := &models.Account{
		RecordKey:         key,
		Email:             email,
		DisplayName:       displayName,
		RemainingSeconds:  s.cfg.FreeTrialSeconds,
		DeviceFingerprint: device.Fingerprint,
		IPAddress:         device.IPAddress,
		CreatedAt:         now,
		PaymentHistory:    []models.PaymentEntry{},
		Referrals:         []models.ReferralEntry{},
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return nil, &ServiceError{
				Code:    ErrCodeAccountExists,
				Message: "an account already exists for this email",
			}
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	if s.cfg.FreeTrialSeconds > 0 {
		welcome := models.PaymentEntry{
			ID:               uuid.New(),
			RecordKey:        key,
			Date:             now,
			PackageLabel:     models.WelcomeBonusLabel,
			PaymentReference: models.WelcomeReferencePrefix + key,
			Seconds:          s.cfg.FreeTrialSeconds,
		}
		if err := historyRepo.Append(ctx, &welcome); err != nil {
			return nil, fmt.Errorf("failed to record welcome bonus: %w", err)
		}
		account.PaymentHistory = append(account.PaymentHistory, welcome)
	}

	return account, nil
}

// CreditTime adds seconds to an account and appends the matching history entry
// atomically. A payment reference already in history is rejected with
// ErrCodeDuplicatePayment and leaves the balance untouched.
func (s *LedgerService) CreditTime(ctx context.Context, key string, credit models.Credit) (*models.CreditResult, error) {
	if err := ValidateCredit(credit); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	var result *models.CreditResult

	err := withRetry(ctx, s.cfg.MaxRetries, s.cfg.RetryBase, func(ctx context.Context) error {
		return s.db.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx db.DBTX) error {
			applied, err := s.performCredit(ctx,
				repository.NewAccountRepository(tx),
				repository.NewPaymentHistoryRepository(tx),
				key, credit,
			)
			if err != nil {
				return err
			}
			result = applied
			return nil
		})
	})
	if err != nil {
		return nil, wrapError(err, "failed to credit account")
	}

	s.logger.Info("account credited",
		slog.String("record_key", key),
		slog.String("payment_reference", credit.PaymentReference),
		slog.Int64("seconds", credit.Seconds),
		slog.Int64("remaining_seconds", result.NewRemaining),
		slog.Bool("first_purchase", result.WasFirstPurchase),
	)

	return result, nil
}

func (s *LedgerService) performCredit(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	historyRepo repository.PaymentHistoryRepository,
	key string,
	credit models.Credit,
) (*models.CreditResult, error) {
	account, err := accountRepo.FindByKeyForUpdate(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	if credit.PaymentReference != "" {
		seen, err := historyRepo.ExistsByReference(ctx, credit.PaymentReference)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment reference: %w", err)
		}
		if seen {
			return nil, duplicatePaymentError()
		}
	}

	entry := &models.PaymentEntry{
		ID:               uuid.New(),
		RecordKey:        key,
		Date:             time.Now().UTC(),
		PackageLabel:     credit.PackageLabel,
		PaymentReference: credit.PaymentReference,
		Plan:             credit.Plan,
		Amount:           credit.Amount,
		Seconds:          credit.Seconds,
	}
	if err := historyRepo.Append(ctx, entry); err != nil {
		if errors.Is(err, models.ErrDuplicatePaymentReference) {
			return nil, duplicatePaymentError()
		}
		return nil, fmt.Errorf("failed to append history: %w", err)
	}

	var purchasedDelta int64
	if entry.IsPaid() {
		purchasedDelta = credit.Seconds
	}

	result, err := accountRepo.AddSeconds(ctx, key, credit.Seconds, purchasedDelta)
	if err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	result.WasFirstPurchase = account.TotalPurchasedSeconds == 0 && entry.IsPaid()
	return result, nil
}

// GetBalance returns the account with its full payment history and referrals
func (s *LedgerService) GetBalance(ctx context.Context, key string) (*models.Account, error) {
	var account *models.Account

	err := s.db.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(ctx context.Context, tx db.DBTX) error {
		loaded, err := s.performGetBalance(ctx,
			repository.NewAccountRepository(tx),
			repository.NewPaymentHistoryRepository(tx),
			repository.NewReferralRepository(tx),
			key,
		)
		if err != nil {
			return err
		}
		account = loaded
		return nil
	})
	if err != nil {
		return nil, wrapError(err, "failed to load account")
	}

	return account, nil
}

func (s *LedgerService) performGetBalance(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	historyRepo repository.PaymentHistoryRepository,
	referralRepo repository.ReferralRepository,
	key string,
) (*models.Account, error) {
	account, err := accountRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	history, err := historyRepo.ListByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}

	referrals, err := referralRepo.ListByReferrer(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load referrals: %w", err)
	}

	account.PaymentHistory = history
	account.Referrals = referrals
	if account.PaymentHistory == nil {
		account.PaymentHistory = []models.PaymentEntry{}
	}
	if account.Referrals == nil {
		account.Referrals = []models.ReferralEntry{}
	}

	return account, nil
}

// wrapError passes ServiceErrors through and classifies everything else
func wrapError(err error, message string) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	if repository.IsWriteConflict(err) {
		return &ServiceError{
			Code:    ErrCodeWriteConflict,
			Message: "concurrent update, please retry",
			Err:     err,
		}
	}

	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}

func duplicatePaymentError() *ServiceError {
	return &ServiceError{
		Code:    ErrCodeDuplicatePayment,
		Message: "payment reference already applied",
	}
}
