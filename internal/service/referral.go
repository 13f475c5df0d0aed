package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/benx421/interview-ledger/internal/config"
	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/identity"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/repository"
	"github.com/google/uuid"
)

const (
	referralSuffixLength    = 4
	referralPrefixMaxLength = 12
	referralCodeAttempts    = 5
	referralCodeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ReferralService issues referral codes, links referred signups to their
// referrer and pays the referrer once per referred account.
type ReferralService struct {
	db         *db.DB
	cfg        config.LedgerConfig
	logger     *slog.Logger
	codeSuffix func() (string, error)
}

// NewReferralService creates a new ReferralService
func NewReferralService(database *db.DB, cfg config.LedgerConfig, logger *slog.Logger) *ReferralService {
	return &ReferralService{
		db:         database,
		cfg:        cfg,
		logger:     logger,
		codeSuffix: randomSuffix,
	}
}

// GetOrCreateReferralCode returns the account's referral code, generating and
// storing one on first use. Once stored a code never changes.
func (s *ReferralService) GetOrCreateReferralCode(ctx context.Context, key string) (string, error) {
	code, err := s.performGetOrCreateCode(ctx, repository.NewAccountRepository(s.db), key)
	if err != nil {
		return "", wrapError(err, "failed to issue referral code")
	}
	return code, nil
}

func (s *ReferralService) performGetOrCreateCode(ctx context.Context, accountRepo repository.AccountRepository, key string) (string, error) {
	account, err := accountRepo.FindByKey(ctx, key)
	if err != nil {
		return "", accountLookupError(err)
	}
	if account.ReferralCode != nil && *account.ReferralCode != "" {
		return *account.ReferralCode, nil
	}

	prefix := referralPrefix(account.Email)

	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		suffix, err := s.codeSuffix()
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		code := prefix + suffix

		stored, err := accountRepo.SetReferralCode(ctx, key, code)
		if errors.Is(err, models.ErrReferralCodeTaken) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to store referral code: %w", err)
		}
		if stored {
			s.logger.Info("referral code issued",
				slog.String("record_key", key),
				slog.String("referral_code", code),
			)
			return code, nil
		}

		// A concurrent request stored a code first.
		account, err = accountRepo.FindByKey(ctx, key)
		if err != nil {
			return "", accountLookupError(err)
		}
		if account.ReferralCode != nil && *account.ReferralCode != "" {
			return *account.ReferralCode, nil
		}
	}

	return "", &ServiceError{
		Code:    ErrCodeReferralCodeUnavailable,
		Message: "could not allocate a unique referral code",
	}
}

// AttributeSignup records who referred a new account. codeOrKey may be a
// referral code or the referrer's record key. Unknown referrers and
// self-referrals are ignored, and an existing attribution is never replaced.
func (s *ReferralService) AttributeSignup(ctx context.Context, newAccountKey, codeOrKey string) (bool, error) {
	attributed, err := s.performAttribute(ctx, repository.NewAccountRepository(s.db), newAccountKey, codeOrKey)
	if err != nil {
		return false, wrapError(err, "failed to attribute referral")
	}
	return attributed, nil
}

func (s *ReferralService) performAttribute(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	newAccountKey string,
	codeOrKey string,
) (bool, error) {
	codeOrKey = strings.TrimSpace(codeOrKey)
	if codeOrKey == "" {
		return false, nil
	}

	referrer, err := s.resolveReferrer(ctx, accountRepo, codeOrKey)
	if err != nil {
		return false, err
	}
	if referrer == nil {
		s.logger.Info("referral code not recognised",
			slog.String("record_key", newAccountKey),
			slog.String("referral_code", codeOrKey),
		)
		return false, nil
	}

	if referrer.RecordKey == newAccountKey {
		return false, nil
	}

	attributed, err := accountRepo.SetReferredBy(ctx, newAccountKey, referrer.RecordKey)
	if err != nil {
		return false, fmt.Errorf("failed to set referrer: %w", err)
	}

	if attributed {
		s.logger.Info("signup attributed to referrer",
			slog.String("record_key", newAccountKey),
			slog.String("referrer_key", referrer.RecordKey),
		)
	}

	return attributed, nil
}

// resolveReferrer looks codeOrKey up as a referral code first, then as a record key.
// A nil account means no referrer matched.
func (s *ReferralService) resolveReferrer(ctx context.Context, accountRepo repository.AccountRepository, codeOrKey string) (*models.Account, error) {
	referrer, err := accountRepo.FindByReferralCode(ctx, strings.ToUpper(codeOrKey))
	if err == nil {
		return referrer, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up referral code: %w", err)
	}

	referrer, err = accountRepo.FindByKey(ctx, codeOrKey)
	if err == nil {
		return referrer, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up referrer: %w", err)
	}

	return nil, nil
}

// RewardIfFirstPurchase credits the referrer of referredKey when a credit was
// the referred account's first paid purchase. The reward is paid at most once
// per referred account; a repeated call reports false. performReward reports
// a repeat as models.ErrAlreadyRewarded so the transaction is rolled back.
func (s *ReferralService) RewardIfFirstPurchase(
	ctx context.Context,
	referredKey string,
	wasFirstPurchase bool,
	referredEmail string,
	referredName string,
) (bool, error) {
	if !wasFirstPurchase {
		return false, nil
	}

	var rewarded bool

	err := withRetry(ctx, s.cfg.MaxRetries, s.cfg.RetryBase, func(ctx context.Context) error {
		return s.db.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx db.DBTX) error {
			paid, err := s.performReward(ctx,
				repository.NewAccountRepository(tx),
				repository.NewPaymentHistoryRepository(tx),
				repository.NewReferralRepository(tx),
				referredKey, referredEmail, referredName,
			)
			if err != nil {
				return err
			}
			rewarded = paid
			return nil
		})
	})
	if errors.Is(err, models.ErrAlreadyRewarded) {
		return false, nil
	}
	if err != nil {
		return false, wrapError(err, "failed to reward referrer")
	}

	return rewarded, nil
}

func (s *ReferralService) performReward(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	historyRepo repository.PaymentHistoryRepository,
	referralRepo repository.ReferralRepository,
	referredKey, referredEmail, referredName string,
) (bool, error) {
	referred, err := accountRepo.FindByKey(ctx, referredKey)
	if err != nil {
		return false, accountLookupError(err)
	}
	if referred.ReferredBy == nil || *referred.ReferredBy == "" {
		return false, nil
	}
	referrerKey := *referred.ReferredBy

	if _, err := accountRepo.FindByKeyForUpdate(ctx, referrerKey); err != nil {
		return false, accountLookupError(err)
	}

	if referredEmail == "" {
		referredEmail = referred.Email
	}
	if referredName == "" {
		referredName = referred.DisplayName
	}

	now := time.Now().UTC()
	reward := s.cfg.ReferralRewardSeconds

	entry := &models.ReferralEntry{
		ID:            uuid.New(),
		Date:          now,
		ReferrerKey:   referrerKey,
		ReferredKey:   referredKey,
		ReferredEmail: referredEmail,
		ReferredName:  referredName,
		RewardSeconds: reward,
	}
	if err := referralRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, models.ErrAlreadyRewarded) {
			return false, err
		}
		return false, fmt.Errorf("failed to record referral: %w", err)
	}

	bonus := &models.PaymentEntry{
		ID:               uuid.New(),
		RecordKey:        referrerKey,
		Date:             now,
		PackageLabel:     models.ReferralBonusLabel,
		PaymentReference: models.ReferralReferencePrefix + referredKey,
		Seconds:          reward,
	}
	if err := historyRepo.Append(ctx, bonus); err != nil {
		if errors.Is(err, models.ErrDuplicatePaymentReference) {
			return false, models.ErrAlreadyRewarded
		}
		return false, fmt.Errorf("failed to record referral bonus: %w", err)
	}

	if err := accountRepo.AddReferralReward(ctx, referrerKey, reward); err != nil {
		return false, fmt.Errorf("failed to credit referrer: %w", err)
	}

	s.logger.Info("referrer rewarded",
		slog.String("referrer_key", referrerKey),
		slog.String("referred_key", referredKey),
		slog.Int64("seconds", reward),
	)

	return true, nil
}

func accountLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}
	return fmt.Errorf("failed to load account: %w", err)
}

// referralPrefix is the upper-cased alphanumeric part of the email's local part.
func referralPrefix(email string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(identity.LocalPart(email)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == referralPrefixMaxLength {
			break
		}
	}
	if b.Len() == 0 {
		return "USER"
	}
	return b.String()
}

func randomSuffix() (string, error) {
	limit := big.NewInt(int64(len(referralCodeAlphabet)))
	suffix := make([]byte, referralSuffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		suffix[i] = referralCodeAlphabet[n.Int64()]
	}
	return string(suffix), nil
}
