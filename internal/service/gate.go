package service

import (
	"context"
	"log/slog"

	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/repository"
)

// GateService limits account creation to one account per device and per network
type GateService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewGateService creates a new GateService
func NewGateService(database *db.DB, logger *slog.Logger) *GateService {
	return &GateService{
		db:     database,
		logger: logger,
	}
}

// CheckEligibility reports whether a new account may be created from the given
// device and network. Lookup failures fail open.
func (s *GateService) CheckEligibility(ctx context.Context, deviceFingerprint, ipAddress string) *models.Eligibility {
	return s.performCheck(ctx, repository.NewAccountRepository(s.db), deviceFingerprint, ipAddress)
}

func (s *GateService) performCheck(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	deviceFingerprint string,
	ipAddress string,
) *models.Eligibility {
	if deviceFingerprint != "" {
		used, err := accountRepo.ExistsByDeviceFingerprint(ctx, deviceFingerprint)
		if err != nil {
			return s.failOpen(err)
		}
		if used {
			return &models.Eligibility{Allowed: false, Reason: models.ReasonDeviceUsed}
		}
	}

	if ipAddress != "" {
		used, err := accountRepo.ExistsByIPAddress(ctx, ipAddress)
		if err != nil {
			return s.failOpen(err)
		}
		if used {
			return &models.Eligibility{Allowed: false, Reason: models.ReasonNetworkUsed}
		}
	}

	return &models.Eligibility{Allowed: true}
}

func (s *GateService) failOpen(err error) *models.Eligibility {
	s.logger.Warn("signup gate lookup failed, allowing signup",
		slog.String("code", LogCodeGateUnavailable),
		slog.String("error", err.Error()),
	)
	return &models.Eligibility{Allowed: true}
}
