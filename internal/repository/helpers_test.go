package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return sqlDB, mock
}

var accountColumnNames = []string{
	"record_key", "email", "display_name", "remaining_seconds", "total_purchased_seconds",
	"referral_code", "referred_by", "total_referrals", "device_fingerprint", "ip_address",
	"created_at", "last_updated",
}

func accountRow(key, email string, remaining, purchased int64, code, referredBy any) *sqlmock.Rows {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return sqlmock.NewRows(accountColumnNames).AddRow(
		key, email, "Name", remaining, purchased,
		code, referredBy, 0, "fp-1", "10.0.0.1",
		now, now,
	)
}
