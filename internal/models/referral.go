package models

import (
	"time"

	"github.com/google/uuid"
)

// ReferralEntry records a reward an account earned by referring someone.
type ReferralEntry struct {
	Date          time.Time `db:"created_at" json:"date"`
	ReferrerKey   string    `db:"referrer_key" json:"-"`
	ReferredKey   string    `db:"referred_key" json:"-"`
	ReferredEmail string    `db:"referred_email" json:"referred_email"`
	ReferredName  string    `db:"referred_name" json:"referred_name"`
	RewardSeconds int64     `db:"reward_seconds" json:"reward_seconds"`
	ID            uuid.UUID `db:"id" json:"-"`
}
