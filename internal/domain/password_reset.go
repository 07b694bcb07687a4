package domain

import "time"

// PasswordReset a one-time OTP code bound to an email, with expiry and a
// used flag; side-channel for authentication recovery
type PasswordReset struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsExpired returns true if the code can no longer be redeemed
func (p *PasswordReset) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// IsUsable returns true if the code is unredeemed and not expired
func (p *PasswordReset) IsUsable(now time.Time) bool {
	return !p.Used && !p.IsExpired(now)
}
