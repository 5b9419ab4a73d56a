package admindto

import "time"

type Overview struct {
	TotalPartners  int64   `json:"total_partners"`
	TotalReferrals int64   `json:"total_referrals"`
	PendingTotal   float64 `json:"pending_total"`
	EarningsTotal  float64 `json:"earnings_total"`
}

type PartnerSummary struct {
	ID            string    `json:"id"`
	ReferralCode  string    `json:"referral_code"`
	PendingAmount float64   `json:"pending_amount"`
	TotalEarnings float64   `json:"total_earnings"`
	Leads         int       `json:"leads"`
	Conversions   int       `json:"conversions"`
	CreatedAt     time.Time `json:"created_at"`
}
