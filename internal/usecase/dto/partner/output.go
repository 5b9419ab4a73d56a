package partnerdto

import "time"

type DashboardOutput struct {
	PartnerID      string  `json:"partner_id"`
	ReferralCode   string  `json:"referral_code"`
	PendingAmount  float64 `json:"pending_amount"`
	TotalEarnings  float64 `json:"total_earnings"`
	TotalLeads     int     `json:"total_leads"`
	ConvertedLeads int     `json:"converted_leads"`
}

type LeadOutput struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CreatedAt     time.Time  `json:"created_at"`
	ConvertedAt   *time.Time `json:"converted_at,omitempty"`
}

type WeeklyReport struct {
	WeekEnding  time.Time `json:"week_ending"`
	Leads       int       `json:"leads"`
	Conversions int       `json:"conversions"`
	Earnings    float64   `json:"earnings"`
}

type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	PartnerID     string  `json:"partner_id"`
	ReferralCode  string  `json:"referral_code"`
	TotalEarnings float64 `json:"total_earnings"`
	Conversions   int     `json:"conversions"`
}
