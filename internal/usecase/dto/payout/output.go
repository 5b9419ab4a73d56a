package payoutdto

import "time"

type BatchEntry struct {
	PartnerID    string  `json:"partner_id"`
	ReferralCode string  `json:"referral_code"`
	Amount       float64 `json:"amount"`
	Error        string  `json:"error,omitempty"`
}

// BatchResult reports every payable partner individually. A failed partner
// never aborts the rest of the batch.
type BatchResult struct {
	WeekEnding time.Time    `json:"week_ending"`
	Processed  int          `json:"processed"`
	Failed     int          `json:"failed"`
	Entries    []BatchEntry `json:"entries"`
}
