package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/msmarket/market-service/internal/domain"
	partnerdto "github.com/msmarket/market-service/internal/usecase/dto/partner"
)

const referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type DefaultPartnerUsecase struct {
	PartnerRepo      domain.PartnerRepository
	ReferralRepo     domain.ReferralRepository
	PayoutRepo       domain.PayoutRepository
	ProfileRepo      domain.ProfileRepository
	CommissionUnit   float64
	LeaderboardLimit int
}

func NewDefaultPartnerUsecase(
	partnerRepo domain.PartnerRepository,
	referralRepo domain.ReferralRepository,
	payoutRepo domain.PayoutRepository,
	profileRepo domain.ProfileRepository,
	commissionUnit float64,
	leaderboardLimit int,
) *DefaultPartnerUsecase {
	return &DefaultPartnerUsecase{
		PartnerRepo:      partnerRepo,
		ReferralRepo:     referralRepo,
		PayoutRepo:       payoutRepo,
		ProfileRepo:      profileRepo,
		CommissionUnit:   commissionUnit,
		LeaderboardLimit: leaderboardLimit,
	}
}

func (uc *DefaultPartnerUsecase) RegisterPartner(ctx context.Context, userID string) (*domain.Partner, error) {
	codeGenerator, err := nanoid.CustomASCII(referralCodeAlphabet, 8)
	if err != nil {
		return nil, err
	}

	partner := &domain.Partner{
		UserID:       userID,
		ReferralCode: codeGenerator(),
	}
	if err := uc.PartnerRepo.CreatePartner(ctx, partner); err != nil {
		return nil, err
	}

	return partner, nil
}

func (uc *DefaultPartnerUsecase) Dashboard(ctx context.Context, userID string) (*partnerdto.DashboardOutput, error) {
	partner, err := uc.PartnerRepo.GetPartnerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := uc.ReferralRepo.GetReferralsByPartnerID(ctx, partner.ID)
	if err != nil {
		return nil, err
	}

	converted := 0
	for _, referral := range referrals {
		if referral.Status == domain.ReferralStatusConverted {
			converted++
		}
	}

	return &partnerdto.DashboardOutput{
		PartnerID:      partner.ID,
		ReferralCode:   partner.ReferralCode,
		PendingAmount:  partner.PendingAmount,
		TotalEarnings:  partner.TotalEarnings,
		TotalLeads:     len(referrals),
		ConvertedLeads: converted,
	}, nil
}

func (uc *DefaultPartnerUsecase) Leads(ctx context.Context, userID string) ([]*partnerdto.LeadOutput, error) {
	partner, err := uc.PartnerRepo.GetPartnerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := uc.ReferralRepo.GetReferralsByPartnerID(ctx, partner.ID)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]string, len(referrals))
	for i, referral := range referrals {
		customerIDs[i] = referral.CustomerID
	}
	profiles, err := uc.ProfileRepo.GetProfilesByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	leads := make([]*partnerdto.LeadOutput, len(referrals))
	for i, referral := range referrals {
		lead := &partnerdto.LeadOutput{
			ID:          referral.ID,
			Status:      string(referral.Status),
			CreatedAt:   referral.CreatedAt,
			ConvertedAt: referral.ConvertedAt,
		}
		if profile, ok := profiles[referral.CustomerID]; ok {
			lead.CustomerName = profile.FullName
			lead.CustomerEmail = profile.Email
		}
		leads[i] = lead
	}

	return leads, nil
}

func (uc *DefaultPartnerUsecase) Payouts(ctx context.Context, userID string) ([]*domain.Payout, error) {
	partner, err := uc.PartnerRepo.GetPartnerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.PayoutRepo.GetPayoutsByPartnerID(ctx, partner.ID)
}

// WeeklyReports groups the partner's referrals into settlement weeks. A
// settlement week ends on the first Thursday on or after the referral's
// creation date; a referral created on a Thursday belongs to the following
// week.
func (uc *DefaultPartnerUsecase) WeeklyReports(ctx context.Context, userID string) ([]*partnerdto.WeeklyReport, error) {
	partner, err := uc.PartnerRepo.GetPartnerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := uc.ReferralRepo.GetReferralsByPartnerID(ctx, partner.ID)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*partnerdto.WeeklyReport)
	for _, referral := range referrals {
		weekEnding := NextSettlementThursday(referral.CreatedAt)

		report, ok := buckets[weekEnding]
		if !ok {
			report = &partnerdto.WeeklyReport{WeekEnding: weekEnding}
			buckets[weekEnding] = report
		}

		report.Leads++
		if referral.Status == domain.ReferralStatusConverted {
			report.Conversions++
			report.Earnings += uc.CommissionUnit
		}
	}

	reports := make([]*partnerdto.WeeklyReport, 0, len(buckets))
	for _, report := range buckets {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].WeekEnding.After(reports[j].WeekEnding)
	})

	return reports, nil
}

func (uc *DefaultPartnerUsecase) Leaderboard(ctx context.Context) ([]*partnerdto.LeaderboardEntry, error) {
	partners, err := uc.PartnerRepo.GetTopPartners(ctx, uc.LeaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]*partnerdto.LeaderboardEntry, len(partners))
	for i, partner := range partners {
		conversions, err := uc.ReferralRepo.CountConvertedByPartnerID(ctx, partner.ID)
		if err != nil {
			return nil, err
		}

		entries[i] = &partnerdto.LeaderboardEntry{
			Rank:          i + 1,
			PartnerID:     partner.ID,
			ReferralCode:  partner.ReferralCode,
			TotalEarnings: partner.TotalEarnings,
			Conversions:   int(conversions),
		}
	}

	return entries, nil
}

// NextSettlementThursday returns the end of the settlement week containing
// the given time: days-until-Thursday = (4 - weekday + 7) mod 7, with 7
// substituted when the result is 0 (Sunday = 0 day numbering).
func NextSettlementThursday(t time.Time) time.Time {
	daysUntilThursday := (int(time.Thursday) - int(t.Weekday()) + 7) % 7
	if daysUntilThursday == 0 {
		daysUntilThursday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, daysUntilThursday)
}
