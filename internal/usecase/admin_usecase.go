package usecase

import (
	"context"

	"github.com/msmarket/market-service/internal/domain"
	admindto "github.com/msmarket/market-service/internal/usecase/dto/admin"
)

type AdminUsecase interface {
	Overview(ctx context.Context) (*admindto.Overview, error)
	Partners(ctx context.Context) ([]*admindto.PartnerSummary, error)
}

type DefaultAdminUsecase struct {
	PartnerRepo  domain.PartnerRepository
	ReferralRepo domain.ReferralRepository
}

func NewDefaultAdminUsecase(
	partnerRepo domain.PartnerRepository,
	referralRepo domain.ReferralRepository,
) *DefaultAdminUsecase {
	return &DefaultAdminUsecase{
		PartnerRepo:  partnerRepo,
		ReferralRepo: referralRepo,
	}
}

func (uc *DefaultAdminUsecase) Overview(ctx context.Context) (*admindto.Overview, error) {
	totalPartners, err := uc.PartnerRepo.CountPartners(ctx)
	if err != nil {
		return nil, err
	}

	totalReferrals, err := uc.ReferralRepo.CountReferrals(ctx)
	if err != nil {
		return nil, err
	}

	pending, earnings, err := uc.PartnerRepo.SumBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &admindto.Overview{
		TotalPartners:  totalPartners,
		TotalReferrals: totalReferrals,
		PendingTotal:   pending,
		EarningsTotal:  earnings,
	}, nil
}

func (uc *DefaultAdminUsecase) Partners(ctx context.Context) ([]*admindto.PartnerSummary, error) {
	partners, err := uc.PartnerRepo.GetAllPartners(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*admindto.PartnerSummary, len(partners))
	for i, partner := range partners {
		referrals, err := uc.ReferralRepo.GetReferralsByPartnerID(ctx, partner.ID)
		if err != nil {
			return nil, err
		}

		conversions := 0
		for _, referral := range referrals {
			if referral.Status == domain.ReferralStatusConverted {
				conversions++
			}
		}

		summaries[i] = &admindto.PartnerSummary{
			ID:            partner.ID,
			ReferralCode:  partner.ReferralCode,
			PendingAmount: partner.PendingAmount,
			TotalEarnings: partner.TotalEarnings,
			Leads:         len(referrals),
			Conversions:   conversions,
			CreatedAt:     partner.CreatedAt,
		}
	}

	return summaries, nil
}
