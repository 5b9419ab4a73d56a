package kafka

import (
	"encoding/json"
	"time"

	"github.com/msmarket/market-service/internal/domain"
)

const (
	TopicPurchaseEvents = "purchase-events"
	TopicReferralEvents = "referral-events"
	TopicPayoutEvents   = "payout-events"
)

type PurchaseEvent struct {
	PurchaseID  string    `json:"purchase_id"`
	UserID      string    `json:"user_id"`
	PackageName string    `json:"package_name"`
	PackageType string    `json:"package_type"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

type ConversionEvent struct {
	ReferralID string    `json:"referral_id"`
	PartnerID  string    `json:"partner_id"`
	CustomerID string    `json:"customer_id"`
	Commission float64   `json:"commission"`
	Timestamp  time.Time `json:"timestamp"`
}

type PayoutEvent struct {
	PayoutID   string    `json:"payout_id"`
	PartnerID  string    `json:"partner_id"`
	Amount     float64   `json:"amount"`
	WeekEnding time.Time `json:"week_ending"`
	Timestamp  time.Time `json:"timestamp"`
}

func (k *DefaultKafkaPublisher) PublishPurchase(event PurchaseEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicPurchaseEvents, domain.Message{Key: []byte(event.UserID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishConversion(event ConversionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicReferralEvents, domain.Message{Key: []byte(event.PartnerID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishPayout(event PayoutEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicPayoutEvents, domain.Message{Key: []byte(event.PartnerID), Value: v})
}
