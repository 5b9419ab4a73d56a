package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketMetrics holds the storefront and referral bookkeeping metrics.
type MarketMetrics struct {
	// Checkout
	PurchasesCreatedTotal       prometheus.CounterVec
	PurchasesCreatedAmountTotal prometheus.CounterVec
	CheckoutErrorsTotal         prometheus.CounterVec

	// Referral bookkeeping
	LeadsRegisteredTotal    prometheus.CounterVec
	ConversionsTotal        prometheus.CounterVec
	CommissionCreditedTotal prometheus.CounterVec

	// Payout settlement
	PayoutsProcessedTotal       prometheus.CounterVec
	PayoutsProcessedAmountTotal prometheus.CounterVec
	PayoutErrorsTotal           prometheus.CounterVec
}

func NewMarketMetrics() *MarketMetrics {
	return &MarketMetrics{
		PurchasesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchases_created_total",
				Help: "Total number of completed purchases",
			},
			[]string{"package_type", "payment_method"},
		),

		PurchasesCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchases_created_amount_total",
				Help: "Total amount of completed purchases in KES",
			},
			[]string{"package_type", "payment_method"},
		),

		CheckoutErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_errors_total",
				Help: "Total number of failed checkouts",
			},
			[]string{"error_type"},
		),

		LeadsRegisteredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_leads_registered_total",
				Help: "Total number of referral leads registered",
			},
			[]string{"partner_id"},
		),

		ConversionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_conversions_total",
				Help: "Total number of lead to converted transitions",
			},
			[]string{"partner_id"},
		),

		CommissionCreditedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_commission_credited_total",
				Help: "Total commission credited to partner pending balances",
			},
			[]string{"partner_id"},
		),

		PayoutsProcessedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_processed_total",
				Help: "Total number of settled payouts",
			},
			[]string{"partner_id"},
		),

		PayoutsProcessedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_processed_amount_total",
				Help: "Total settled payout amount in KES",
			},
			[]string{"partner_id"},
		),

		PayoutErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_errors_total",
				Help: "Total number of failed payout settlements",
			},
			[]string{"partner_id"},
		),
	}
}

func (m *MarketMetrics) RecordPurchase(packageType, paymentMethod string, amount float64) {
	m.PurchasesCreatedTotal.WithLabelValues(packageType, paymentMethod).Inc()
	m.PurchasesCreatedAmountTotal.WithLabelValues(packageType, paymentMethod).Add(amount)
}

func (m *MarketMetrics) RecordCheckoutError(errorType string) {
	m.CheckoutErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *MarketMetrics) RecordLeadRegistered(partnerID string) {
	m.LeadsRegisteredTotal.WithLabelValues(partnerID).Inc()
}

func (m *MarketMetrics) RecordConversion(partnerID string, commission float64) {
	m.ConversionsTotal.WithLabelValues(partnerID).Inc()
	m.CommissionCreditedTotal.WithLabelValues(partnerID).Add(commission)
}

func (m *MarketMetrics) RecordPayout(partnerID string, amount float64) {
	m.PayoutsProcessedTotal.WithLabelValues(partnerID).Inc()
	m.PayoutsProcessedAmountTotal.WithLabelValues(partnerID).Add(amount)
}

func (m *MarketMetrics) RecordPayoutError(partnerID string) {
	m.PayoutErrorsTotal.WithLabelValues(partnerID).Inc()
}
