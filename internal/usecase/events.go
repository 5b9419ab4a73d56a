package usecase

import "github.com/msmarket/market-service/internal/infrastructure/kafka"

// EventPublisher is the bookkeeping event stream, implemented by the kafka
// publisher. Usecases treat a nil publisher as "events disabled".
type EventPublisher interface {
	PublishPurchase(event kafka.PurchaseEvent) error
	PublishConversion(event kafka.ConversionEvent) error
	PublishPayout(event kafka.PayoutEvent) error
}
