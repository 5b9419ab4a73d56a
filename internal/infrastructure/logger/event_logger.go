package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ConversionLoggedEvent struct {
	ID         uint `gorm:"primaryKey"`
	ReferralID string
	PartnerID  string
	CustomerID string
	Commission float64
	Timestamp  time.Time
}

type SettlementLoggedEvent struct {
	ID         uint `gorm:"primaryKey"`
	PayoutID   string
	PartnerID  string
	Amount     float64
	WeekEnding time.Time
	Timestamp  time.Time
}

// BookkeepingEventLogger keeps an append-only audit trail of the money
// movements so a partner balance can be reconciled after the fact.
type BookkeepingEventLogger interface {
	LogConversion(ctx context.Context, event ConversionLoggedEvent) error
	LogSettlement(ctx context.Context, event SettlementLoggedEvent) error
}

type PGBookkeepingEventLogger struct {
	db *gorm.DB
}

func NewPGBookkeepingEventLogger(db *gorm.DB) *PGBookkeepingEventLogger {
	db.AutoMigrate(&ConversionLoggedEvent{}, &SettlementLoggedEvent{})
	return &PGBookkeepingEventLogger{db: db}
}

func (l *PGBookkeepingEventLogger) LogConversion(ctx context.Context, event ConversionLoggedEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGBookkeepingEventLogger) LogSettlement(ctx context.Context, event SettlementLoggedEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
