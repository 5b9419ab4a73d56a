package domain

import "errors"

var (
	ErrPartnerNotFound = errors.New("partner not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoLeadReferral  = errors.New("no lead referral for customer")
	ErrAlreadyReferred = errors.New("customer already has a referral")
	ErrNothingToSettle = errors.New("partner has no pending amount")
	ErrUnknownPackage  = errors.New("unknown package")
	ErrInvalidPayment  = errors.New("invalid payment details")
	ErrNotAuthorized   = errors.New("not authorized")
)
