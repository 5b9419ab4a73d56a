package catalog

import (
	"time"

	"github.com/msmarket/market-service/internal/domain"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var dataBundles = []*domain.DataBundle{
	{Name: "500MB", Price: 25, Validity: "12 Hours", ValidFor: 12 * time.Hour, Features: []string{"12 Hours Validity", "Affordable", "Perfect for Light Use"}},
	{Name: "1.25GB", Price: 50, Validity: "Till Midnight", ValidFor: day, Features: []string{"High Speed Data", "Affordable Package", "Valid Till Midnight"}, Popular: true},
	{Name: "2GB", Price: 100, Validity: "24 Hours", ValidFor: day, Features: []string{"24 Hours Validity", "Fast Speeds", "Best Value"}, Popular: true},
	{Name: "3GB", Price: 150, Validity: "24 Hours", ValidFor: day, Features: []string{"24 Hours Validity", "Premium Speed", "Great Value"}},
	{Name: "5GB", Price: 250, Validity: "7 Days", ValidFor: week, Features: []string{"7 Days Validity", "Premium Speed", "Most Popular"}, Popular: true},
	{Name: "7GB", Price: 350, Validity: "7 Days", ValidFor: week, Features: []string{"7 Days Validity", "Ultra-Fast Speed", "Extended Usage"}},
	{Name: "10GB", Price: 450, Validity: "30 Days", ValidFor: 30 * day, Features: []string{"30 Days Validity", "Unlimited Speed", "Best for Heavy Users"}, Popular: true},
	{Name: "15GB", Price: 650, Validity: "30 Days", ValidFor: 30 * day, Features: []string{"30 Days Validity", "Maximum Speed", "Premium Choice"}},
	{Name: "20GB", Price: 850, Validity: "30 Days", ValidFor: 30 * day, Features: []string{"30 Days Validity", "Ultra-Fast Speeds", "Perfect for Streaming"}, Popular: true},
	{Name: "30GB", Price: 1200, Validity: "30 Days", ValidFor: 30 * day, Features: []string{"30 Days Validity", "Maximum Speed", "Heavy Usage"}},
	{Name: "50GB", Price: 2000, Validity: "60 Days", ValidFor: 60 * day, Features: []string{"60 Days Validity", "Maximum Speed", "Best for Business"}, Popular: true},
	{Name: "100GB", Price: 3500, Validity: "90 Days", ValidFor: 90 * day, Features: []string{"90 Days Validity", "Unlimited Speed", "Enterprise Level"}},
}

var giftCategories = []*domain.GiftCategory{
	{
		Type:  domain.PackageTypeData,
		Title: "Data Bundles",
		Packages: []domain.GiftPackage{
			{Name: "1.2GB", Price: 55, Validity: "Till Midnight", ValidFor: day, Features: []string{"Valid Till Midnight", "High Speed"}},
			{Name: "1GB", Price: 19, Validity: "1 Hour", ValidFor: time.Hour, Features: []string{"1 Hour Validity", "Ultra Fast"}},
			{Name: "6GB", Price: 700, Validity: "7 Days", ValidFor: week, Features: []string{"7 Days Validity", "High Volume"}},
		},
	},
	{
		Type:  domain.PackageTypeSMS,
		Title: "SMS Packages",
		Packages: []domain.GiftPackage{
			{Name: "200 SMS", Price: 10, Validity: "24 Hours", ValidFor: day, Features: []string{"24 Hours Validity", "Quick Messaging"}},
			{Name: "1000 SMS", Price: 30, Validity: "1 Week", ValidFor: week, Features: []string{"1 Week Validity", "High Volume"}},
		},
	},
	{
		Type:  domain.PackageTypeMinutes,
		Title: "Minutes Offers",
		Packages: []domain.GiftPackage{
			{Name: "50 Minutes", Price: 52, Validity: "Till Midnight", ValidFor: day, Features: []string{"Valid Till Midnight", "Evening Calls"}},
			{Name: "100 Minutes", Price: 95, Validity: "2 Days", ValidFor: 2 * day, Features: []string{"2 Days Validity", "Extended Calling"}},
		},
	},
}

var services = []*domain.ServiceInfo{
	{Title: "Mobile Data Bundles", Description: "Affordable data packages for all networks with instant activation and competitive prices.", Features: []string{"Daily bundles", "Weekly bundles", "Monthly bundles", "Custom packages"}},
	{Title: "Airtime Top-Up", Description: "Quick and easy airtime recharge for all mobile networks in Kenya.", Features: []string{"Instant delivery", "All networks", "Bulk purchases", "Auto top-up"}},
	{Title: "Internet Services", Description: "High-speed internet packages for home and office with reliable connectivity.", Features: []string{"Fiber optic", "Wireless internet", "Business plans", "24/7 support"}},
	{Title: "Business Solutions", Description: "Tailored telecommunications solutions for businesses of all sizes.", Features: []string{"Corporate packages", "Bulk discounts", "Dedicated support", "Custom solutions"}},
	{Title: "Educational Packages", Description: "Special data bundles for students and educational institutions.", Features: []string{"Student discounts", "Learning platforms", "E-library access", "Affordable rates"}},
	{Title: "Pay-As-You-Go", Description: "Flexible payment options with no contracts or commitments required.", Features: []string{"No contracts", "Flexible plans", "Easy payments", "Quick activation"}},
	{Title: "Secure Transactions", Description: "Safe and secure payment processing with multiple payment methods.", Features: []string{"M-PESA", "Card payments", "Bank transfer", "Encrypted"}},
	{Title: "24/7 Customer Support", Description: "Round-the-clock customer service to assist with any queries or issues.", Features: []string{"Live chat", "Phone support", "Email support", "Social media"}},
}

// StaticCatalog serves the package lists the storefront sells. The data is
// compiled in rather than stored: pricing changes ship as releases.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

func (c *StaticCatalog) ListDataBundles() []*domain.DataBundle {
	return dataBundles
}

func (c *StaticCatalog) PopularDataBundles() []*domain.DataBundle {
	popular := make([]*domain.DataBundle, 0, 6)
	for _, bundle := range dataBundles {
		if bundle.Popular {
			popular = append(popular, bundle)
		}
	}
	return popular
}

func (c *StaticCatalog) GiftCategories() []*domain.GiftCategory {
	return giftCategories
}

func (c *StaticCatalog) ListServices() []*domain.ServiceInfo {
	return services
}

func (c *StaticCatalog) FindPackage(packageType, name string) (*domain.CatalogPackage, error) {
	if packageType == domain.PackageTypeData {
		for _, bundle := range dataBundles {
			if bundle.Name == name {
				return &domain.CatalogPackage{
					Name:     bundle.Name,
					Type:     domain.PackageTypeData,
					Price:    bundle.Price,
					Validity: bundle.Validity,
					ValidFor: bundle.ValidFor,
				}, nil
			}
		}
	}

	for _, category := range giftCategories {
		if category.Type != packageType {
			continue
		}
		for _, pkg := range category.Packages {
			if pkg.Name == name {
				return &domain.CatalogPackage{
					Name:     pkg.Name,
					Type:     category.Type,
					Price:    pkg.Price,
					Validity: pkg.Validity,
					ValidFor: pkg.ValidFor,
				}, nil
			}
		}
	}

	return nil, domain.ErrUnknownPackage
}
