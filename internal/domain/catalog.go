package domain

import "time"

// Package types as stored on purchases and transactions.
const (
	PackageTypeData    = "data"
	PackageTypeSMS     = "sms"
	PackageTypeMinutes = "minutes"
)

type DataBundle struct {
	Name     string
	Price    float64
	Validity string
	ValidFor time.Duration
	Features []string
	Popular  bool
}

type GiftPackage struct {
	Name     string
	Price    float64
	Validity string
	ValidFor time.Duration
	Features []string
}

type GiftCategory struct {
	Type     string
	Title    string
	Packages []GiftPackage
}

type ServiceInfo struct {
	Title       string
	Description string
	Features    []string
}

// CatalogPackage is the checkout-facing view of any purchasable package.
// Price comes from here, never from the client.
type CatalogPackage struct {
	Name     string
	Type     string
	Price    float64
	Validity string
	ValidFor time.Duration
}

type CatalogRepository interface {
	ListDataBundles() []*DataBundle
	PopularDataBundles() []*DataBundle
	GiftCategories() []*GiftCategory
	ListServices() []*ServiceInfo
	FindPackage(packageType, name string) (*CatalogPackage, error)
}
