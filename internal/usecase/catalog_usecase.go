package usecase

import "github.com/msmarket/market-service/internal/domain"

type CatalogUsecase interface {
	ListDataBundles() []*domain.DataBundle
	PopularDataBundles() []*domain.DataBundle
	GiftCategories() []*domain.GiftCategory
	ListServices() []*domain.ServiceInfo
}

type DefaultCatalogUsecase struct {
	Catalog domain.CatalogRepository
}

func NewDefaultCatalogUsecase(catalogRepo domain.CatalogRepository) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{Catalog: catalogRepo}
}

func (uc *DefaultCatalogUsecase) ListDataBundles() []*domain.DataBundle {
	return uc.Catalog.ListDataBundles()
}

func (uc *DefaultCatalogUsecase) PopularDataBundles() []*domain.DataBundle {
	return uc.Catalog.PopularDataBundles()
}

func (uc *DefaultCatalogUsecase) GiftCategories() []*domain.GiftCategory {
	return uc.Catalog.GiftCategories()
}

func (uc *DefaultCatalogUsecase) ListServices() []*domain.ServiceInfo {
	return uc.Catalog.ListServices()
}
