package repository

import (
	"context"

	"github.com/oghenejabor/Firebaseadmin/models"
)

// Logical paths of the persisted collections.
const (
	PathShopCategories = "ShopCategories"
	PathHomeItems      = "HomeItems"
)

// CatalogAdapter implements CatalogRepo over a DocumentStore.
type CatalogAdapter struct {
	store DocumentStore
}

func NewCatalogAdapter(store DocumentStore) *CatalogAdapter {
	return &CatalogAdapter{store: store}
}

func (a *CatalogAdapter) GetShopCategories(ctx context.Context) (map[string]models.ShopCategory, error) {
	var categories map[string]models.ShopCategory
	if err := a.store.Get(ctx, PathShopCategories, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = make(map[string]models.ShopCategory)
	}
	return categories, nil
}

func (a *CatalogAdapter) SetShopCategories(ctx context.Context, categories map[string]models.ShopCategory) error {
	return a.store.Set(ctx, PathShopCategories, categories)
}

func (a *CatalogAdapter) GetHomeCollections(ctx context.Context) (map[string]models.HomeCollection, error) {
	var collections map[string]models.HomeCollection
	if err := a.store.Get(ctx, PathHomeItems, &collections); err != nil {
		return nil, err
	}
	if collections == nil {
		collections = make(map[string]models.HomeCollection)
	}
	return collections, nil
}

func (a *CatalogAdapter) SetHomeCollections(ctx context.Context, collections map[string]models.HomeCollection) error {
	return a.store.Set(ctx, PathHomeItems, collections)
}
