package repository

import (
	"context"

	"github.com/oghenejabor/Firebaseadmin/models"
)

// DocumentStore is the key-value document contract the admin console is
// built on: whole documents are read and written by logical path.
type DocumentStore interface {
	// Get reads the document at path into out. A missing document is not an
	// error; out is left at its zero value.
	Get(ctx context.Context, path string, out interface{}) error
	// Set replaces the entire document at path.
	Set(ctx context.Context, path string, value interface{}) error
}

// CatalogRepo exposes the two persisted collections as whole snapshots.
// Reads return an empty map when nothing has been written yet.
type CatalogRepo interface {
	GetShopCategories(ctx context.Context) (map[string]models.ShopCategory, error)
	SetShopCategories(ctx context.Context, categories map[string]models.ShopCategory) error
	GetHomeCollections(ctx context.Context) (map[string]models.HomeCollection, error)
	SetHomeCollections(ctx context.Context, collections map[string]models.HomeCollection) error
}
