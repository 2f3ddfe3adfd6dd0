package importer

import (
	"fmt"
	"testing"
	"time"

	"github.com/oghenejabor/Firebaseadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestItemKeySuffixAvoidsCollisions(t *testing.T) {
	now := testNow()
	assert.Equal(t, fmt.Sprintf("%d_0", now.UnixMilli()), ItemKey(now, 0))
	assert.NotEqual(t, ItemKey(now, 0), ItemKey(now, 1))
}

func TestMergeStoreProductsCreatesNamedCategory(t *testing.T) {
	items := []models.StoreProduct{
		{Title: "a", LinkURL: "https://x.com/a"},
		{Title: "b", LinkURL: "https://x.com/b"},
		{Title: "c", LinkURL: "https://x.com/c"},
	}

	updated, targetID := MergeStoreProducts(map[string]models.ShopCategory{}, "", "Deals", "new-id", items, testNow())

	assert.Equal(t, "new-id", targetID)
	require.Contains(t, updated, "new-id")
	assert.Equal(t, "Deals", updated["new-id"].Title)
	assert.Len(t, updated["new-id"].Items, 3)
}

func TestMergeStoreProductsIntoExistingCategory(t *testing.T) {
	existing := map[string]models.ShopCategory{
		"cat-1": {
			Title: "Electronics",
			Items: map[string]models.StoreProduct{"old": {Title: "old item"}},
		},
	}

	updated, targetID := MergeStoreProducts(existing, "cat-1", "", "unused", []models.StoreProduct{{Title: "new item"}}, testNow())

	assert.Equal(t, "cat-1", targetID)
	assert.Len(t, updated["cat-1"].Items, 2)
	assert.Equal(t, "Electronics", updated["cat-1"].Title)
}

func TestMergeStoreProductsLeavesSnapshotUntouched(t *testing.T) {
	existing := map[string]models.ShopCategory{
		"cat-1": {
			Title: "Electronics",
			Items: map[string]models.StoreProduct{"old": {Title: "old item"}},
		},
	}

	_, _ = MergeStoreProducts(existing, "cat-1", "", "unused", []models.StoreProduct{{Title: "new item"}}, testNow())

	assert.Len(t, existing["cat-1"].Items, 1, "input snapshot must not be mutated")
}

func TestMergeStoreProductsRedundantEntriesOnImportAll(t *testing.T) {
	// Items are keyed by fresh timestamp keys, never merged by URL: importing
	// a URL that already exists adds a second entry rather than updating the
	// first.
	existing := map[string]models.ShopCategory{
		"cat-1": {
			Title: "Electronics",
			Items: map[string]models.StoreProduct{"old": {Title: "dup", LinkURL: "https://x.com/a"}},
		},
	}

	updated, _ := MergeStoreProducts(existing, "cat-1", "", "unused", []models.StoreProduct{{Title: "dup", LinkURL: "https://x.com/a"}}, testNow())
	assert.Len(t, updated["cat-1"].Items, 2)
}

func TestMergeWebsiteLinks(t *testing.T) {
	updated, targetID := MergeWebsiteLinks(map[string]models.HomeCollection{}, "", "Favorites", "new-id", []models.WebsiteLink{{Name: "site"}}, testNow())

	assert.Equal(t, "new-id", targetID)
	assert.Equal(t, "Favorites", updated["new-id"].Name)
	assert.Len(t, updated["new-id"].Items, 1)
}

func TestFilterStoreCandidates(t *testing.T) {
	candidates := []models.StoreProductCandidate{
		{StoreProduct: models.StoreProduct{Title: "keep"}},
		{StoreProduct: models.StoreProduct{Title: "dup"}, Duplicate: true, DuplicateSource: "Electronics"},
		{StoreProduct: models.StoreProduct{Title: "keep too"}},
	}

	items, skipped := FilterStoreCandidates(candidates, true)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, skipped)

	all, skipped := FilterStoreCandidates(candidates, false)
	assert.Len(t, all, 3)
	assert.Zero(t, skipped)
}

func TestFilterWebsiteCandidates(t *testing.T) {
	candidates := []models.WebsiteLinkCandidate{
		{WebsiteLink: models.WebsiteLink{Name: "keep"}},
		{WebsiteLink: models.WebsiteLink{Name: "dup"}, Duplicate: true},
	}

	items, skipped := FilterWebsiteCandidates(candidates, true)
	require.Len(t, items, 1)
	assert.Equal(t, "keep", items[0].Name)
	assert.Equal(t, 1, skipped)
}
