package importer

import (
	"fmt"
	"time"

	"github.com/oghenejabor/Firebaseadmin/models"
)

// ItemKey builds the persisted key for the i-th imported item. Keys are
// timestamp-based with the item's index as a suffix so two items imported in
// the same millisecond never collide.
func ItemKey(now time.Time, i int) string {
	return fmt.Sprintf("%d_%d", now.UnixMilli(), i)
}

// MergeStoreProducts returns a copy of the ShopCategories snapshot with the
// given items inserted into the target category. The target is addressed by
// id when targetID is set; otherwise a new category named targetName is
// created under newID. Duplicate annotations are already stripped by the
// caller; the input snapshot is never mutated.
func MergeStoreProducts(existing map[string]models.ShopCategory, targetID, targetName, newID string, items []models.StoreProduct, now time.Time) (map[string]models.ShopCategory, string) {
	updated := make(map[string]models.ShopCategory, len(existing)+1)
	for id, cat := range existing {
		updated[id] = cloneShopCategory(cat)
	}

	if targetID == "" {
		targetID = newID
	}
	cat, ok := updated[targetID]
	if !ok {
		cat = models.ShopCategory{Title: targetName}
	}
	if cat.Items == nil {
		cat.Items = make(map[string]models.StoreProduct, len(items))
	}
	for i, item := range items {
		cat.Items[ItemKey(now, i)] = item
	}
	updated[targetID] = cat
	return updated, targetID
}

// MergeWebsiteLinks is the HomeItems counterpart of MergeStoreProducts.
func MergeWebsiteLinks(existing map[string]models.HomeCollection, targetID, targetName, newID string, items []models.WebsiteLink, now time.Time) (map[string]models.HomeCollection, string) {
	updated := make(map[string]models.HomeCollection, len(existing)+1)
	for id, col := range existing {
		updated[id] = cloneHomeCollection(col)
	}

	if targetID == "" {
		targetID = newID
	}
	col, ok := updated[targetID]
	if !ok {
		col = models.HomeCollection{Name: targetName}
	}
	if col.Items == nil {
		col.Items = make(map[string]models.WebsiteLink, len(items))
	}
	for i, item := range items {
		col.Items[ItemKey(now, i)] = item
	}
	updated[targetID] = col
	return updated, targetID
}

// FilterStoreCandidates strips preview annotations, dropping flagged
// duplicates when skipDuplicates is set. The skipped count is returned for
// reporting.
func FilterStoreCandidates(candidates []models.StoreProductCandidate, skipDuplicates bool) ([]models.StoreProduct, int) {
	items := make([]models.StoreProduct, 0, len(candidates))
	skipped := 0
	for _, c := range candidates {
		if skipDuplicates && c.Duplicate {
			skipped++
			continue
		}
		items = append(items, c.StoreProduct)
	}
	return items, skipped
}

// FilterWebsiteCandidates is the website-link counterpart of
// FilterStoreCandidates.
func FilterWebsiteCandidates(candidates []models.WebsiteLinkCandidate, skipDuplicates bool) ([]models.WebsiteLink, int) {
	items := make([]models.WebsiteLink, 0, len(candidates))
	skipped := 0
	for _, c := range candidates {
		if skipDuplicates && c.Duplicate {
			skipped++
			continue
		}
		items = append(items, c.WebsiteLink)
	}
	return items, skipped
}

func cloneShopCategory(cat models.ShopCategory) models.ShopCategory {
	out := cat
	if cat.Items != nil {
		out.Items = make(map[string]models.StoreProduct, len(cat.Items))
		for k, v := range cat.Items {
			out.Items[k] = v
		}
	}
	return out
}

func cloneHomeCollection(col models.HomeCollection) models.HomeCollection {
	out := col
	if col.Items != nil {
		out.Items = make(map[string]models.WebsiteLink, len(col.Items))
		for k, v := range col.Items {
			out.Items[k] = v
		}
	}
	return out
}
