package importer

import (
	"strings"

	"github.com/oghenejabor/Firebaseadmin/models"
)

// URLIndex maps a normalized link URL to the display name of the persisted
// category that already contains it.
type URLIndex map[string]string

// NormalizeURL lowers the case of a URL and strips at most one trailing
// slash, so https://X.com/p/ and https://x.com/p compare equal.
func NormalizeURL(u string) string {
	u = strings.ToLower(u)
	return strings.TrimSuffix(u, "/")
}

// BuildStoreURLIndex indexes every item URL across all shop categories.
// When the same URL appears in more than one category, the last category
// scanned wins; which one is reported is not significant.
func BuildStoreURLIndex(categories map[string]models.ShopCategory) URLIndex {
	index := make(URLIndex)
	for _, cat := range categories {
		for _, item := range cat.Items {
			if item.LinkURL != "" {
				index[NormalizeURL(item.LinkURL)] = cat.Title
			}
		}
	}
	return index
}

// BuildWebsiteURLIndex indexes every link URL across all home collections.
func BuildWebsiteURLIndex(collections map[string]models.HomeCollection) URLIndex {
	index := make(URLIndex)
	for _, col := range collections {
		for _, item := range col.Items {
			if item.LinkURL != "" {
				index[NormalizeURL(item.LinkURL)] = col.Name
			}
		}
	}
	return index
}

// CheckDuplicates annotates a copy of each candidate against the persisted
// URL index and returns the annotated list with aggregate counts. The input
// slice is left untouched, and the check is rerun from scratch whenever the
// candidate set changes.
//
// Candidates are only checked against the existing corpus; two rows in the
// same file sharing a URL are both reported as new.
func CheckDuplicates(candidates []Candidate, index URLIndex) ([]Candidate, models.DuplicateCheckResult) {
	result := models.DuplicateCheckResult{Total: len(candidates)}
	annotated := make([]Candidate, len(candidates))
	for i := range candidates {
		c := candidates[i].clone()
		if source, found := index[NormalizeURL(c.LinkURL())]; found {
			c.markDuplicate(source)
			result.Duplicates++
			result.Details = append(result.Details, models.DuplicateDetail{
				ItemName:        c.DisplayName(),
				URL:             c.LinkURL(),
				FoundInCategory: source,
			})
		}
		annotated[i] = c
	}
	result.New = result.Total - result.Duplicates
	return annotated, result
}
