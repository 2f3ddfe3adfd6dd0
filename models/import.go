package models

// Destination selects which persisted collection an import session targets.
// It is chosen once per session and fixed for its duration.
type Destination string

const (
	DestinationStoreProducts Destination = "store_products"
	DestinationWebsiteLinks  Destination = "website_links"
)

// Valid reports whether d is one of the two known destinations.
func (d Destination) Valid() bool {
	return d == DestinationStoreProducts || d == DestinationWebsiteLinks
}

// StoreProductCandidate is a normalized spreadsheet row headed for a shop
// category, carrying preview-only duplicate annotations on top of the
// persisted StoreProduct shape.
type StoreProductCandidate struct {
	StoreProduct
	Duplicate       bool   `json:"duplicate"`
	DuplicateSource string `json:"duplicateSource,omitempty"`
}

// WebsiteLinkCandidate is a normalized spreadsheet row headed for a home
// collection, with the same preview-only duplicate annotations.
type WebsiteLinkCandidate struct {
	WebsiteLink
	Duplicate       bool   `json:"duplicate"`
	DuplicateSource string `json:"duplicateSource,omitempty"`
}

// DuplicateDetail identifies one candidate whose URL already exists in the
// persisted corpus and the category it was found in.
type DuplicateDetail struct {
	ItemName        string `json:"itemName"`
	URL             string `json:"url"`
	FoundInCategory string `json:"foundInCategory"`
}

// DuplicateCheckResult aggregates one duplicate-detection pass over a
// candidate set. It is recomputed in full whenever the set changes.
type DuplicateCheckResult struct {
	Total      int               `json:"total"`
	Duplicates int               `json:"duplicates"`
	New        int               `json:"new"`
	Details    []DuplicateDetail `json:"details,omitempty"`
}

// ImportResult reports one completed import write.
type ImportResult struct {
	ImportedCount     int    `json:"importedCount"`
	SkippedDuplicates int    `json:"skippedDuplicates"`
	CategoryID        string `json:"categoryId"`
	CategoryName      string `json:"categoryName"`
}
