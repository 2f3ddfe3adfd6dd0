package importer

import (
	"strconv"

	"github.com/oghenejabor/Firebaseadmin/models"
)

// Column fallback chains, evaluated first-non-empty-wins. The order is the
// contract: a file carrying both "Name" and "Title" imports under "Name".
var (
	nameColumns      = []string{"Name", "Title", "ProductName"}
	imageColumns     = []string{"ImageUrl", "Image"}
	linkColumns      = []string{"ClickUrl", "Link", "Url"}
	priceColumns     = []string{"OriginalPrice", "Price"}
	ratingCntColumns = []string{"Ratings", "Reviews"}
)

const (
	defaultProductTitle = "Untitled Product"
	defaultItemName     = "Untitled Item"
	defaultCurrency     = "USD"
	defaultPrice        = "0"
)

// Candidate is a normalized row tagged with its destination. Exactly one of
// Store and Website is set, matching the destination.
type Candidate struct {
	Destination models.Destination            `json:"destination"`
	Store       *models.StoreProductCandidate `json:"store,omitempty"`
	Website     *models.WebsiteLinkCandidate  `json:"website,omitempty"`
}

// LinkURL returns the candidate's target URL as normalized from the row.
func (c Candidate) LinkURL() string {
	if c.Store != nil {
		return c.Store.LinkURL
	}
	if c.Website != nil {
		return c.Website.LinkURL
	}
	return ""
}

// DisplayName returns the human-readable name used in duplicate details.
func (c Candidate) DisplayName() string {
	if c.Store != nil {
		return c.Store.Title
	}
	if c.Website != nil {
		return c.Website.Name
	}
	return ""
}

// IsDuplicate reports the candidate's duplicate flag.
func (c Candidate) IsDuplicate() bool {
	if c.Store != nil {
		return c.Store.Duplicate
	}
	if c.Website != nil {
		return c.Website.Duplicate
	}
	return false
}

// clone copies the candidate so annotations never leak into the caller's
// slice through the shape pointers.
func (c Candidate) clone() Candidate {
	out := Candidate{Destination: c.Destination}
	if c.Store != nil {
		store := *c.Store
		out.Store = &store
	}
	if c.Website != nil {
		website := *c.Website
		out.Website = &website
	}
	return out
}

func (c *Candidate) markDuplicate(source string) {
	if c.Store != nil {
		c.Store.Duplicate = true
		c.Store.DuplicateSource = source
	}
	if c.Website != nil {
		c.Website.Duplicate = true
		c.Website.DuplicateSource = source
	}
}

// Normalize maps a raw row onto the shape selected by dest. No validation is
// performed; empty strings pass through untouched.
func Normalize(row RawRow, dest models.Destination) Candidate {
	if dest == models.DestinationWebsiteLinks {
		return Candidate{
			Destination: dest,
			Website: &models.WebsiteLinkCandidate{
				WebsiteLink: models.WebsiteLink{
					Name:     firstValue(row, nameColumns, defaultItemName),
					ImageURL: firstValue(row, imageColumns, ""),
					LinkURL:  firstValue(row, linkColumns, ""),
				},
			},
		}
	}

	currency := firstValue(row, []string{"Currency"}, defaultCurrency)
	price := firstValue(row, priceColumns, defaultPrice)
	rating, err := strconv.ParseFloat(row["Rating"], 64)
	if err != nil {
		rating = 0
	}

	return Candidate{
		Destination: dest,
		Store: &models.StoreProductCandidate{
			StoreProduct: models.StoreProduct{
				Title:       firstValue(row, nameColumns, defaultProductTitle),
				ImageURL:    firstValue(row, imageColumns, ""),
				LinkURL:     firstValue(row, linkColumns, ""),
				Pricing:     currency + " " + price,
				RatingValue: rating,
				RatingCount: firstValue(row, ratingCntColumns, ""),
			},
		},
	}
}

// NormalizeAll maps every row in order.
func NormalizeAll(rows []RawRow, dest models.Destination) []Candidate {
	candidates := make([]Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, Normalize(row, dest))
	}
	return candidates
}

// firstValue returns the first non-empty value among the named columns, or
// fallback when none is set.
func firstValue(row RawRow, columns []string, fallback string) string {
	for _, col := range columns {
		if v := row[col]; v != "" {
			return v
		}
	}
	return fallback
}
