package importer

import (
	"testing"

	"github.com/oghenejabor/Firebaseadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrimaryAndFallbackColumnsAgree(t *testing.T) {
	primary := RawRow{
		"Name":          "Widget",
		"ImageUrl":      "https://img.example.com/w.png",
		"ClickUrl":      "https://example.com/w",
		"OriginalPrice": "19.99",
		"Rating":        "4.5",
		"Ratings":       "120",
	}
	fallback := RawRow{
		"Title":   "Widget",
		"Image":   "https://img.example.com/w.png",
		"Link":    "https://example.com/w",
		"Price":   "19.99",
		"Rating":  "4.5",
		"Reviews": "120",
	}

	a := Normalize(primary, models.DestinationStoreProducts)
	b := Normalize(fallback, models.DestinationStoreProducts)
	require.NotNil(t, a.Store)
	require.NotNil(t, b.Store)
	assert.Equal(t, *a.Store, *b.Store)
}

func TestNormalizeStoreDefaults(t *testing.T) {
	c := Normalize(RawRow{}, models.DestinationStoreProducts)
	require.NotNil(t, c.Store)
	assert.Nil(t, c.Website)

	assert.Equal(t, "Untitled Product", c.Store.Title)
	assert.Equal(t, "USD 0", c.Store.Pricing)
	assert.Zero(t, c.Store.RatingValue)
	assert.Empty(t, c.Store.ImageURL)
	assert.Empty(t, c.Store.LinkURL)
}

func TestNormalizeStorePricing(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
		want string
	}{
		{"currency and original price", RawRow{"Currency": "EUR", "OriginalPrice": "12"}, "EUR 12"},
		{"price fallback", RawRow{"Price": "7.50"}, "USD 7.50"},
		{"original price wins over price", RawRow{"OriginalPrice": "10", "Price": "8"}, "USD 10"},
		{"all defaults", RawRow{}, "USD 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Normalize(tt.row, models.DestinationStoreProducts)
			assert.Equal(t, tt.want, c.Store.Pricing)
		})
	}
}

func TestNormalizeRatingParsing(t *testing.T) {
	c := Normalize(RawRow{"Rating": "4.2"}, models.DestinationStoreProducts)
	assert.Equal(t, 4.2, c.Store.RatingValue)

	c = Normalize(RawRow{"Rating": "not-a-number"}, models.DestinationStoreProducts)
	assert.Zero(t, c.Store.RatingValue)
}

func TestNormalizeWebsiteShape(t *testing.T) {
	c := Normalize(RawRow{
		"ProductName": "Some Site",
		"Image":       "https://img.example.com/s.png",
		"Url":         "https://example.com/s",
	}, models.DestinationWebsiteLinks)

	require.NotNil(t, c.Website)
	assert.Nil(t, c.Store)
	assert.Equal(t, "Some Site", c.Website.Name)
	assert.Equal(t, "https://img.example.com/s.png", c.Website.ImageURL)
	assert.Equal(t, "https://example.com/s", c.Website.LinkURL)

	empty := Normalize(RawRow{}, models.DestinationWebsiteLinks)
	assert.Equal(t, "Untitled Item", empty.Website.Name)
}

func TestNormalizeFallbackOrderIsFirstNonEmpty(t *testing.T) {
	c := Normalize(RawRow{"Name": "", "Title": "From Title", "ProductName": "From ProductName"}, models.DestinationStoreProducts)
	assert.Equal(t, "From Title", c.Store.Title)

	c = Normalize(RawRow{"ClickUrl": "", "Link": "", "Url": "https://example.com/u"}, models.DestinationStoreProducts)
	assert.Equal(t, "https://example.com/u", c.Store.LinkURL)
}
