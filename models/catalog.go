package models

// StoreProduct is a single product entry inside a shop category, exactly as
// persisted under the ShopCategories document. Duplicate annotations from an
// import preview are never part of this shape.
type StoreProduct struct {
	Title       string  `json:"title" dynamodbav:"title"`
	ImageURL    string  `json:"imageUrl" dynamodbav:"imageUrl"`
	LinkURL     string  `json:"clickUrl" dynamodbav:"clickUrl"`
	Pricing     string  `json:"pricing" dynamodbav:"pricing"`
	RatingValue float64 `json:"ratingValue" dynamodbav:"ratingValue"`
	RatingCount string  `json:"ratingCount,omitempty" dynamodbav:"ratingCount,omitempty"`
}

// ShopCategory is a named group of store products keyed by item key.
type ShopCategory struct {
	Title string                  `json:"title" dynamodbav:"title"`
	Image string                  `json:"image,omitempty" dynamodbav:"image,omitempty"`
	Items map[string]StoreProduct `json:"items,omitempty" dynamodbav:"items,omitempty"`
}

// WebsiteLink is a single link entry inside a home collection, exactly as
// persisted under the HomeItems document.
type WebsiteLink struct {
	Name     string `json:"name" dynamodbav:"name"`
	ImageURL string `json:"imageUrl" dynamodbav:"imageUrl"`
	LinkURL  string `json:"clickUrl" dynamodbav:"clickUrl"`
}

// HomeCollection is a named group of website links keyed by item key.
type HomeCollection struct {
	Name  string                 `json:"name" dynamodbav:"name"`
	Image string                 `json:"image,omitempty" dynamodbav:"image,omitempty"`
	Items map[string]WebsiteLink `json:"items,omitempty" dynamodbav:"items,omitempty"`
}
