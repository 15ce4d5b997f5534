package model

import "time"

// BundleCosmetic is the trimmed cosmetic shape embedded in a bundle.
type BundleCosmetic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rarity   string `json:"rarity"`
	ImageURL string `json:"imageUrl,omitempty"`
	Price    int    `json:"price"`
}

// Bundle is a named, priced group of cosmetics sold as a discounted unit.
type Bundle struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       int              `json:"price"`
	Cosmetics   []BundleCosmetic `json:"cosmetics"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ItemsTotal is the sum of the member cosmetic prices.
func (b Bundle) ItemsTotal() int {
	total := 0
	for _, c := range b.Cosmetics {
		total += c.Price
	}
	return total
}

// Discount is the savings versus buying every member individually.
// Display math only; the backend owns the actual pricing.
func (b Bundle) Discount() int {
	d := b.ItemsTotal() - b.Price
	if d < 0 {
		return 0
	}
	return d
}
