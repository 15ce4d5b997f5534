package model

import "time"

// Inventory item sources.
const (
	SourceSingle = "SINGLE"
	SourceBundle = "BUNDLE"
)

// InventoryCosmetic is the cosmetic shape embedded in an inventory item.
type InventoryCosmetic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rarity   string `json:"rarity"`
	ImageURL string `json:"imageUrl,omitempty"`
	Price    int    `json:"price"`
}

// InventoryItem is one owned cosmetic of the authenticated user.
type InventoryItem struct {
	ID         string            `json:"id"`
	AcquiredAt time.Time         `json:"acquiredAt"`
	Source     string            `json:"source"`
	Cosmetic   InventoryCosmetic `json:"cosmetic"`
}
