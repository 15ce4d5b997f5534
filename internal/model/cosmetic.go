package model

// Cosmetic represents a purchasable virtual item from the store catalog.
type Cosmetic struct {
	ID          string `json:"id"`
	ExternalID  string `json:"externalId,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Price       int    `json:"price"`
	IsNew       bool   `json:"isNew"`
	IsOnSale    bool   `json:"isOnSale"`
	IsPromo     bool   `json:"isPromo"`
	IsOwned     bool   `json:"isOwned"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// CosmeticPage is a paginated catalog listing as reported by the backend.
type CosmeticPage struct {
	Data       []Cosmetic `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

// CosmeticTypes and CosmeticRarities are the filter choices offered by the
// catalog page.
var (
	CosmeticTypes    = []string{"wrap", "outfit", "pickaxe", "backpack", "emote"}
	CosmeticRarities = []string{"common", "uncommon", "rare", "epic", "legendary"}
)
