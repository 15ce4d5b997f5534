package model

import "time"

// Transaction types.
const (
	TransactionPurchase = "PURCHASE"
	TransactionRefund   = "REFUND"
)

// TransactionCosmetic is the optional cosmetic reference on a ledger entry.
type TransactionCosmetic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// TransactionItem is one immutable entry of the balance ledger. The ledger is
// append-only and read-only from this side.
type TransactionItem struct {
	ID            string               `json:"id"`
	Type          string               `json:"type"`
	ItemType      string               `json:"itemType,omitempty"`
	Amount        int                  `json:"amount"`
	BalanceBefore int                  `json:"balanceBefore"`
	BalanceAfter  int                  `json:"balanceAfter"`
	CreatedAt     time.Time            `json:"createdAt"`
	Cosmetic      *TransactionCosmetic `json:"cosmetic,omitempty"`
}
