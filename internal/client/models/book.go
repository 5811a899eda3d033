package models

import "time"

// Book condition and listing status values, as stored by the server.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"

	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusPending   = "pending"
)

// Book is a catalog listing. Price is a decimal serialized as a string by
// the server; it is passed through untouched (no client-side arithmetic).
// Category and Image are nullable on the wire.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Category      *int64    `json:"category"`
	CategoryName  string    `json:"category_name"`
	Price         string    `json:"price"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description"`
	Image         *string   `json:"image"`
	Seller        int64     `json:"seller"`
	SellerName    string    `json:"seller_name"`
	SellerContact string    `json:"seller_contact"`
	IsApproved    bool      `json:"is_approved"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookDraft is the writable subset of a listing, used when a seller adds
// or edits inventory. Seller, approval and status are server-controlled.
type BookDraft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    *int64 `json:"category,omitempty"`
	Price       string `json:"price"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// Category is a catalog category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookFilter holds the supported catalog query parameters. Zero values
// mean "not set" and are omitted from the query string.
type BookFilter struct {
	Category  int64
	Condition string
	Status    string
	PriceMin  string // maps to price__gte
	PriceMax  string // maps to price__lte
	Search    string // matches title and author
	Ordering  string // price, -price, title, -title
}
