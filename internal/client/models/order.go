package models

import "time"

// Order statuses as stored by the server.
const (
	OrderPending = "pending"
	OrderPaid    = "paid"
	OrderShipped = "shipped"
)

// Order is a purchase record. Book is the listing id; Buyer is filled
// server-side from the authenticated user.
type Order struct {
	ID        int64     `json:"id"`
	Book      int64     `json:"book"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Receipt is the instant-invoice payload returned by POST /orders/.
type Receipt struct {
	Message string `json:"message"`
	Details struct {
		OrderID      int64     `json:"order_id"`
		Book         string    `json:"book"`
		Price        string    `json:"price"`
		TrackingCode string    `json:"tracking_code"`
		Date         time.Time `json:"date"`
	} `json:"order_details"`
}

// PaymentResult is returned by POST /orders/{id}/pay/.
type PaymentResult struct {
	Message      string `json:"message"`
	TrackingCode string `json:"tracking_code"`
}

// Invoice is a paid order as served by GET /orders/my-invoices/.
type Invoice struct {
	ID            int64     `json:"id"`
	BookTitle     string    `json:"book_title"`
	BuyerName     string    `json:"buyer_name"`
	TotalPrice    string    `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TrackingCode  string    `json:"tracking_code"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryItem is one row of the activity history (a purchase or a sale).
type HistoryItem struct {
	ID        int64     `json:"id"`
	BookTitle string    `json:"book_title"`
	Price     string    `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityHistory is the response of GET /profile/history/.
type ActivityHistory struct {
	Purchases []HistoryItem `json:"purchases"`
	Sales     []HistoryItem `json:"sales"`
}

// Transaction is a payment record tied to an order.
type Transaction struct {
	ID        int64     `json:"id"`
	Order     int64     `json:"order"`
	Amount    string    `json:"amount"`
	RefID     string    `json:"ref_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
