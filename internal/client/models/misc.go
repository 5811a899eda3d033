package models

import "time"

// Notification is a server-generated message for the current user.
type Notification struct {
	ID        int64     `json:"id"`
	User      int64     `json:"user"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite links the current user to a saved listing. BookDetails carries
// the embedded listing so favorite lists render without a second fetch.
type Favorite struct {
	ID          int64     `json:"id"`
	User        string    `json:"user"`
	Book        int64     `json:"book"`
	BookDetails Book      `json:"book_details"`
	CreatedAt   time.Time `json:"created_at"`
}

// Support ticket subjects accepted by the server.
const (
	TicketTechnical = "technical"
	TicketPayment   = "payment"
	TicketReport    = "report"
	TicketOther     = "other"
)

// SupportTicket is a user-opened support request with an optional
// admin reply.
type SupportTicket struct {
	ID         int64     `json:"id"`
	User       string    `json:"user"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	AdminReply *string   `json:"admin_reply"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

// Report is the admin dashboard summary from GET /admin-reports/.
type Report struct {
	ActiveUsers int64 `json:"active_users"`
	TotalBooks  int64 `json:"total_books"`
	Breakdown   struct {
		Approved int64 `json:"approved"`
		Pending  int64 `json:"pending"`
	} `json:"books_breakdown"`
}
