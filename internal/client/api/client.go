// Package api is the HTTP adapter for the bookmarket REST API. It owns
// request construction (bearer credential, correlation id, JSON codec)
// and maps non-2xx responses to structured errors; it holds no session
// state beyond the tokens it is told to attach.
package api

import (
	"context"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// Client is the full remote surface consumed by the session manager and
// the domain services. Implementations attach the configured bearer token
// to every call; SetTokens/ClearTokens are driven by the session layer,
// never by the transport itself.
type Client interface {
	Close() error

	// Credential handling.
	SetTokens(access, refresh string)
	ClearTokens()

	// Auth and profile.
	ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error)
	Register(ctx context.Context, reg models.Registration) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, partial map[string]any) (*models.UserProfile, error)
	RequestPasswordReset(ctx context.Context, username, contact string) (string, error)
	ConfirmPasswordReset(ctx context.Context, contact, code, newPassword string) error
	ActivityHistory(ctx context.Context) (*models.ActivityHistory, error)

	// Catalog.
	ListBooks(ctx context.Context, f models.BookFilter) (models.Page[models.Book], error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	ListCategories(ctx context.Context) (models.Page[models.Category], error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Seller inventory.
	MyInventory(ctx context.Context) (models.Page[models.Book], error)
	AddBook(ctx context.Context, d models.BookDraft) (*models.Book, error)
	UpdateBook(ctx context.Context, id int64, d models.BookDraft) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// Favorites.
	ListFavorites(ctx context.Context) (models.Page[models.Favorite], error)
	AddFavorite(ctx context.Context, bookID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID int64) error

	// Orders and payments.
	PurchaseBook(ctx context.Context, bookID int64) (*models.Receipt, error)
	ListOrders(ctx context.Context) (models.Page[models.Order], error)
	PayOrder(ctx context.Context, orderID int64) (*models.PaymentResult, error)
	MyInvoices(ctx context.Context) ([]models.Invoice, error)
	ListTransactions(ctx context.Context) (models.Page[models.Transaction], error)

	// Notifications.
	ListNotifications(ctx context.Context) (models.Page[models.Notification], error)
	MarkNotificationRead(ctx context.Context, id int64) error

	// Support tickets.
	ListTickets(ctx context.Context) (models.Page[models.SupportTicket], error)
	CreateTicket(ctx context.Context, subject, message string) (*models.SupportTicket, error)
	ReplyTicket(ctx context.Context, id int64, reply string) error

	// Admin moderation.
	ApproveBook(ctx context.Context, id int64) error
	RejectBook(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, search string) (models.Page[models.UserProfile], error)
	UpdateUserRole(ctx context.Context, userID int64, role models.Role) error
	AdminReport(ctx context.Context) (*models.Report, error)
}
